package dto

import "time"

// EquipmentRequest corpo de criação e de substituição (PUT) de um equipamento.
type EquipmentRequest struct {
	Code            string  `json:"codigo"`
	Description     string  `json:"descricao"`
	Brand           string  `json:"marca"`
	Model           string  `json:"modelo"`
	AcquisitionDate *string `json:"data_aquisicao"`
	Active          *bool   `json:"ativo"`
	Category        string  `json:"categoria"`
	SerialNumber    string  `json:"numero_serie"`
	Responsible     string  `json:"responsavel"`
	Condition       string  `json:"estado_conservacao"`
	Photo           string  `json:"foto"`
	LocationID      *string `json:"local_id"`
}

// IsActive ativo por omissão.
func (r EquipmentRequest) IsActive() bool { return boolOr(r.Active, true) }

// ConditionOrDefault estado de conservação, "Bom" se vazio.
func (r EquipmentRequest) ConditionOrDefault(def string) string { return stringOr(r.Condition, def) }

// EquipmentResponse saída de um equipamento.
type EquipmentResponse struct {
	ID              string    `json:"id"`
	Code            string    `json:"codigo"`
	Description     string    `json:"descricao"`
	Brand           string    `json:"marca"`
	Model           string    `json:"modelo"`
	AcquisitionDate *string   `json:"data_aquisicao"`
	Active          bool      `json:"ativo"`
	Category        string    `json:"categoria"`
	SerialNumber    string    `json:"numero_serie"`
	Responsible     string    `json:"responsavel"`
	Condition       string    `json:"estado_conservacao"`
	Photo           string    `json:"foto"`
	LocationID      *string   `json:"local_id"`
	Kind            string    `json:"tipo"`
	CreatedAt       time.Time `json:"created_at"`
}
