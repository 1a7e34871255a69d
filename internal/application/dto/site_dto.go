package dto

import "time"

// SiteRequest corpo de criação e de substituição de uma obra.
type SiteRequest struct {
	Code    string `json:"codigo"`
	Name    string `json:"nome"`
	Address string `json:"endereco"`
	Client  string `json:"cliente"`
	Status  string `json:"estado"`
}

// StatusOrDefault estado, def se vazio.
func (r SiteRequest) StatusOrDefault(def string) string { return stringOr(r.Status, def) }

// SiteResponse saída de uma obra.
type SiteResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"codigo"`
	Name      string    `json:"nome"`
	Address   string    `json:"endereco"`
	Client    string    `json:"cliente"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
}

// SiteResourcesResponse obra com os locais associados e tudo o que está nesses locais.
type SiteResourcesResponse struct {
	Site      SiteResponse        `json:"obra"`
	Locations []LocationResponse  `json:"locais"`
	Equipment []EquipmentResponse `json:"equipamentos"`
	Vehicles  []VehicleResponse   `json:"viaturas"`
	Materials []MaterialResponse  `json:"materiais"`
}
