package entity

import "time"

// EquipmentKind valor fixo do campo tipo nos equipamentos.
const EquipmentKind = "Equipamento"

// Estado de conservação por omissão.
const DefaultCondition = "Bom"

// Equipment equipamento/ferramenta do armazém. Code é a chave de negócio (única).
// LocationID só é alterado por movimentos de ativos com destino.
type Equipment struct {
	ID              string
	Code            string
	Description     string
	Brand           string
	Model           string
	AcquisitionDate *string
	Active          bool
	Category        string
	SerialNumber    string
	Responsible     string
	Condition       string
	Photo           string
	LocationID      *UncheckedRef
	Kind            string
	CreatedAt       time.Time
}
