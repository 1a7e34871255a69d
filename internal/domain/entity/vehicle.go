package entity

import "time"

// Combustível por omissão.
const DefaultFuel = "Gasoleo"

// Vehicle viatura da frota. Plate (matrícula) é a chave de negócio.
// InspectionDue e InsuranceDue ficam como texto tal como foram introduzidos:
// o motor de alertas faz o parse e ignora datas malformadas.
type Vehicle struct {
	ID              string
	Plate           string
	Brand           string
	Model           string
	Fuel            string
	Active          bool
	Photo           string
	InspectionDue   *string
	InsuranceDue    *string
	RegistrationDoc string
	InsurancePolicy string
	Notes           string
	LocationID      *UncheckedRef
	CreatedAt       time.Time
}
