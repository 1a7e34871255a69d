package entity

import "time"

// Estados de obra.
const (
	SiteStatusActive    = "Ativa"
	SiteStatusCompleted = "Concluida"
	SiteStatusPaused    = "Pausada"
)

// Site obra (projeto de construção).
type Site struct {
	ID        string
	Code      string
	Name      string
	Address   string
	Client    string
	Status    string
	CreatedAt time.Time
}
