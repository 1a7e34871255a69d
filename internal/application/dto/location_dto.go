package dto

import "time"

// LocationRequest corpo de criação e de substituição de um local.
type LocationRequest struct {
	Code   string  `json:"codigo"`
	Name   string  `json:"nome"`
	Type   string  `json:"tipo"`
	SiteID *string `json:"obra_id"`
	Active *bool   `json:"ativo"`
}

// IsActive ativo por omissão.
func (r LocationRequest) IsActive() bool { return boolOr(r.Active, true) }

// TypeOrDefault tipo, def se vazio.
func (r LocationRequest) TypeOrDefault(def string) string { return stringOr(r.Type, def) }

// LocationResponse saída de um local.
type LocationResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"codigo"`
	Name      string    `json:"nome"`
	Type      string    `json:"tipo"`
	SiteID    *string   `json:"obra_id"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
}
