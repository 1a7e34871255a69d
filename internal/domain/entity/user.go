package entity

import "time"

// User utilizador da aplicação (sem perfis: qualquer utilizador autenticado opera o armazém).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca em claro depois de persistido
	CreatedAt    time.Time
}
