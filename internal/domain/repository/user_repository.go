package repository

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
)

// UserRepository define o porto de persistência de utilizadores (DIP).
// GetBy* devolvem (nil, nil) quando não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
