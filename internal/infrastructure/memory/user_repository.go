package memory

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo utilizadores em memória.
type UserRepo struct {
	s *Store
}

// Create grava o utilizador; email duplicado devolve ErrEmailAlreadyExists.
func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if indexOf(r.s.users, func(x *entity.User) bool { return x.Email == u.Email }) >= 0 {
		return domain.ErrEmailAlreadyExists
	}
	r.s.users = append(r.s.users, cloneUser(u))
	return nil
}

// GetByID obtém por id.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(x *entity.User) bool { return x.ID == id }), nil
}

// GetByEmail obtém por email.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(x *entity.User) bool { return x.Email == email }), nil
}

func (r *UserRepo) find(match func(*entity.User) bool) *entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := indexOf(r.s.users, match); i >= 0 {
		return cloneUser(r.s.users[i])
	}
	return nil
}
