package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("utilizador não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está registado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("código já existe")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrDispatchFailed     = errors.New("falha no envio de alertas")
	ErrUnsupportedMedia   = errors.New("apenas imagens são permitidas")
)
