package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/pkg/textutil"
)

// Clock devolve a hora atual; substituível nos testes.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

// required devolve ErrInvalidInput se algum valor estiver vazio.
func required(fields ...[2]string) error {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			return fmt.Errorf("%w: o campo %s é obrigatório", domain.ErrInvalidInput, f[0])
		}
	}
	return nil
}

// filter mantém os itens cujo texto corresponde a q (sem acentos, sem maiúsculas).
func filter[T any](list []*T, q string, fields func(*T) []string) []*T {
	if strings.TrimSpace(q) == "" {
		return list
	}
	out := make([]*T, 0, len(list))
	for _, it := range list {
		if textutil.MatchAny(q, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}
