package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

// journal guarda, por ordem, como desfazer cada escrita feita dentro de uma transação.
// Os passos correm com s.mu bloqueado e só tocam nas linhas que a transação escreveu.
type journal struct {
	steps []func()
}

// record é chamado com s.mu bloqueado. Repositórios fora de transação têm journal nil.
func (j *journal) record(step func()) {
	if j != nil {
		j.steps = append(j.steps, step)
	}
}

func (s *Store) transact(fn func(j *journal) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	j := &journal{}
	if err := fn(j); err != nil {
		s.mu.Lock()
		for i := len(j.steps) - 1; i >= 0; i-- {
			j.steps[i]()
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

// RunSites executa fn com os repos de obras e locais. Se fn devolver erro, as escritas
// feitas através desses repos são desfeitas; escritas de outros chamadores ficam.
func (s *Store) RunSites(_ context.Context, fn func(
	sites repository.SiteRepository,
	locations repository.LocationRepository,
) error) error {
	return s.transact(func(j *journal) error {
		return fn(&SiteRepo{s: s, undo: j}, &LocationRepo{s: s, undo: j})
	})
}

// RunMovements como RunSites, para um movimento e o seu efeito.
func (s *Store) RunMovements(_ context.Context, fn func(tx repository.MovementTx) error) error {
	return s.transact(func(j *journal) error {
		return fn(repository.MovementTx{
			Assets:    &AssetMovementRepo{s: s, undo: j},
			Stock:     &StockMovementRepo{s: s, undo: j},
			Equipment: &EquipmentRepo{s: s, undo: j},
			Materials: &MaterialRepo{s: s, undo: j},
		})
	})
}

func removeWhere[T any](rows []*T, match func(*T) bool) []*T {
	if i := slices.IndexFunc(rows, match); i >= 0 {
		return slices.Delete(rows, i, i+1)
	}
	return rows
}

func reinsert[T any](rows []*T, at int, row *T) []*T {
	if at > len(rows) {
		at = len(rows)
	}
	return slices.Insert(rows, at, row)
}
