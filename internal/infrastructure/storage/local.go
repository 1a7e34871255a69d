package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Armazem-api/internal/application/ports"
	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/pkg/logger"
)

var _ ports.PhotoStore = (*LocalPhotoStore)(nil)

// LocalPhotoStore guarda fotografias num diretório do disco.
type LocalPhotoStore struct {
	basePath string
	log      *logger.Logger
}

// NewLocalPhotoStore cria o diretório se não existir.
func NewLocalPhotoStore(basePath string, log *logger.Logger) (*LocalPhotoStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: criar diretório %s: %w", basePath, err)
	}
	return &LocalPhotoStore{basePath: basePath, log: log}, nil
}

// Save escreve o ficheiro; em caso de erro a escrita parcial é removida.
func (s *LocalPhotoStore) Save(_ context.Context, filename, _ string, r io.Reader, _ int64) error {
	filePath, err := s.safeJoin(filename)
	if err != nil {
		return err
	}

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("storage: criar ficheiro: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		if cerr := f.Close(); cerr != nil {
			s.log.Error().Err(cerr).Str("ficheiro", filename).Msg("fechar ficheiro após erro de escrita")
		}
		if rerr := os.Remove(filePath); rerr != nil {
			s.log.Error().Err(rerr).Str("ficheiro", filename).Msg("remover ficheiro após erro de escrita")
		}
		return fmt.Errorf("storage: escrever ficheiro: %w", err)
	}
	if err := f.Close(); err != nil {
		if rerr := os.Remove(filePath); rerr != nil {
			s.log.Error().Err(rerr).Str("ficheiro", filename).Msg("remover ficheiro após erro ao fechar")
		}
		return fmt.Errorf("storage: fechar ficheiro: %w", err)
	}
	return nil
}

// Open abre o ficheiro para leitura.
func (s *LocalPhotoStore) Open(_ context.Context, filename string) (io.ReadCloser, *ports.StoredPhoto, error) {
	filePath, err := s.safeJoin(filename)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("storage: abrir ficheiro: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("storage: stat: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, nil, domain.ErrNotFound
	}
	return f, &ports.StoredPhoto{
		Filename:    filename,
		ContentType: ContentTypeFor(filename),
		Size:        info.Size(),
	}, nil
}

// safeJoin resolve filename dentro de basePath e rejeita travessias de diretório.
func (s *LocalPhotoStore) safeJoin(filename string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("storage: base inválida: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, filename))
	if err != nil {
		return "", fmt.Errorf("storage: caminho inválido: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: nome de ficheiro inválido", domain.ErrNotFound)
	}
	return absPath, nil
}
