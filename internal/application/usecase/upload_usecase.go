package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/ports"
	"github.com/jhoicas/Armazem-api/internal/domain"
)

// UploadsPath prefixo público das fotografias guardadas.
const UploadsPath = "/api/uploads/"

// UploadUseCase aceita fotografias e serve-as pelo nome gerado.
type UploadUseCase struct {
	store ports.PhotoStore
}

// NewUploadUseCase constrói o caso de uso.
func NewUploadUseCase(store ports.PhotoStore) *UploadUseCase {
	return &UploadUseCase{store: store}
}

// Upload guarda a imagem com um nome uuid.<ext> (ext do nome original, "jpg" se não houver).
// Tipos que não sejam image/* devolvem ErrUnsupportedMedia.
func (uc *UploadUseCase) Upload(ctx context.Context, originalName, contentType string, r io.Reader, size int64) (*dto.UploadResponse, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domain.ErrUnsupportedMedia
	}
	filename := uuid.New().String() + "." + extensionOf(originalName)
	if err := uc.store.Save(ctx, filename, contentType, r, size); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	return &dto.UploadResponse{URL: UploadsPath + filename, Filename: filename}, nil
}

// Open devolve a fotografia; ErrNotFound se o nome não existir.
func (uc *UploadUseCase) Open(ctx context.Context, filename string) (io.ReadCloser, *ports.StoredPhoto, error) {
	if filename == "" || strings.ContainsAny(filename, `/\`) {
		return nil, nil, domain.ErrNotFound
	}
	return uc.store.Open(ctx, filename)
}

func extensionOf(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" || strings.ContainsAny(ext, `/\`) {
		return "jpg"
	}
	return strings.ToLower(ext)
}
