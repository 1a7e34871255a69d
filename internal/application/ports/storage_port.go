package ports

import (
	"context"
	"io"
)

// StoredPhoto metadados de uma fotografia guardada.
type StoredPhoto struct {
	Filename    string
	ContentType string
	Size        int64
}

// PhotoStore define o porto de armazenamento das fotografias de equipamentos e viaturas.
// Os nomes são gerados pelo chamador e nunca contêm separadores de caminho.
type PhotoStore interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) error
	// Open devolve o conteúdo; domain.ErrNotFound se não existir. O chamador fecha o reader.
	Open(ctx context.Context, filename string) (io.ReadCloser, *StoredPhoto, error)
}
