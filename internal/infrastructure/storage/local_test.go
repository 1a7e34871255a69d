package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/pkg/logger"
)

func TestLocalPhotoStore_SaveOpen(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalPhotoStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "abc.png", "image/png", strings.NewReader("png-bytes"), 9))

	rc, info, err := s.Open(ctx, "abc.png")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)

	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", info.ContentType)
	assert.Equal(t, int64(9), info.Size)
}

func TestLocalPhotoStore_NaoExiste(t *testing.T) {
	s, err := NewLocalPhotoStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	_, _, err = s.Open(context.Background(), "nada.jpg")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocalPhotoStore_RejeitaTravessia(t *testing.T) {
	s, err := NewLocalPhotoStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	for _, name := range []string{"../segredo.txt", "../../etc/passwd", ".", ""} {
		_, _, err := s.Open(context.Background(), name)
		assert.Error(t, err, name)
	}
	assert.Error(t, s.Save(context.Background(), "../fora.png", "image/png", strings.NewReader("x"), 1))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeFor("a.JPG"))
	assert.Equal(t, "image/jpeg", ContentTypeFor("a.jpeg"))
	assert.Equal(t, "image/webp", ContentTypeFor("a.webp"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("a.pdf"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("semextensao"))
}
