// Package storage guarda as fotografias carregadas (disco local ou MinIO).
package storage

import (
	"path/filepath"
	"strings"
)

// ContentTypeFor tipo MIME a partir da extensão do nome; desconhecido = application/octet-stream.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
