package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jhoicas/Armazem-api/internal/application/ports"
	"github.com/jhoicas/Armazem-api/internal/domain"
)

var _ ports.PhotoStore = (*MinIOPhotoStore)(nil)

// MinIOConfig ligação ao servidor S3 compatível.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinIOPhotoStore guarda fotografias num bucket MinIO/S3.
type MinIOPhotoStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOPhotoStore liga ao servidor e cria o bucket se não existir.
func NewMinIOPhotoStore(ctx context.Context, cfg MinIOConfig) (*MinIOPhotoStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: cliente: %w", err)
	}
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio: verificar bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio: criar bucket %s: %w", cfg.Bucket, err)
		}
	}
	return &MinIOPhotoStore{client: client, bucket: cfg.Bucket}, nil
}

// Save envia o objeto; size -1 = desconhecido (upload multipart).
func (s *MinIOPhotoStore) Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucket, filename, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("minio: enviar %s: %w", filename, err)
	}
	return nil
}

// Open lê o objeto. Stat primeiro para distinguir "não existe" de outras falhas.
func (s *MinIOPhotoStore) Open(ctx context.Context, filename string) (io.ReadCloser, *ports.StoredPhoto, error) {
	info, err := s.client.StatObject(ctx, s.bucket, filename, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("minio: stat %s: %w", filename, err)
	}
	obj, err := s.client.GetObject(ctx, s.bucket, filename, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("minio: obter %s: %w", filename, err)
	}
	contentType := info.ContentType
	if contentType == "" {
		contentType = ContentTypeFor(filename)
	}
	return obj, &ports.StoredPhoto{
		Filename:    filename,
		ContentType: contentType,
		Size:        info.Size,
	}, nil
}
