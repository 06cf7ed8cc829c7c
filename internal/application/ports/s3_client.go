package ports

import (
	"context"
	"io"

	"file-storage-api/internal/domain/file"
)

type S3Client interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	List(ctx context.Context, prefix string) (file.ObjectRefs, error)
	Copy(ctx context.Context, srcKey, dstKey string) error
	Delete(ctx context.Context, key string) error
	Head(ctx context.Context, key string) (bool, error)
	PresignGet(ctx context.Context, key string) (string, error)
	GetPublicURL(key string) string
	GetBucket() string
}
