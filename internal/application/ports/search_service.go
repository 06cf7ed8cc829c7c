package ports

import (
	"context"

	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/user"
)

type SearchService interface {
	SearchByName(ctx context.Context, userUUID user.UUID, query string) (file.ObjectRefs, error)
	SearchByExtension(ctx context.Context, userUUID user.UUID, ext string) (file.ObjectRefs, error)
}
