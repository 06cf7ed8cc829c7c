package ports

import (
	"context"
	"mime/multipart"

	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/user"
)

type ActionService interface {
	Upload(ctx context.Context, userUUID user.UUID, in *multipart.FileHeader) (*file.ObjectRef, error)
	FindFiles(ctx context.Context, userUUID user.UUID, page, limit int) (*file.Listing, error)
	PresignDownload(ctx context.Context, userUUID user.UUID, fileName string) (string, error)
	MoveToTrash(ctx context.Context, userUUID user.UUID, fileName string) error
	FindTrash(ctx context.Context, userUUID user.UUID, page, limit int) (*file.Listing, error)
	Restore(ctx context.Context, userUUID user.UUID, fileName string) error
	Delete(ctx context.Context, userUUID user.UUID, fileName string) error
}
