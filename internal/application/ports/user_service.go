package ports

import (
	"context"
	"mime/multipart"

	"file-storage-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindUsers(ctx context.Context, page int) (user.Users, error)
	UpdateUserRole(ctx context.Context, uuid user.UUID, role string) (*user.User, error)
	DeleteUser(ctx context.Context, uuid user.UUID) error
	UploadAvatar(ctx context.Context, uuid user.UUID, in *multipart.FileHeader) (string, error)
	GetAvatarURL(ctx context.Context, uuid user.UUID) (*string, error)
}
