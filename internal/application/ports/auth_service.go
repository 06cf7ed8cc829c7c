package ports

import (
	"context"

	"file-storage-api/internal/domain/token"
	"file-storage-api/internal/domain/user"
)

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*user.User, *token.Pair, error)
	Login(ctx context.Context, email, password string) (*token.Pair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
}
