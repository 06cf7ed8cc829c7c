package ports

import (
	"file-storage-api/internal/domain/token"
	"file-storage-api/internal/infrastructure/jwt"
)

type TokenService interface {
	GenerateAccess(userID, role string) (string, error)
	GenerateRefresh(userID, role string) (string, error)
	GeneratePair(userID, role string) (*token.Pair, error)
	ValidateAccess(tokenStr string) (*jwt.Claims, error)
	ValidateRefresh(tokenStr string) (*jwt.Claims, error)
}
