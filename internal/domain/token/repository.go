package token

import (
	"context"

	"github.com/google/uuid"
)

// BlacklistRepository is the revocation list consulted by the auth gate.
// Add is an idempotent no-op when the token is already present; a second
// logout with the same tokens must not fail.
type BlacklistRepository interface {
	Add(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
}

// KeyTokenRepository stores hashed refresh tokens. Tokens are looked up by
// a deterministic hash, never by the raw value.
type KeyTokenRepository interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string) error
	Find(ctx context.Context, tokenHash string) (*KeyToken, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteForUser(ctx context.Context, userID uuid.UUID) error
}
