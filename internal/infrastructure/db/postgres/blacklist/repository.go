// Package blacklist persists revoked tokens. A blacklisted token is rejected
// by the auth gate until it expires naturally, regardless of its signature
// still being valid.
package blacklist

import (
	"context"

	"file-storage-api/internal/domain/token"
	"file-storage-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) token.BlacklistRepository {
	return &Repository{db: db}
}

func (r *Repository) Add(ctx context.Context, tok string) error {
	_, err := r.db.Exec(ctx, InsertToken, tok)
	return err
}

func (r *Repository) Exists(ctx context.Context, tok string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SelectTokenExists, tok).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
