// Package keytoken persists one row per issued refresh token, keyed by a
// deterministic hash of the token. Multiple rows per user give each device
// its own revocable session.
package keytoken

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"file-storage-api/internal/domain/token"
	"file-storage-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) token.KeyTokenRepository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	_, err := r.db.Exec(ctx, InsertKeyToken, userID, tokenHash)
	return err
}

func (r *Repository) Find(ctx context.Context, tokenHash string) (*token.KeyToken, error) {
	kt := new(token.KeyToken)
	err := r.db.QueryRow(ctx, SelectKeyToken, tokenHash).Scan(
		&kt.UserID,
		&kt.TokenHash,
		&kt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return kt, nil
}

func (r *Repository) Delete(ctx context.Context, tokenHash string) error {
	_, err := r.db.Exec(ctx, DeleteKeyToken, tokenHash)
	return err
}

func (r *Repository) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, DeleteKeyTokensByUser, userID)
	return err
}
