package token

import (
	"time"

	"github.com/google/uuid"
)

type (
	// Pair bundles a short-lived access token and a longer-lived refresh
	// token, both signed JWTs bound to one user id.
	Pair struct {
		AccessToken  string
		RefreshToken string
	}

	// KeyToken is a standalone revocable refresh-token record. One row per
	// issued refresh token supports multi-device sessions without mutating
	// the user row on every login.
	KeyToken struct {
		UserID    uuid.UUID
		TokenHash string
		CreatedAt time.Time
	}
)
