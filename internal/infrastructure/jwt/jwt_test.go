package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-storage-api/config"
	"file-storage-api/internal/apperrors"
)

func newTestService(accessTTL, refreshTTL time.Duration) *Service {
	return New(config.JWT{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	})
}

func TestGeneratePairAndValidate_Success(t *testing.T) {
	s := newTestService(15*time.Minute, 24*time.Hour)

	pair, err := s.GeneratePair("u-123", "USER")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := s.ValidateAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-123", claims.UserID)
	assert.Equal(t, "USER", claims.Role)
	require.NotNil(t, claims.ExpiresAt)

	rClaims, err := s.ValidateRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "u-123", rClaims.UserID)
}

func TestValidate_SecretsAreNotInterchangeable(t *testing.T) {
	s := newTestService(15*time.Minute, 24*time.Hour)

	pair, err := s.GeneratePair("u-1", "USER")
	require.NoError(t, err)

	// A refresh token must fail the access check and the other way round.
	_, err = s.ValidateAccess(pair.RefreshToken)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	_, err = s.ValidateRefresh(pair.AccessToken)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestValidate_Table(t *testing.T) {
	good := newTestService(5*time.Minute, 5*time.Minute)

	makeToken := func(svc *Service) string {
		tok, err := svc.GenerateAccess("user-42", "ADMIN")
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name  string
		token string
		ok    bool
	}{
		{
			name:  "valid token",
			token: makeToken(good),
			ok:    true,
		},
		{
			name: "wrong signing secret",
			token: makeToken(New(config.JWT{
				AccessSecret:  "another-secret",
				RefreshSecret: "refresh-secret",
				AccessTTL:     5 * time.Minute,
				RefreshTTL:    5 * time.Minute,
			})),
			ok: false,
		},
		{
			name:  "expired token",
			token: makeToken(newTestService(-1*time.Minute, 5*time.Minute)),
			ok:    false,
		},
		{
			name:  "malformed token string",
			token: "not-a-jwt",
			ok:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			claims, err := good.ValidateAccess(tt.token)
			if tt.ok {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, "user-42", claims.UserID)
				assert.Equal(t, "ADMIN", claims.Role)
			} else {
				require.Error(t, err)
				assert.True(t, apperrors.IsUnauthorized(err))
				assert.Equal(t, "Token is invalid", apperrors.Message(err))
				assert.Nil(t, claims)
			}
		})
	}
}
