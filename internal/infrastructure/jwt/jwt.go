package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"file-storage-api/config"
	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/domain/token"
)

// Service signs and verifies the two token families. Access and refresh
// tokens use distinct secrets so a refresh token can never pass the access
// check and vice versa.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func New(cfg config.JWT) *Service {
	return &Service{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
	}
}

// Claims carries only the user id and role. Email and password material
// never enter a token payload.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Service) sign(userID, role string, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return t.SignedString(secret)
}

func (s *Service) GenerateAccess(userID, role string) (string, error) {
	return s.sign(userID, role, s.accessSecret, s.accessTTL)
}

func (s *Service) GenerateRefresh(userID, role string) (string, error) {
	return s.sign(userID, role, s.refreshSecret, s.refreshTTL)
}

// GeneratePair mints an access/refresh pair bound to the same user.
func (s *Service) GeneratePair(userID, role string) (*token.Pair, error) {
	access, err := s.GenerateAccess(userID, role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.GenerateRefresh(userID, role)
	if err != nil {
		return nil, err
	}
	return &token.Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) validate(tokenStr string, secret []byte) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Expiry, bad signature and malformed input all land here; each is a
	// recoverable auth failure, not a server fault.
	if err != nil || !t.Valid {
		return nil, apperrors.Wrap(apperrors.KindUnauthorized, "Token is invalid", err)
	}

	claims, ok := t.Claims.(*Claims)
	if !ok {
		return nil, apperrors.New(apperrors.KindUnauthorized, "Token is invalid")
	}
	return claims, nil
}

// ValidateAccess verifies signature and expiry against the access secret.
func (s *Service) ValidateAccess(tokenStr string) (*Claims, error) {
	return s.validate(tokenStr, s.accessSecret)
}

// ValidateRefresh verifies signature and expiry against the refresh secret.
func (s *Service) ValidateRefresh(tokenStr string) (*Claims, error) {
	return s.validate(tokenStr, s.refreshSecret)
}
