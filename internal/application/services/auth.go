package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/domain/token"
	"file-storage-api/internal/domain/user"
)

type AuthService struct {
	tokens    ports.TokenService
	users     user.Repository
	blacklist token.BlacklistRepository
	keyTokens token.KeyTokenRepository
	mCounter  *prometheus.CounterVec
}

func NewAuthService(
	tokens ports.TokenService,
	users user.Repository,
	blacklist token.BlacklistRepository,
	keyTokens token.KeyTokenRepository,
	mCounter *prometheus.CounterVec,
) ports.AuthService {
	return &AuthService{
		tokens:    tokens,
		users:     users,
		blacklist: blacklist,
		keyTokens: keyTokens,
		mCounter:  mCounter,
	}
}

func (as *AuthService) SignUp(ctx context.Context, email, password string) (*user.User, *token.Pair, error) {
	existing, err := as.users.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, apperrors.New(apperrors.KindBadRequest, "user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.KindInternal, "hash password", err)
	}
	hashStr := string(hash)

	u, err := as.users.CreateUser(ctx, user.User{
		Email:        email,
		PasswordHash: &hashStr,
		Role:         user.RoleUser,
	})
	if err != nil {
		// a concurrent signup can slip past the pre-check and hit the
		// unique index instead
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, nil, apperrors.Wrap(apperrors.KindBadRequest, "user already exists", err)
		}
		return nil, nil, err
	}

	pair, err := as.issuePair(ctx, u)
	if err != nil {
		return nil, nil, err
	}

	as.mCounter.WithLabelValues("user_signed_up_total").Inc()

	return u, pair, nil
}

func (as *AuthService) Login(ctx context.Context, email, password string) (*token.Pair, error) {
	u, err := as.users.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.PasswordHash == nil {
		return nil, apperrors.New(apperrors.KindUnauthorized, "invalid credentials")
	}

	// Unknown email and wrong password map to distinct statuses on purpose;
	// the original API contract keeps them apart.
	if err = bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.New(apperrors.KindNotAcceptable, "invalid credentials")
	}

	pair, err := as.issuePair(ctx, u)
	if err != nil {
		return nil, err
	}

	as.mCounter.WithLabelValues("user_logged_in_total").Inc()

	return pair, nil
}

func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := as.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	// a refresh token revoked by logout has no key-token record left
	kt, err := as.keyTokens.Find(ctx, hashToken(refreshToken))
	if err != nil {
		return "", err
	}
	if kt == nil {
		return "", apperrors.New(apperrors.KindUnauthorized, "Token is invalid")
	}

	userUUID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindUnauthorized, "Token is invalid", err)
	}
	u, err := as.users.FetchUserByID(ctx, userUUID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", apperrors.New(apperrors.KindUnauthorized, "Token is invalid")
	}

	access, err := as.tokens.GenerateAccess(u.UUID.String(), u.Role)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "generate access token", err)
	}

	as.mCounter.WithLabelValues("token_refreshed_total").Inc()

	return access, nil
}

func (as *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if err := as.blacklist.Add(ctx, accessToken); err != nil {
		return err
	}
	if err := as.blacklist.Add(ctx, refreshToken); err != nil {
		return err
	}
	if err := as.keyTokens.Delete(ctx, hashToken(refreshToken)); err != nil {
		return err
	}

	as.mCounter.WithLabelValues("user_logged_out_total").Inc()

	return nil
}

func (as *AuthService) issuePair(ctx context.Context, u *user.User) (*token.Pair, error) {
	pair, err := as.tokens.GeneratePair(u.UUID.String(), u.Role)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "generate token pair", err)
	}
	if err = as.keyTokens.Create(ctx, u.UUID, hashToken(pair.RefreshToken)); err != nil {
		return nil, err
	}

	return pair, nil
}

// hashToken derives the deterministic lookup key stored in key_tokens.
// bcrypt would be stronger but cannot be queried by value.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
