package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"file-storage-api/config"
	"file-storage-api/internal/domain/user"
	"file-storage-api/internal/infrastructure/jwt"
)

type memBlacklist struct {
	tokens map[string]struct{}
}

func (m *memBlacklist) Add(_ context.Context, t string) error {
	m.tokens[t] = struct{}{}
	return nil
}

func (m *memBlacklist) Exists(_ context.Context, t string) (bool, error) {
	_, ok := m.tokens[t]
	return ok, nil
}

func newTestJWT(t *testing.T) *jwt.Service {
	t.Helper()
	return jwt.New(config.JWT{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	})
}

func setupAuthRouter(t *testing.T, tokens *jwt.Service, blacklist *memBlacklist) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens, blacklist, zap.NewNop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(CtxUserID)})
	})
	r.GET("/admin",
		AuthMiddleware(tokens, blacklist, zap.NewNop()),
		RequireRole(user.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func doAuthReq(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func messageOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		StatusCode int    `json:"statusCode"`
		Message    string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, rr.Code, body.StatusCode)
	return body.Message
}

func TestAuthMiddleware_Table(t *testing.T) {
	tokens := newTestJWT(t)
	blacklist := &memBlacklist{tokens: map[string]struct{}{}}
	r := setupAuthRouter(t, tokens, blacklist)

	userID := uuid.NewString()
	access, err := tokens.GenerateAccess(userID, user.RoleUser)
	require.NoError(t, err)

	refresh, err := tokens.GenerateRefresh(userID, user.RoleUser)
	require.NoError(t, err)

	// a different subject, otherwise the claims (and so the HS256 token
	// bytes) would be identical to access and blacklist it too
	blocked, err := tokens.GenerateAccess(uuid.NewString(), user.RoleUser)
	require.NoError(t, err)
	require.NoError(t, blacklist.Add(context.Background(), blocked))
	require.NotEqual(t, access, blocked)

	cases := []struct {
		name        string
		header      string
		wantCode    int
		wantMessage string
	}{
		{"missing header", "", http.StatusUnauthorized, "Token is required"},
		{"no bearer prefix", access, http.StatusUnauthorized, "Token is required"},
		{"blacklisted token", "Bearer " + blocked, http.StatusUnauthorized, "Token is blacklisted"},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, "Token is invalid"},
		{"refresh token on access gate", "Bearer " + refresh, http.StatusUnauthorized, "Token is invalid"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			rr := doAuthReq(r, "/protected", tt.header)
			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantMessage, messageOf(t, rr))
		})
	}

	t.Run("valid token passes identity", func(t *testing.T) {
		rr := doAuthReq(r, "/protected", "Bearer "+access)
		require.Equal(t, http.StatusOK, rr.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, userID, body["user_id"])
	})
}

// A blacklisted token that would also fail signature checks must still be
// reported as blacklisted: the blacklist lookup runs first.
func TestAuthMiddleware_BlacklistBeforeSignature(t *testing.T) {
	tokens := newTestJWT(t)
	blacklist := &memBlacklist{tokens: map[string]struct{}{"bogus-token": {}}}
	r := setupAuthRouter(t, tokens, blacklist)

	rr := doAuthReq(r, "/protected", "Bearer bogus-token")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Token is blacklisted", messageOf(t, rr))
}

func TestRequireRole(t *testing.T) {
	tokens := newTestJWT(t)
	blacklist := &memBlacklist{tokens: map[string]struct{}{}}
	r := setupAuthRouter(t, tokens, blacklist)

	userToken, err := tokens.GenerateAccess(uuid.NewString(), user.RoleUser)
	require.NoError(t, err)
	adminToken, err := tokens.GenerateAccess(uuid.NewString(), user.RoleAdmin)
	require.NoError(t, err)

	rr := doAuthReq(r, "/admin", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = doAuthReq(r, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, rr.Code)
}
