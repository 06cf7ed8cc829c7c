package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/domain/token"
)

const (
	CtxUserRole = "userRole"
	CtxUserID   = "userID"
)

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"statusCode": status,
		"message":    msg,
	})
}

// AuthMiddleware gates every protected route. The check order is part of
// the API contract: a blacklisted token is reported as blacklisted even
// when it would also fail signature verification.
func AuthMiddleware(
	tokens ports.TokenService,
	blacklist token.BlacklistRepository,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenStr == authHeader {
			abort(c, http.StatusUnauthorized, "Token is required")
			return
		}

		blocked, err := blacklist.Exists(c.Request.Context(), tokenStr)
		if err != nil {
			logger.Error("blacklist lookup error", zap.Error(err))
			abort(c, http.StatusInternalServerError, "internal error")
			return
		}
		if blocked {
			abort(c, http.StatusUnauthorized, "Token is blacklisted")
			return
		}

		claims, err := tokens.ValidateAccess(tokenStr)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Token is invalid")
			return
		}

		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxUserID, claims.UserID)

		c.Next()
	}
}

// RequireRole consumes the identity attached by AuthMiddleware and must
// run after it.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRole) != role {
			abort(c, http.StatusForbidden, "Forbidden resource")
			return
		}
		c.Next()
	}
}
