package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"file-storage-api/internal/interface/api/rest/middleware"
)

// userUUIDFromCtx reads the identity attached by the auth middleware.
// A missing or malformed id means the route was wired without the
// middleware, so the request is aborted rather than served unscoped.
func userUUIDFromCtx(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(middleware.CtxUserID))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
			StatusCode: http.StatusUnauthorized,
			Message:    "Token is invalid",
		})
		return uuid.Nil, false
	}
	return id, true
}
