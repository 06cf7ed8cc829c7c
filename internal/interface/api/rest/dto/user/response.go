package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	// User is the outward shape; the password hash never appears here.
	User struct {
		UUID      uuid.UUID `json:"uuid"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
		AvatarURL *string   `json:"avatar_url,omitempty"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
