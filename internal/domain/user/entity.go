package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type (
	UUID = uuid.UUID
	User struct {
		UUID  uuid.UUID
		Email string
		// PasswordHash must never be serialized outward; response mappers
		// drop it.
		PasswordHash *string
		Role         string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Users []*User
)

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
