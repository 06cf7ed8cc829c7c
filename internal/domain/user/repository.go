package user

import (
	"context"
	"errors"
)

// ErrEmailAlreadyExists reports a unique-index hit on users.email; two
// concurrent signups can both pass the pre-check and race into CreateUser.
var ErrEmailAlreadyExists = errors.New("email already exists")

// Repository returns (nil, nil) when a user is absent; only unexpected
// database failures produce errors.
type Repository interface {
	FetchUsers(ctx context.Context, page int) (Users, error)
	FetchUserByID(ctx context.Context, uuid UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUserRole(ctx context.Context, uuid UUID, role string) (*User, error)
	DeleteUser(ctx context.Context, uuid UUID) (*User, error)
}
