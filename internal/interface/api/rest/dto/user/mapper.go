package user

import (
	"file-storage-api/internal/domain/user"
)

func ToResponseUser(u user.User) User {
	return User{
		UUID:      u.UUID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func ToResponseUsers(users user.Users) Users {
	out := make(Users, 0, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		out = append(out, ToResponseUser(*u))
	}
	return out
}
