package validator

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"file-storage-api/internal/interface/api/rest/dto/auth"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	defaultPage  = 1
	defaultLimit = 10
)

func ValidatePage(page string) (int, bool) {
	if page == "" {
		return defaultPage, true
	}
	p, err := strconv.Atoi(page)
	if err != nil {
		return 0, false
	}
	return p, true
}

func ValidateLimit(limit string) (int, bool) {
	if limit == "" {
		return defaultLimit, true
	}
	l, err := strconv.Atoi(limit)
	if err != nil {
		return 0, false
	}
	return l, true
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidateFileName guards the :fileName path segment. Keys embed the name
// verbatim, so separators and traversal dots are rejected up front.
func ValidateFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\")
}

func ValidateCredentials(r auth.CredentialsRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))
	password := r.Password

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
