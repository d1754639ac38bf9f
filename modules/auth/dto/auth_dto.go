package dto

import (
	"net/mail"
	"strings"
	"time"
	"unicode"

	"slotswapper/core/controller"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

// Normalize trims and lowercases the fields that are compared against the store.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *RegisterRequest) Validate() []controller.ValidationError {
	var errs []controller.ValidationError

	if len(r.Name) < 2 || len(r.Name) > 50 {
		errs = append(errs, controller.NewValidationError("name", "Name must be between 2 and 50 characters"))
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = append(errs, controller.NewValidationError("email", "Please provide a valid email address"))
	}
	if msg := validatePassword(r.Password); msg != "" {
		errs = append(errs, controller.NewValidationError("password", msg))
	}
	return errs
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *LoginRequest) Validate() []controller.ValidationError {
	var errs []controller.ValidationError

	if _, err := mail.ParseAddress(r.Email); err != nil || len(r.Email) > 254 {
		errs = append(errs, controller.NewValidationError("email", "Please provide a valid email address"))
	}
	if r.Password == "" || len(r.Password) > 128 {
		errs = append(errs, controller.NewValidationError("password", "Password is required"))
	}
	return errs
}

// Password policy: at least 8 characters with one lowercase letter, one
// uppercase letter and one digit.
func validatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long"
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return "Password must contain at least one lowercase letter, one uppercase letter, and one number"
	}
	return ""
}
