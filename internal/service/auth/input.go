package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/validate"
	"github.com/kadong/kadong-backend/pkg/sanitize"
)

const maxNameLength = 100

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Normalize lower-cases the e-mail and reduces the display name to one line
// of plain text. Names are stored unescaped.
func (i *RegisterInput) Normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Name = sanitize.ProductName(i.Name, sanitize.DefaultProductNameLength)
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs domain.FieldErrors

	if i.Email == "" {
		errs.Add("email", "required")
	} else if !validate.Email(i.Email) {
		errs.Add("email", "invalid email format")
	}

	if i.Password == "" {
		errs.Add("password", "required")
	} else if res := validate.Password(i.Password); !res.Valid {
		errs.Add("password", res.Error)
	}

	if i.Name == "" {
		errs.Add("name", "required")
	} else if utf8.RuneCountInString(i.Name) > maxNameLength {
		errs.Add("name", "must be at most 100 characters")
	}

	return errs.Err()
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs domain.FieldErrors

	if strings.TrimSpace(i.Email) == "" {
		errs.Add("email", "required")
	}
	if i.Password == "" {
		errs.Add("password", "required")
	}

	return errs.Err()
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs domain.FieldErrors

	if i.RefreshToken == "" {
		errs.Add("refresh_token", "required")
	} else if len(i.RefreshToken) > 512 {
		errs.Add("refresh_token", "too long")
	}

	return errs.Err()
}

// ResetPasswordInput holds parameters for completing a password reset.
type ResetPasswordInput struct {
	Token    string
	Password string
}

// Validate validates the reset input.
func (i ResetPasswordInput) Validate() error {
	var errs domain.FieldErrors

	if i.Token == "" {
		errs.Add("token", "required")
	} else if len(i.Token) > 512 {
		errs.Add("token", "too long")
	}

	if i.Password == "" {
		errs.Add("password", "required")
	} else if res := validate.Password(i.Password); !res.Valid {
		errs.Add("password", res.Error)
	}

	return errs.Err()
}
