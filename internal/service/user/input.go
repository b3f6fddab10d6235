package user

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/sanitize"
)

const (
	maxNameLength        = 100
	maxPreferencesLength = 16 << 10
)

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	Name        domain.Optional[string]
	Preferences domain.Optional[json.RawMessage]
}

// Normalize reduces the name to one line of plain text.
func (i *UpdateProfileInput) Normalize() {
	if i.Name.Set && !i.Name.Null {
		i.Name.Value = sanitize.ProductName(i.Name.Value, sanitize.DefaultProductNameLength)
	}
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	if !i.Name.Set && !i.Preferences.Set {
		return domain.ErrNoFieldsToUpdate
	}

	var errs domain.FieldErrors

	if i.Name.Set {
		switch {
		case i.Name.Null || i.Name.Value == "":
			errs.Add("name", "required")
		case utf8.RuneCountInString(i.Name.Value) > maxNameLength:
			errs.Add("name", "must be at most 100 characters")
		}
	}

	if i.Preferences.Set {
		raw := bytes.TrimSpace(i.Preferences.Value)
		switch {
		case i.Preferences.Null:
			errs.Add("preferences", "must be an object")
		case len(raw) > maxPreferencesLength:
			errs.Add("preferences", "too large")
		case len(raw) == 0 || raw[0] != '{' || !json.Valid(raw):
			errs.Add("preferences", "must be an object")
		}
	}

	return errs.Err()
}

// Patch converts the input into a repository patch.
func (i UpdateProfileInput) Patch() domain.UserPatch {
	return domain.UserPatch{Name: i.Name, Preferences: i.Preferences}
}
