package domain

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// WeddingURL is the base invitation URL of a user. At most one row per user
// has DeletedAt == nil.
type WeddingURL struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	BaseURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsActive returns true if the URL has not been replaced or deleted.
func (w *WeddingURL) IsActive() bool {
	return w.DeletedAt == nil
}

// InvitationURL appends the guest name as the "guest" query parameter.
func (w *WeddingURL) InvitationURL(guest string) (string, error) {
	u, err := url.Parse(w.BaseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("guest", guest)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
