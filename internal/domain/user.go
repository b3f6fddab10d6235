package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an application account.
type User struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	Name          string
	Role          UserRole
	EmailVerified bool
	Preferences   json.RawMessage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Session is a refresh-token session. A session is dead once RevokedAt is set.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	UserAgent string
	IP        string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// IsActive returns true if the session can still be used at now.
func (s *Session) IsActive(now time.Time) bool {
	return !s.IsRevoked() && !s.IsExpired(now)
}

// PasswordReset is a single-use password reset token.
type PasswordReset struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsUsable returns true if the token has not been used and has not expired.
func (p *PasswordReset) IsUsable(now time.Time) bool {
	return p.UsedAt == nil && p.ExpiresAt.After(now)
}

// UserPatch carries the profile fields a user may change.
type UserPatch struct {
	Name        Optional[string]
	Preferences Optional[json.RawMessage]
}

// IsEmpty reports whether no field is set.
func (p UserPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Preferences.Set
}
