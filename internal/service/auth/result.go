package auth

import (
	"time"

	"github.com/kadong/kadong-backend/internal/domain"
)

// AuthResult is returned by Register, Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresAt    time.Time
	User         *domain.User
}

// ClientInfo describes the caller a session is issued to.
type ClientInfo struct {
	UserAgent string
	IP        string
}
