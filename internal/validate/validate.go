// Package validate holds pure field predicates shared by all resources.
// None of them panic or touch storage; callers turn a false result into a
// validation error.
package validate

import (
	"math"
	"net/mail"
	"net/url"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
)

const (
	MinLimit          = 1
	MaxLimit          = 100
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt input limit
)

var blockedSchemes = []string{"javascript:", "data:", "file:", "vbscript:"}

// UUID reports whether s parses as a UUID of any version.
func UUID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// URL reports whether s is an absolute http(s) URL with a host.
func URL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	lower := strings.ToLower(s)
	for _, p := range blockedSchemes {
		if strings.HasPrefix(lower, p) {
			return false
		}
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// Price accepts an absent price or a finite non-negative number.
func Price(p *float64) bool {
	if p == nil {
		return true
	}
	v := *p
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Currency reports whether the upper-cased s is a supported currency.
func Currency(s string) bool {
	_, ok := domain.ParseCurrency(s)
	return ok
}

// Category accepts nil, the empty string, or one of the fixed categories.
func Category(s *string) bool {
	if s == nil || *s == "" {
		return true
	}
	return domain.WishlistCategory(*s).IsValid()
}

// Limit accepts an absent limit or one in [1, 100].
func Limit(n *int) bool {
	return n == nil || (*n >= MinLimit && *n <= MaxLimit)
}

// Offset accepts an absent or non-negative offset.
func Offset(n *int) bool {
	return n == nil || *n >= 0
}

// Email reports whether s is a bare e-mail address.
func Email(s string) bool {
	if s == "" || len(s) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

// PasswordResult is the outcome of a multi-rule password check.
type PasswordResult struct {
	Valid bool
	Error string
}

// Password requires 8..72 characters with an upper-case letter, a
// lower-case letter and a digit.
func Password(s string) PasswordResult {
	if len(s) < MinPasswordLength {
		return PasswordResult{Error: "password must be at least 8 characters"}
	}
	if len(s) > MaxPasswordLength {
		return PasswordResult{Error: "password must be at most 72 bytes"}
	}

	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	switch {
	case !upper:
		return PasswordResult{Error: "password must contain an uppercase letter"}
	case !lower:
		return PasswordResult{Error: "password must contain a lowercase letter"}
	case !digit:
		return PasswordResult{Error: "password must contain a digit"}
	}
	return PasswordResult{Valid: true}
}
