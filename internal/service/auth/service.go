package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/auth"
	"github.com/kadong/kadong-backend/internal/config"
	"github.com/kadong/kadong-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
}

// sessionRepo defines the refresh session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
	GetActiveByHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeByHash(ctx context.Context, userID uuid.UUID, tokenHash string) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// resetRepo defines the password reset repository interface needed by auth service.
type resetRepo interface {
	Create(ctx context.Context, p *domain.PasswordReset) (*domain.PasswordReset, error)
	Consume(ctx context.Context, tokenHash string) (*domain.PasswordReset, error)
	InvalidateForUser(ctx context.Context, userID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// tokenManager defines the access token interface needed by auth service.
type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error)
	ValidateAccessToken(token string) (auth.Identity, error)
}

// passwordHasher defines the password hashing interface needed by auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	resets   resetRepo
	tx       txManager
	tokens   tokenManager
	hasher   passwordHasher
	cfg      config.AuthConfig

	newToken func() (raw, hash string, err error)
	now      func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	resets resetRepo,
	tx txManager,
	tokens tokenManager,
	hasher passwordHasher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		resets:   resets,
		tx:       tx,
		tokens:   tokens,
		hasher:   hasher,
		cfg:      cfg,
		newToken: auth.GenerateOpaqueToken,
		now:      time.Now,
	}
}

// issueTokens signs an access token and stores a new refresh session.
func (s *Service) issueTokens(ctx context.Context, user *domain.User, client ClientInfo) (*AuthResult, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	expiresAt := s.now().Add(s.cfg.RefreshTokenTTL)
	session := &domain.Session{
		UserID:    user.ID,
		TokenHash: hashRefresh,
		UserAgent: truncate(client.UserAgent, 512),
		IP:        client.IP,
		ExpiresAt: expiresAt,
	}
	if _, err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresAt:    expiresAt,
		User:         user,
	}, nil
}

// ValidateToken validates an access token and returns the identity it carries.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (auth.Identity, error) {
	id, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return auth.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
