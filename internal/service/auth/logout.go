package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kadong/kadong-backend/internal/auth"
	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

// Logout revokes the session of refreshToken, or every session of the
// authenticated user when refreshToken is empty. Logging out with a token
// that is already gone is not an error.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if refreshToken != "" {
		err := s.sessions.RevokeByHash(ctx, userID, auth.HashToken(refreshToken))
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("auth.Logout: %w", err)
		}
		s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
		return nil
	}

	n, err := s.sessions.RevokeAllByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out everywhere",
		slog.String("user_id", userID.String()),
		slog.Int64("sessions", n))
	return nil
}

// CleanupSessions removes sessions that expired or were revoked more than
// retention ago. This is a maintenance operation.
func (s *Service) CleanupSessions(ctx context.Context, retention time.Duration) (int64, error) {
	count, err := s.sessions.DeleteStale(ctx, s.now().Add(-retention))
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up stale sessions", slog.Int64("count", count))
	}

	return count, nil
}
