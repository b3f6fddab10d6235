package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kadong/kadong-backend/internal/auth"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented session is revoked and a
// new one is issued. Unknown, revoked or expired tokens yield ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput, client ClientInfo) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	var result *AuthResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.GetActiveByHash(txCtx, hash)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("get session: %w", err)
		}

		// A concurrent refresh with the same token loses here.
		if err := s.sessions.Revoke(txCtx, session.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("revoke session: %w", err)
		}

		user, err := s.users.GetByID(txCtx, session.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("get user: %w", err)
		}

		result, err = s.issueTokens(txCtx, user, client)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}

	s.log.DebugContext(ctx, "session rotated", slog.String("user_id", result.User.ID.String()))

	return result, nil
}
