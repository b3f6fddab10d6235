package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kadong/kadong-backend/internal/auth"
	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/validate"
)

// ErrInvalidResetToken is returned for unknown, used or expired reset tokens.
var ErrInvalidResetToken = domain.NewValidationError("token", "invalid or expired reset token")

// ForgotPassword stores a reset token for the account behind email, if any.
// The outcome is the same whether or not the account exists. Delivery is not
// implemented; the raw token is logged at debug level.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.NewValidationError("email", "required")
	}
	if !validate.Email(email) {
		return domain.NewValidationError("email", "invalid email format")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("auth.ForgotPassword get user: %w", err)
	}

	raw, hash, err := s.newToken()
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword generate token: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.resets.InvalidateForUser(txCtx, user.ID); err != nil {
			return err
		}
		_, err := s.resets.Create(txCtx, &domain.PasswordReset{
			UserID:    user.ID,
			TokenHash: hash,
			ExpiresAt: s.now().Add(s.cfg.PasswordResetTTL),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword: %w", err)
	}

	s.log.DebugContext(ctx, "password reset token issued",
		slog.String("user_id", user.ID.String()),
		slog.String("token", raw))

	return nil
}

// ResetPassword consumes a reset token, sets the new password and revokes
// every session of the account.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword hash password: %w", err)
	}

	var userIDStr string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reset, err := s.resets.Consume(txCtx, auth.HashToken(input.Token))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrInvalidResetToken
			}
			return fmt.Errorf("consume token: %w", err)
		}
		userIDStr = reset.UserID.String()

		if err := s.users.UpdatePassword(txCtx, reset.UserID, hash); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if _, err := s.sessions.RevokeAllByUser(txCtx, reset.UserID); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
		return s.resets.InvalidateForUser(txCtx, reset.UserID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return err
		}
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("user_id", userIDStr))
	return nil
}
