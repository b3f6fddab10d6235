package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kadong/kadong-backend/internal/domain"
)

// Register creates a password account and signs the new user in.
// A duplicate e-mail yields domain.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, input RegisterInput, client ClientInfo) (*AuthResult, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, &domain.User{
			Email:        input.Email,
			PasswordHash: hash,
			Name:         input.Name,
			Role:         domain.UserRoleUser,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.issueTokens(txCtx, user, client)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", result.User.ID.String()))

	return result, nil
}
