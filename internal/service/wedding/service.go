package wedding

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/validate"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
	"github.com/kadong/kadong-backend/pkg/sanitize"
)

const (
	maxBaseURLLength = 500
	maxGuestLength   = 100
)

var httpPrefix = regexp.MustCompile(`^https?://`)

// urlRepo defines the wedding URL repository interface needed by wedding service.
type urlRepo interface {
	Replace(ctx context.Context, userID uuid.UUID, baseURL string) (*domain.WeddingURL, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.WeddingURL, error)
	History(ctx context.Context, userID uuid.UUID, page domain.Page) ([]domain.WeddingURL, int, error)
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
}

// Service implements wedding invitation URL operations.
type Service struct {
	log  *slog.Logger
	urls urlRepo
}

// NewService creates a new wedding service instance.
func NewService(logger *slog.Logger, urls urlRepo) *Service {
	return &Service{
		log:  logger.With("service", "wedding"),
		urls: urls,
	}
}

// Save makes baseURL the caller's active invitation URL, retiring the
// previous one in the same transaction.
func (s *Service) Save(ctx context.Context, baseURL string) (*domain.WeddingURL, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	baseURL = strings.TrimSpace(baseURL)
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}

	w, err := s.urls.Replace(ctx, userID, baseURL)
	if err != nil {
		return nil, fmt.Errorf("wedding.Save: %w", err)
	}

	s.log.InfoContext(ctx, "wedding url saved",
		slog.String("user_id", userID.String()),
		slog.String("url_id", w.ID.String()))

	return w, nil
}

// Active returns the caller's active URL or domain.ErrNotFound.
func (s *Service) Active(ctx context.Context) (*domain.WeddingURL, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	w, err := s.urls.GetActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wedding.Active: %w", err)
	}
	return w, nil
}

// History lists every URL the caller has saved, newest first.
func (s *Service) History(ctx context.Context, page domain.Page) ([]domain.WeddingURL, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	urls, total, err := s.urls.History(ctx, userID, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("wedding.History: %w", err)
	}
	return urls, total, nil
}

// Invitation builds the personalised link for guest from the active URL.
func (s *Service) Invitation(ctx context.Context, guest string) (string, error) {
	// Plain text only; the query encoder is the single escaping layer.
	guest = sanitize.ProductName(guest, sanitize.DefaultProductNameLength)
	switch {
	case guest == "":
		return "", domain.NewValidationError("guest", "required")
	case utf8.RuneCountInString(guest) > maxGuestLength:
		return "", domain.NewValidationError("guest", "must be at most 100 characters")
	}

	w, err := s.Active(ctx)
	if err != nil {
		return "", err
	}

	link, err := w.InvitationURL(guest)
	if err != nil {
		return "", fmt.Errorf("wedding.Invitation: %w", err)
	}
	return link, nil
}

// Delete retires one of the caller's URLs.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.urls.SoftDelete(ctx, userID, id); err != nil {
		return fmt.Errorf("wedding.Delete: %w", err)
	}
	return nil
}

func validateBaseURL(u string) error {
	switch {
	case u == "":
		return domain.NewValidationError("base_url", "required")
	case utf8.RuneCountInString(u) > maxBaseURLLength:
		return domain.NewValidationError("base_url", "must be at most 500 characters")
	case !httpPrefix.MatchString(u) || !validate.URL(u):
		return domain.NewValidationError("base_url", "must start with http:// or https://")
	}
	return nil
}
