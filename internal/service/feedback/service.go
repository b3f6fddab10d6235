package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
	"github.com/kadong/kadong-backend/pkg/sanitize"
)

const maxMessageLength = 2000

type feedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	List(ctx context.Context, page domain.Page) ([]domain.Feedback, int, error)
}

// Service stores visitor feedback.
type Service struct {
	log      *slog.Logger
	feedback feedbackRepo
}

func NewService(logger *slog.Logger, feedback feedbackRepo) *Service {
	return &Service{
		log:      logger.With("service", "feedback"),
		feedback: feedback,
	}
}

// CreateInput is a feedback submission.
type CreateInput struct {
	Message string
	Rating  *int
}

func (i *CreateInput) Normalize() {
	i.Message = sanitize.Comment(i.Message, maxMessageLength)
}

func (i CreateInput) Validate() error {
	var errs domain.FieldErrors

	if i.Message == "" {
		errs.Add("message", "required")
	}
	if i.Rating != nil && (*i.Rating < 1 || *i.Rating > 5) {
		errs.Add("rating", "must be between 1 and 5")
	}

	return errs.Err()
}

// Create records feedback. Anonymous callers are allowed; the user id is
// attached when one is resolved.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Feedback, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := &domain.Feedback{
		Message: input.Message,
		Rating:  input.Rating,
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		f.UserID = &userID
	}

	created, err := s.feedback.Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("feedback.Create: %w", err)
	}

	s.log.InfoContext(ctx, "feedback received",
		slog.String("feedback_id", created.ID.String()),
		slog.Bool("anonymous", f.UserID == nil))

	return created, nil
}

// List returns feedback newest first. Admins only.
func (s *Service) List(ctx context.Context, page domain.Page) ([]domain.Feedback, int, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}

	items, total, err := s.feedback.List(ctx, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("feedback.List: %w", err)
	}
	return items, total, nil
}
