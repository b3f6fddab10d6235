package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
)

// eventRepo defines the countdown event repository interface needed by event service.
type eventRepo interface {
	List(ctx context.Context, userID uuid.UUID, f domain.EventFilter) ([]domain.CountdownEvent, int, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.CountdownEvent, error)
	Create(ctx context.Context, e *domain.CountdownEvent) (*domain.CountdownEvent, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch domain.EventPatch) (*domain.CountdownEvent, error)
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
}

// Service implements countdown event operations.
type Service struct {
	log    *slog.Logger
	events eventRepo
	now    func() time.Time
}

// NewService creates a new event service instance.
func NewService(logger *slog.Logger, events eventRepo) *Service {
	return &Service{
		log:    logger.With("service", "event"),
		events: events,
		now:    time.Now,
	}
}

// EventView is an event together with its computed countdown.
type EventView struct {
	domain.CountdownEvent
	NextOccurrence time.Time
	DaysRemaining  int
}

func (s *Service) view(e *domain.CountdownEvent, now time.Time) EventView {
	return EventView{
		CountdownEvent: *e,
		NextOccurrence: e.NextOccurrence(now),
		DaysRemaining:  e.DaysRemaining(now),
	}
}
