package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

// ListEvents returns the caller's events by event date, each with its
// countdown computed against the same instant.
func (s *Service) ListEvents(ctx context.Context, filter domain.EventFilter) ([]EventView, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	filter.Page = filter.Page.Normalize()

	events, total, err := s.events.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("event.ListEvents: %w", err)
	}

	now := s.now()
	views := make([]EventView, 0, len(events))
	for i := range events {
		views = append(views, s.view(&events[i], now))
	}
	return views, total, nil
}

// GetEvent returns one of the caller's events.
func (s *Service) GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	e, err := s.events.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("event.GetEvent: %w", err)
	}

	v := s.view(e, s.now())
	return &v, nil
}

// CreateEvent creates an event owned by the caller.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*EventView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.events.Create(ctx, &domain.CountdownEvent{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		Recurring:   input.Recurring,
		Timezone:    input.Timezone,
		Color:       input.Color,
	})
	if err != nil {
		return nil, fmt.Errorf("event.CreateEvent: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("user_id", userID.String()),
		slog.String("event_id", created.ID.String()))

	v := s.view(created, s.now())
	return &v, nil
}

// UpdateEvent applies a partial update to one of the caller's events.
func (s *Service) UpdateEvent(ctx context.Context, id uuid.UUID, input UpdateEventInput) (*EventView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.events.Update(ctx, userID, id, input.Patch())
	if err != nil {
		return nil, fmt.Errorf("event.UpdateEvent: %w", err)
	}

	v := s.view(updated, s.now())
	return &v, nil
}

// DeleteEvent soft-deletes one of the caller's events.
func (s *Service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.events.SoftDelete(ctx, userID, id); err != nil {
		return fmt.Errorf("event.DeleteEvent: %w", err)
	}

	s.log.InfoContext(ctx, "event deleted",
		slog.String("user_id", userID.String()),
		slog.String("event_id", id.String()))

	return nil
}
