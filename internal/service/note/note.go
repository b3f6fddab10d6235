package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

// ListNotes returns the caller's notes, pinned first, and the total count.
func (s *Service) ListNotes(ctx context.Context, filter domain.NoteFilter) ([]domain.Note, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	filter.Page = filter.Page.Normalize()

	notes, total, err := s.notes.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("note.ListNotes: %w", err)
	}
	return notes, total, nil
}

// GetNote returns one of the caller's notes.
func (s *Service) GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.notes.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("note.GetNote: %w", err)
	}
	return n, nil
}

// CreateNote creates a note owned by the caller.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.notes.Create(ctx, &domain.Note{
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
		Color:   input.Color,
		Pinned:  input.Pinned,
	})
	if err != nil {
		return nil, fmt.Errorf("note.CreateNote: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID.String()),
		slog.String("note_id", created.ID.String()))

	return created, nil
}

// UpdateNote applies a partial update to one of the caller's notes.
func (s *Service) UpdateNote(ctx context.Context, id uuid.UUID, input UpdateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.notes.Update(ctx, userID, id, input.Patch())
	if err != nil {
		return nil, fmt.Errorf("note.UpdateNote: %w", err)
	}
	return updated, nil
}

// TogglePin flips the pinned flag of one of the caller's notes.
func (s *Service) TogglePin(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.notes.TogglePin(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("note.TogglePin: %w", err)
	}
	return n, nil
}

// DeleteNote soft-deletes one of the caller's notes. A note that is already
// deleted is reported as not found.
func (s *Service) DeleteNote(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.notes.SoftDelete(ctx, userID, id); err != nil {
		return fmt.Errorf("note.DeleteNote: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("user_id", userID.String()),
		slog.String("note_id", id.String()))

	return nil
}
