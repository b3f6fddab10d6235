package note

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
)

// noteRepo defines the note repository interface needed by note service.
type noteRepo interface {
	List(ctx context.Context, userID uuid.UUID, f domain.NoteFilter) ([]domain.Note, int, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error)
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch domain.NotePatch) (*domain.Note, error)
	TogglePin(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error)
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
}

// Service implements note operations.
type Service struct {
	log   *slog.Logger
	notes noteRepo
}

// NewService creates a new note service instance.
func NewService(logger *slog.Logger, notes noteRepo) *Service {
	return &Service{
		log:   logger.With("service", "note"),
		notes: notes,
	}
}
