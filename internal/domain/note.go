package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is a user-owned sticky note.
type Note struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Content   string
	Color     Color
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NotePatch holds the updatable fields of a note.
type NotePatch struct {
	Title   Optional[string]
	Content Optional[string]
	Color   Optional[Color]
	Pinned  Optional[bool]
}

// NoteFilter narrows a note listing.
type NoteFilter struct {
	Pinned *bool
	Page   Page
}
