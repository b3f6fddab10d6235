package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a message left by any visitor.
type Feedback struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Message   string
	Rating    *int
	CreatedAt time.Time
}
