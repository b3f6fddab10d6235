package note

import (
	"strings"
	"unicode/utf8"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/sanitize"
)

const maxTitleLength = 255

// CreateNoteInput holds parameters for creating a note.
type CreateNoteInput struct {
	Title   string
	Content string
	Color   domain.Color
	Pinned  bool
}

// Normalize sanitizes text fields and applies defaults.
func (i *CreateNoteInput) Normalize() {
	i.Title = sanitize.Trimmed(i.Title)
	i.Content = strings.TrimSpace(sanitize.HTML(i.Content))
	i.Color = domain.Color(strings.ToLower(strings.TrimSpace(string(i.Color))))
	if i.Color == "" {
		i.Color = domain.DefaultColor
	}
}

// Validate validates the create input.
func (i CreateNoteInput) Validate() error {
	var errs domain.FieldErrors

	validateTitle(&errs, i.Title)
	if i.Content == "" {
		errs.Add("content", "required")
	}
	if !i.Color.IsValid() {
		errs.Add("color", "invalid color")
	}

	return errs.Err()
}

// UpdateNoteInput holds the fields of a partial note update.
type UpdateNoteInput struct {
	Title   domain.Optional[string]
	Content domain.Optional[string]
	Color   domain.Optional[domain.Color]
	Pinned  domain.Optional[bool]
}

// Normalize sanitizes the text fields that are present.
func (i *UpdateNoteInput) Normalize() {
	if i.Title.Set && !i.Title.Null {
		i.Title.Value = sanitize.Trimmed(i.Title.Value)
	}
	if i.Content.Set && !i.Content.Null {
		i.Content.Value = strings.TrimSpace(sanitize.HTML(i.Content.Value))
	}
	if i.Color.Set && !i.Color.Null {
		i.Color.Value = domain.Color(strings.ToLower(strings.TrimSpace(string(i.Color.Value))))
	}
}

// Validate validates the update input. Title, content and color cannot be
// cleared.
func (i UpdateNoteInput) Validate() error {
	if !i.Title.Set && !i.Content.Set && !i.Color.Set && !i.Pinned.Set {
		return domain.ErrNoFieldsToUpdate
	}

	var errs domain.FieldErrors

	if i.Title.Set {
		if i.Title.Null {
			errs.Add("title", "required")
		} else {
			validateTitle(&errs, i.Title.Value)
		}
	}
	if i.Content.Set && (i.Content.Null || i.Content.Value == "") {
		errs.Add("content", "required")
	}
	if i.Color.Set && (i.Color.Null || !i.Color.Value.IsValid()) {
		errs.Add("color", "invalid color")
	}
	if i.Pinned.Set && i.Pinned.Null {
		errs.Add("pinned", "must be a boolean")
	}

	return errs.Err()
}

// Patch converts the input into a repository patch.
func (i UpdateNoteInput) Patch() domain.NotePatch {
	return domain.NotePatch{
		Title:   i.Title,
		Content: i.Content,
		Color:   i.Color,
		Pinned:  i.Pinned,
	}
}

func validateTitle(errs *domain.FieldErrors, title string) {
	switch {
	case title == "":
		errs.Add("title", "required")
	case utf8.RuneCountInString(title) > maxTitleLength:
		errs.Add("title", "must be at most 255 characters")
	}
}
