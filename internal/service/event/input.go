package event

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/sanitize"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 2000
)

// CreateEventInput holds parameters for creating a countdown event.
type CreateEventInput struct {
	Title       string
	Description *string
	EventDate   time.Time
	Recurring   *domain.Recurrence
	Timezone    string
	Color       domain.Color
}

// Normalize sanitizes text fields and applies defaults.
func (i *CreateEventInput) Normalize() {
	i.Title = sanitize.Trimmed(i.Title)
	if i.Description != nil {
		d := sanitize.Trimmed(*i.Description)
		if d == "" {
			i.Description = nil
		} else {
			i.Description = &d
		}
	}
	if i.Recurring != nil && *i.Recurring == "" {
		i.Recurring = nil
	}
	i.Timezone = strings.TrimSpace(i.Timezone)
	if i.Timezone == "" {
		i.Timezone = domain.DefaultTimezone
	}
	i.Color = domain.Color(strings.ToLower(strings.TrimSpace(string(i.Color))))
	if i.Color == "" {
		i.Color = domain.DefaultColor
	}
}

// Validate validates the create input.
func (i CreateEventInput) Validate() error {
	var errs domain.FieldErrors

	validateTitle(&errs, i.Title)
	if i.Description != nil {
		validateDescription(&errs, *i.Description)
	}
	if i.EventDate.IsZero() {
		errs.Add("event_date", "required")
	}
	if i.Recurring != nil && !i.Recurring.IsValid() {
		errs.Add("recurring", "must be one of daily, weekly, monthly, yearly")
	}
	validateTimezone(&errs, i.Timezone)
	if !i.Color.IsValid() {
		errs.Add("color", "invalid color")
	}

	return errs.Err()
}

// UpdateEventInput holds the fields of a partial event update. Description
// and recurring may be cleared with an explicit null.
type UpdateEventInput struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
	EventDate   domain.Optional[time.Time]
	Recurring   domain.Optional[domain.Recurrence]
	Timezone    domain.Optional[string]
	Color       domain.Optional[domain.Color]
}

// Normalize sanitizes the text fields that are present.
func (i *UpdateEventInput) Normalize() {
	if i.Title.Set && !i.Title.Null {
		i.Title.Value = sanitize.Trimmed(i.Title.Value)
	}
	if i.Description.Set && !i.Description.Null {
		i.Description.Value = sanitize.Trimmed(i.Description.Value)
		if i.Description.Value == "" {
			i.Description = domain.Null[string]()
		}
	}
	if i.Recurring.Set && !i.Recurring.Null && i.Recurring.Value == "" {
		i.Recurring = domain.Null[domain.Recurrence]()
	}
	if i.Timezone.Set && !i.Timezone.Null {
		i.Timezone.Value = strings.TrimSpace(i.Timezone.Value)
	}
	if i.Color.Set && !i.Color.Null {
		i.Color.Value = domain.Color(strings.ToLower(strings.TrimSpace(string(i.Color.Value))))
	}
}

// Validate validates the update input.
func (i UpdateEventInput) Validate() error {
	if !i.Title.Set && !i.Description.Set && !i.EventDate.Set &&
		!i.Recurring.Set && !i.Timezone.Set && !i.Color.Set {
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
	if i.Description.Set && !i.Description.Null {
		validateDescription(&errs, i.Description.Value)
	}
	if i.EventDate.Set && (i.EventDate.Null || i.EventDate.Value.IsZero()) {
		errs.Add("event_date", "required")
	}
	if i.Recurring.Set && !i.Recurring.Null && !i.Recurring.Value.IsValid() {
		errs.Add("recurring", "must be one of daily, weekly, monthly, yearly")
	}
	if i.Timezone.Set {
		if i.Timezone.Null {
			errs.Add("timezone", "required")
		} else {
			validateTimezone(&errs, i.Timezone.Value)
		}
	}
	if i.Color.Set && (i.Color.Null || !i.Color.Value.IsValid()) {
		errs.Add("color", "invalid color")
	}

	return errs.Err()
}

// Patch converts the input into a repository patch.
func (i UpdateEventInput) Patch() domain.EventPatch {
	return domain.EventPatch{
		Title:       i.Title,
		Description: i.Description,
		EventDate:   i.EventDate,
		Recurring:   i.Recurring,
		Timezone:    i.Timezone,
		Color:       i.Color,
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

func validateDescription(errs *domain.FieldErrors, d string) {
	if utf8.RuneCountInString(d) > maxDescriptionLength {
		errs.Add("description", "must be at most 2000 characters")
	}
}

func validateTimezone(errs *domain.FieldErrors, tz string) {
	if len(tz) > 64 {
		errs.Add("timezone", "unknown timezone")
		return
	}
	if _, err := time.LoadLocation(tz); err != nil {
		errs.Add("timezone", "unknown timezone")
	}
}
