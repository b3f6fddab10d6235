package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/service/event"
	"github.com/kadong/kadong-backend/internal/transport/respond"
)

type eventService interface {
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]event.EventView, int, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*event.EventView, error)
	CreateEvent(ctx context.Context, input event.CreateEventInput) (*event.EventView, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, input event.UpdateEventInput) (*event.EventView, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

// EventHandler serves /api/events.
type EventHandler struct {
	svc  eventService
	errs *respond.Errors
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, errs *respond.Errors) *EventHandler {
	return &EventHandler{svc: svc, errs: errs}
}

// event_date is decoded as a string so a malformed timestamp surfaces as a
// field error instead of a body decoding failure.
type createEventRequest struct {
	UserID      *string `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	EventDate   string  `json:"event_date"`
	Recurring   *string `json:"recurring"`
	Timezone    string  `json:"timezone"`
	Color       string  `json:"color"`
}

type updateEventRequest struct {
	Title       domain.Optional[string]            `json:"title"`
	Description domain.Optional[string]            `json:"description"`
	EventDate   domain.Optional[string]            `json:"event_date"`
	Recurring   domain.Optional[domain.Recurrence] `json:"recurring"`
	Timezone    domain.Optional[string]            `json:"timezone"`
	Color       domain.Optional[domain.Color]      `json:"color"`
}

// List handles GET /api/events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	upcoming, err := queryBool(r, "upcoming")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	filter := domain.EventFilter{Page: page}
	if upcoming != nil {
		filter.Upcoming = *upcoming
	}

	events, total, err := h.svc.ListEvents(r.Context(), filter)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.List(w, mapSlice(events, toEventResponse), total)
}

// Get handles GET /api/events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	v, err := h.svc.GetEvent(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toEventResponse(v))
}

// Create handles POST /api/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	r = withBodyUser(r, req.UserID)

	input := event.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Timezone:    req.Timezone,
		Color:       domain.Color(req.Color),
	}
	if req.EventDate != "" {
		t, err := parseTimestamp(req.EventDate)
		if err != nil {
			h.errs.Write(w, r, err)
			return
		}
		input.EventDate = t
	}
	if req.Recurring != nil {
		rec := domain.Recurrence(*req.Recurring)
		input.Recurring = &rec
	}

	v, err := h.svc.CreateEvent(r.Context(), input)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusCreated, toEventResponse(v))
}

// Update handles PUT /api/events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := event.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Recurring:   req.Recurring,
		Timezone:    req.Timezone,
		Color:       req.Color,
	}
	switch {
	case !req.EventDate.Set:
	case req.EventDate.Null:
		input.EventDate = domain.Null[time.Time]()
	default:
		t, err := parseTimestamp(req.EventDate.Value)
		if err != nil {
			h.errs.Write(w, r, err)
			return
		}
		input.EventDate = domain.Some(t)
	}

	v, err := h.svc.UpdateEvent(r.Context(), id, input)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toEventResponse(v))
}

// Delete handles DELETE /api/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteEvent(r.Context(), id); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Message(w, http.StatusOK, "Event deleted")
}

func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError("event_date", "must be an RFC 3339 timestamp")
	}
	return t, nil
}
