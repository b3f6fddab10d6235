package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/service/note"
	"github.com/kadong/kadong-backend/internal/transport/respond"
)

type noteService interface {
	ListNotes(ctx context.Context, filter domain.NoteFilter) ([]domain.Note, int, error)
	GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	CreateNote(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, id uuid.UUID, input note.UpdateNoteInput) (*domain.Note, error)
	TogglePin(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
}

// NoteHandler serves /api/notes.
type NoteHandler struct {
	svc  noteService
	errs *respond.Errors
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, errs *respond.Errors) *NoteHandler {
	return &NoteHandler{svc: svc, errs: errs}
}

type createNoteRequest struct {
	UserID  *string `json:"user_id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Color   string  `json:"color"`
	Pinned  bool    `json:"pinned"`
}

type updateNoteRequest struct {
	Title   domain.Optional[string]       `json:"title"`
	Content domain.Optional[string]       `json:"content"`
	Color   domain.Optional[domain.Color] `json:"color"`
	Pinned  domain.Optional[bool]         `json:"pinned"`
}

// List handles GET /api/notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	pinned, err := queryBool(r, "pinned")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	notes, total, err := h.svc.ListNotes(r.Context(), domain.NoteFilter{Pinned: pinned, Page: page})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.List(w, mapSlice(notes, toNoteResponse), total)
}

// Get handles GET /api/notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	n, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toNoteResponse(n))
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	r = withBodyUser(r, req.UserID)

	n, err := h.svc.CreateNote(r.Context(), note.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Color:   domain.Color(req.Color),
		Pinned:  req.Pinned,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusCreated, toNoteResponse(n))
}

// Update handles PUT /api/notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.svc.UpdateNote(r.Context(), id, note.UpdateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Color:   req.Color,
		Pinned:  req.Pinned,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toNoteResponse(n))
}

// TogglePin handles PATCH /api/notes/{id}/pin.
func (h *NoteHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	n, err := h.svc.TogglePin(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toNoteResponse(n))
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Message(w, http.StatusOK, "Note deleted")
}
