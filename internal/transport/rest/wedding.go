package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/transport/respond"
)

type weddingService interface {
	Save(ctx context.Context, baseURL string) (*domain.WeddingURL, error)
	Active(ctx context.Context) (*domain.WeddingURL, error)
	History(ctx context.Context, page domain.Page) ([]domain.WeddingURL, int, error)
	Invitation(ctx context.Context, guest string) (string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WeddingHandler serves /api/wedding-urls.
type WeddingHandler struct {
	svc  weddingService
	errs *respond.Errors
}

// NewWeddingHandler creates a WeddingHandler.
func NewWeddingHandler(svc weddingService, errs *respond.Errors) *WeddingHandler {
	return &WeddingHandler{svc: svc, errs: errs}
}

type saveWeddingURLRequest struct {
	UserID  *string `json:"user_id"`
	BaseURL string  `json:"base_url"`
}

type invitationResponse struct {
	URL string `json:"url"`
}

// Save handles POST /api/wedding-urls. The new URL replaces the active one.
func (h *WeddingHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveWeddingURLRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	r = withBodyUser(r, req.UserID)

	u, err := h.svc.Save(r.Context(), req.BaseURL)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusCreated, toWeddingURLResponse(u))
}

// Active handles GET /api/wedding-urls/active.
func (h *WeddingHandler) Active(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Active(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toWeddingURLResponse(u))
}

// History handles GET /api/wedding-urls.
func (h *WeddingHandler) History(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	urls, total, err := h.svc.History(r.Context(), page)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.List(w, mapSlice(urls, toWeddingURLResponse), total)
}

// Invitation handles GET /api/wedding-urls/invitation?guest=.
func (h *WeddingHandler) Invitation(w http.ResponseWriter, r *http.Request) {
	link, err := h.svc.Invitation(r.Context(), r.URL.Query().Get("guest"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, invitationResponse{URL: link})
}

// Delete handles DELETE /api/wedding-urls/{id}.
func (h *WeddingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Message(w, http.StatusOK, "Wedding URL deleted")
}
