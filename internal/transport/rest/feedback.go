package rest

import (
	"context"
	"net/http"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/service/feedback"
	"github.com/kadong/kadong-backend/internal/transport/respond"
)

type feedbackService interface {
	Create(ctx context.Context, input feedback.CreateInput) (*domain.Feedback, error)
	List(ctx context.Context, page domain.Page) ([]domain.Feedback, int, error)
}

// FeedbackHandler serves /api/feedback.
type FeedbackHandler struct {
	svc  feedbackService
	errs *respond.Errors
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, errs *respond.Errors) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, errs: errs}
}

type createFeedbackRequest struct {
	Message string `json:"message"`
	Rating  *int   `json:"rating"`
}

// Create handles POST /api/feedback.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	f, err := h.svc.Create(r.Context(), feedback.CreateInput{Message: req.Message, Rating: req.Rating})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusCreated, toFeedbackResponse(f))
}

// List handles GET /api/feedback (admin only).
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	items, total, err := h.svc.List(r.Context(), page)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.List(w, mapSlice(items, toFeedbackResponse), total)
}
