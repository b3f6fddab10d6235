// Package respond writes the JSON response envelope shared by handlers and
// middleware: {"success":true,"data":…,"count":…} on success and
// {"success":false,"error":{"code":…,"message":…}} on failure.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

// Error codes.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternal        = "INTERNAL_ERROR"
	CodeBadGateway      = "BAD_GATEWAY"
	CodeBadRequest      = "BAD_REQUEST"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Count   *int       `json:"count,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code       string              `json:"code"`
	Message    string              `json:"message"`
	Details    []domain.FieldError `json:"details,omitempty"`
	RetryAfter string              `json:"retryAfter,omitempty"`
	RequestID  string              `json:"request_id,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Data writes a success envelope around data.
func Data(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Envelope{Success: true, Data: data})
}

// List writes a success envelope with the total number of matching rows.
func List(w http.ResponseWriter, data any, count int) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

// Message writes a success envelope carrying only a message.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Success: true, Message: msg})
}

// Fail writes an error envelope.
func Fail(w http.ResponseWriter, status int, body ErrorBody) {
	JSON(w, status, Envelope{Success: false, Error: &body})
}

// Error writes an error envelope with code and message.
func Error(w http.ResponseWriter, status int, code, message string) {
	Fail(w, status, ErrorBody{Code: code, Message: message})
}

// Errors maps service errors to HTTP responses.
type Errors struct {
	log        *slog.Logger
	production bool
}

// NewErrors creates an error mapper. In production 500 responses carry a
// generic message only.
func NewErrors(logger *slog.Logger, production bool) *Errors {
	return &Errors{log: logger, production: production}
}

// Write maps err onto the envelope. Unknown errors are logged and answered
// with 500.
func (e *Errors) Write(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		msg := "invalid input"
		if len(ve.Errors) > 0 {
			msg = ve.Errors[0].Field + ": " + ve.Errors[0].Message
		}
		Fail(w, http.StatusBadRequest, ErrorBody{Code: CodeValidation, Message: msg, Details: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		Error(w, http.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		Error(w, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		Error(w, http.StatusForbidden, CodeForbidden, "insufficient permissions")
	case errors.Is(err, domain.ErrNotFound):
		Error(w, http.StatusNotFound, CodeNotFound, "resource not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		Error(w, http.StatusConflict, CodeConflict, "resource already exists")
	case errors.Is(err, domain.ErrRateLimited):
		Error(w, http.StatusTooManyRequests, CodeTooManyRequests, "too many requests")
	case errors.Is(err, domain.ErrUpstream):
		e.log.WarnContext(r.Context(), "upstream failure",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		Error(w, http.StatusBadGateway, CodeBadGateway, "upstream provider unavailable")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful can be written.
		w.WriteHeader(499)
	default:
		e.log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))

		body := ErrorBody{Code: CodeInternal, Message: "internal server error"}
		if !e.production {
			body.Message = err.Error()
		}
		body.RequestID = ctxutil.RequestIDFromCtx(r.Context())
		Fail(w, http.StatusInternalServerError, body)
	}
}
