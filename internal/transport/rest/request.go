// Package rest implements the HTTP handlers of the /api surface and the
// router that mounts them.
package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/transport/respond"
	"github.com/kadong/kadong-backend/internal/validate"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

var errEmptyBody = errors.New("request body is required")

// decodeJSON decodes the request body into dst and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeDecodeError(w, err)
		return false
	}
	return true
}

// decodeOptionalJSON is decodeJSON for endpoints whose body may be empty.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeDecodeError(w, err)
		return false
	}
	return true
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var (
		tooLarge  *http.MaxBytesError
		wrongType *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF):
		respond.Error(w, http.StatusBadRequest, respond.CodeBadRequest, errEmptyBody.Error())
	case errors.As(err, &tooLarge):
		respond.Error(w, http.StatusRequestEntityTooLarge, respond.CodeBadRequest, "request body too large")
	case errors.As(err, &wrongType) && wrongType.Field != "":
		// A well-formed body with a mistyped field is a validation failure
		// on that field.
		respond.Fail(w, http.StatusBadRequest, respond.ErrorBody{
			Code:    respond.CodeValidation,
			Message: wrongType.Field + ": invalid type",
			Details: []domain.FieldError{{Field: wrongType.Field, Message: "must not be a JSON " + wrongType.Value}},
		})
	default:
		respond.Error(w, http.StatusBadRequest, respond.CodeBadRequest, "invalid request body")
	}
}

// pathUUID reads a UUID route parameter, answering 400 when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if !validate.UUID(raw) {
		respond.Fail(w, http.StatusBadRequest, respond.ErrorBody{
			Code:    respond.CodeValidation,
			Message: name + ": invalid UUID",
			Details: []domain.FieldError{{Field: name, Message: "invalid UUID"}},
		})
		return uuid.Nil, false
	}
	return uuid.MustParse(raw), true
}

// pageParams parses limit and offset. Absent values fall through to the
// defaults applied by domain.Page.
func pageParams(r *http.Request) (domain.Page, error) {
	var errs domain.FieldErrors
	q := r.URL.Query()

	limit, ok := optionalInt(q.Get("limit"))
	if !ok || !validate.Limit(limit) {
		errs.Add("limit", "must be between 1 and 100")
	}
	offset, ok := optionalInt(q.Get("offset"))
	if !ok || !validate.Offset(offset) {
		errs.Add("offset", "must be a non-negative integer")
	}
	if err := errs.Err(); err != nil {
		return domain.Page{}, err
	}

	var p domain.Page
	if limit != nil {
		p.Limit = *limit
	}
	if offset != nil {
		p.Offset = *offset
	}
	return p, nil
}

func optionalInt(raw string) (*int, bool) {
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, name string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be true or false")
	}
	return &v, nil
}

// queryInt parses an optional integer query parameter; def is returned when
// the parameter is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

// queryFloat parses an optional float query parameter.
func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a number")
	}
	return &v, nil
}

// withBodyUser lets create handlers act for the user_id given in the body
// while the development fallback resolved the identity. Token-authenticated
// requests are never re-targeted.
func withBodyUser(r *http.Request, userID *string) *http.Request {
	if userID == nil {
		return r
	}
	switch ctxutil.IdentitySourceFromCtx(r.Context()) {
	case ctxutil.SourceQuery, ctxutil.SourceDefault:
	default:
		return r
	}
	id, err := uuid.Parse(strings.TrimSpace(*userID))
	if err != nil {
		return r
	}
	return r.WithContext(ctxutil.WithUserID(r.Context(), id))
}
