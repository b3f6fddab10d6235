package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/transport/respond"
)

const defaultSessionRetention = 30 * 24 * time.Hour

type goldRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

type currencyRefresher interface {
	Refresh(ctx context.Context, base domain.Currency) (int, error)
}

type sessionCleaner interface {
	CleanupSessions(ctx context.Context, retention time.Duration) (int64, error)
}

// AdminHandler serves operator endpoints under /api/admin. The router
// restricts it to the admin role.
type AdminHandler struct {
	gold     goldRefresher
	currency currencyRefresher
	sessions sessionCleaner
	errs     *respond.Errors
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(gold goldRefresher, currency currencyRefresher, sessions sessionCleaner, errs *respond.Errors, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		gold:     gold,
		currency: currency,
		sessions: sessions,
		errs:     errs,
		log:      logger.With("handler", "admin"),
	}
}

type refreshResponse struct {
	Stored int `json:"stored"`
}

type cleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

// RefreshGold forces a fetch from every gold provider.
// POST /api/admin/gold/refresh
func (h *AdminHandler) RefreshGold(w http.ResponseWriter, r *http.Request) {
	n, err := h.gold.Refresh(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "gold refreshed by admin", slog.Int("stored", n))
	respond.Data(w, http.StatusOK, refreshResponse{Stored: n})
}

// RefreshCurrency re-fetches the rates of one base currency.
// POST /api/admin/currency/refresh?base=USD
func (h *AdminHandler) RefreshCurrency(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("base"))
	if raw == "" {
		raw = domain.CurrencyUSD.String()
	}
	base, ok := domain.ParseCurrency(raw)
	if !ok {
		h.errs.Write(w, r, domain.NewValidationError("base", "unsupported currency"))
		return
	}

	n, err := h.currency.Refresh(r.Context(), base)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "currency refreshed by admin",
		slog.String("base", base.String()),
		slog.Int("stored", n))
	respond.Data(w, http.StatusOK, refreshResponse{Stored: n})
}

// CleanupSessions deletes sessions that ended more than retention ago.
// POST /api/admin/sessions/cleanup?retention=720h
func (h *AdminHandler) CleanupSessions(w http.ResponseWriter, r *http.Request) {
	retention := defaultSessionRetention
	if v := r.URL.Query().Get("retention"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			h.errs.Write(w, r, domain.NewValidationError("retention", "must be a non-negative duration"))
			return
		}
		retention = d
	}

	n, err := h.sessions.CleanupSessions(r.Context(), retention)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, cleanupResponse{Deleted: n})
}
