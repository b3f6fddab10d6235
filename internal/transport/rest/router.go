package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kadong/kadong-backend/internal/config"
	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/transport/middleware"
	"github.com/kadong/kadong-backend/internal/transport/respond"
)

// RouterConfig carries the cross-cutting pieces the router wires in.
type RouterConfig struct {
	Logger       *slog.Logger
	CORS         config.CORSConfig
	TrustProxy   bool
	MaxBodyBytes int64
	Identity     middleware.Middleware
	Limiter      *middleware.RateLimiter
	Metrics      *middleware.Metrics
	Gatherer     prometheus.Gatherer
}

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Notes    *NoteHandler
	Events   *EventHandler
	Wishlist *WishlistHandler
	Wedding  *WeddingHandler
	Feedback *FeedbackHandler
	Weather  *WeatherHandler
	Market   *MarketHandler
	Admin    *AdminHandler
}

// NewRouter builds the HTTP handler tree.
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.ClientIP(cfg.TrustProxy))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Instrument)
	}
	r.Use(middleware.CORS(cfg.CORS))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusNotFound, respond.CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, respond.CodeBadRequest, "method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	limit := cfg.Limiter.Limit
	admin := middleware.RequireRole(domain.UserRoleAdmin)

	r.Route("/api", func(r chi.Router) {
		r.Use(maxBody(cfg.MaxBodyBytes))
		r.Use(limit(config.LimitAPI))
		r.Use(cfg.Identity)

		r.Route("/auth", func(r chi.Router) {
			r.With(limit(config.LimitRegister)).Post("/register", h.Auth.Register)
			r.With(limit(config.LimitLogin)).Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.With(limit(config.LimitForgotPassword)).Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
				r.Put("/me", h.Auth.UpdateMe)
			})
		})

		r.Route("/notes", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", h.Notes.List)
			r.Post("/", h.Notes.Create)
			r.Get("/{id}", h.Notes.Get)
			r.Put("/{id}", h.Notes.Update)
			r.Patch("/{id}/pin", h.Notes.TogglePin)
			r.Delete("/{id}", h.Notes.Delete)
		})

		r.Route("/events", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", h.Events.List)
			r.Post("/", h.Events.Create)
			r.Get("/{id}", h.Events.Get)
			r.Put("/{id}", h.Events.Update)
			r.Delete("/{id}", h.Events.Delete)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", h.Wishlist.List)
			r.Post("/", h.Wishlist.Create)
			r.Get("/stats", h.Wishlist.Stats)
			r.Post("/extract-metadata", h.Wishlist.ExtractMetadata)
			r.Get("/{id}", h.Wishlist.Get)
			r.Put("/{id}", h.Wishlist.Update)
			r.Patch("/{id}/purchased", h.Wishlist.SetPurchased)
			r.Delete("/{id}", h.Wishlist.Delete)

			r.With(limit(config.LimitHearts)).Post("/{id}/hearts", h.Wishlist.AddHeart)
			r.With(limit(config.LimitHearts)).Delete("/{id}/hearts", h.Wishlist.RemoveHeart)

			r.Get("/{id}/comments", h.Wishlist.ListComments)
			r.With(limit(config.LimitComments)).Post("/{id}/comments", h.Wishlist.AddComment)
			r.Delete("/{id}/comments/{commentId}", h.Wishlist.DeleteComment)
		})

		r.Route("/wedding-urls", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", h.Wedding.History)
			r.With(limit(config.LimitWeddingSave)).Post("/", h.Wedding.Save)
			r.Get("/active", h.Wedding.Active)
			r.Get("/invitation", h.Wedding.Invitation)
			r.Delete("/{id}", h.Wedding.Delete)
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Post("/", h.Feedback.Create)
			r.With(admin).Get("/", h.Feedback.List)
		})

		r.Route("/weather", func(r chi.Router) {
			r.Get("/current", h.Weather.Current)
			r.Get("/forecast", h.Weather.Forecast)
			r.Get("/hourly", h.Weather.Hourly)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/favorites", h.Weather.ListFavorites)
				r.Post("/favorites", h.Weather.AddFavorite)
				r.Delete("/favorites/{id}", h.Weather.DeleteFavorite)
			})
		})

		r.Route("/gold", func(r chi.Router) {
			r.Get("/latest", h.Market.GoldLatest)
			r.Get("/history", h.Market.GoldHistory)
			r.Get("/sources", h.Market.GoldSources)
		})

		r.Route("/currency", func(r chi.Router) {
			r.Get("/rates", h.Market.Rates)
			r.Post("/convert", h.Market.Convert)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(admin)
			r.Post("/gold/refresh", h.Admin.RefreshGold)
			r.Post("/currency/refresh", h.Admin.RefreshCurrency)
			r.Post("/sessions/cleanup", h.Admin.CleanupSessions)
		})
	})

	return r
}

// maxBody caps request bodies; decodeJSON reports the overflow as 413.
func maxBody(n int64) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		if n <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
