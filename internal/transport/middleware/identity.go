package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/auth"
	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/transport/respond"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// IdentityConfig controls the anonymous fallback.
type IdentityConfig struct {
	// DevFallback resolves anonymous requests to the user_id query
	// parameter, then to DevUserID. Never enabled in production.
	DevFallback bool
	DevUserID   uuid.UUID
}

// Identity resolves the caller. A bearer token must be valid (401
// otherwise). Without a token the request stays anonymous unless the dev
// fallback is on.
func Identity(validator tokenValidator, cfg IdentityConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if token := extractBearerToken(r); token != "" {
				id, err := validator.ValidateToken(ctx, token)
				if err != nil {
					respond.Error(w, http.StatusUnauthorized, respond.CodeUnauthorized, "invalid or expired token")
					return
				}
				ctx = withIdentity(ctx, id.UserID, id.Role, ctxutil.SourceToken)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if cfg.DevFallback {
				if id, err := uuid.Parse(r.URL.Query().Get("user_id")); err == nil && id != uuid.Nil {
					ctx = withIdentity(ctx, id, domain.UserRoleUser, ctxutil.SourceQuery)
				} else if cfg.DevUserID != uuid.Nil {
					ctx = withIdentity(ctx, cfg.DevUserID, domain.UserRoleUser, ctxutil.SourceDefault)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			respond.Error(w, http.StatusUnauthorized, respond.CodeUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects callers whose role is not listed: 401 when anonymous,
// 403 otherwise.
func RequireRole(roles ...domain.UserRole) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				respond.Error(w, http.StatusUnauthorized, respond.CodeUnauthorized, "authentication required")
				return
			}
			role := domain.UserRole(ctxutil.UserRoleFromCtx(r.Context()))
			if !slices.Contains(roles, role) {
				respond.Error(w, http.StatusForbidden, respond.CodeForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func withIdentity(ctx context.Context, id uuid.UUID, role domain.UserRole, src ctxutil.IdentitySource) context.Context {
	ctx = ctxutil.WithUserID(ctx, id)
	ctx = ctxutil.WithUserRole(ctx, string(role))
	recordIdentity(ctx, id.String(), src)
	return ctxutil.WithIdentitySource(ctx, src)
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
