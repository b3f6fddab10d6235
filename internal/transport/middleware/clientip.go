package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

// ClientIP stores the caller's IP in the request context. With trustProxy
// the first X-Forwarded-For hop wins over RemoteAddr.
func ClientIP(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := remoteHost(r)
			if trustProxy {
				if hop := firstForwardedHop(r.Header.Get("X-Forwarded-For")); hop != "" {
					ip = hop
				}
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientIP(r.Context(), ip)))
		})
	}
}

func firstForwardedHop(xff string) string {
	first, _, _ := strings.Cut(xff, ",")
	return strings.TrimSpace(first)
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
