// Package middleware holds the HTTP middleware stack: request ids, client
// IP resolution, logging, panic recovery, CORS, identity resolution, rate
// limiting and metrics.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
