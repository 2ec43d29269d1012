// Package middleware holds the HTTP middleware mounted on the chi router.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler
