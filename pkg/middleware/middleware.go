// Package middleware provides composable HTTP middleware for logging, request IDs, and CORS.
package middleware

import "net/http"

// System collects middleware and applies it around a handler.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type middleware struct {
	stack []func(http.Handler) http.Handler
}

// New creates an empty middleware system.
func New() System {
	return &middleware{
		stack: []func(http.Handler) http.Handler{},
	}
}

// Use appends mw to the stack. The first middleware added is the outermost.
func (m *middleware) Use(mw func(http.Handler) http.Handler) {
	m.stack = append(m.stack, mw)
}

// Apply wraps handler with every registered middleware.
func (m *middleware) Apply(handler http.Handler) http.Handler {
	for i := len(m.stack) - 1; i >= 0; i-- {
		handler = m.stack[i](handler)
	}
	return handler
}
