package middleware

import (
	"retail-insights/pkg/log"
)

// Middleware bundles the gin middlewares shared by both services.
type Middleware struct {
	l log.Logger
}

// New creates the middleware set.
func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
