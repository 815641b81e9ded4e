// Package kit holds the transport-agnostic tool boundary: endpoints,
// middleware and the MCP adapter. Handlers are written once as Endpoints
// and exposed through whatever transport the binary runs.
package kit

import "context"

// Endpoint is a single tool operation behind the transport boundary.
type Endpoint func(ctx context.Context, req any) (any, error)

// Middleware wraps an Endpoint with cross-cutting behavior.
type Middleware func(Endpoint) Endpoint

// Chain composes middlewares so the first one listed is outermost.
func Chain(mws ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
