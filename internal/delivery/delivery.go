// Package delivery holds the process entry points (HTTP API, push worker).
package delivery

import "context"

// Delivery is a long-running server started by the fx graph.
type Delivery interface {
	Serve(ctx context.Context) error
}
