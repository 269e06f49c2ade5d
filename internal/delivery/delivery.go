// Package delivery holds the transports that expose the service.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
