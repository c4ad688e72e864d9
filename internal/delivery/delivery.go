// Package delivery defines the contract every transport implementation
// (HTTP today, anything else later) satisfies toward the composition root.
package delivery

import "context"

// Delivery is a transport that serves the application until the context is
// canceled or the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
