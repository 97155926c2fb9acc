// Package delivery defines the contract every transport implementation
// (HTTP today, possibly others later) must satisfy.
package delivery

import "context"

// Delivery is a long-running transport serving the application.
type Delivery interface {
	// Serve blocks while the transport accepts requests.
	Serve(ctx context.Context) error
}
