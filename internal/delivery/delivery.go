// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a running transport (HTTP today) that serves until its
// context is canceled or the listener fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
