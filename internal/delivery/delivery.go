// Package delivery defines the contract every long-running surface of the
// application fulfills: the local status server and the change poller.
package delivery

import "context"

// Delivery is a component started by main and stopped through its lifecycle
// hook. Serve blocks until the component shuts down or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
