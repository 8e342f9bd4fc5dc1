// Package delivery defines the inbound transport boundary of the service.
package delivery

import "context"

// Delivery is one inbound transport (HTTP today). Each implementation blocks
// in Serve until the transport is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
