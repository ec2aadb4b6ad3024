// Package delivery defines the inbound transport surface of the service.
package delivery

import "context"

// Delivery is a long-running inbound server started by the process host.
type Delivery interface {
	Serve(ctx context.Context) error
}
