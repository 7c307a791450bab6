// Package delivery defines the contract every transport entrypoint
// (HTTP server, background worker) fulfils so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running entrypoint started by main and stopped through
// its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
