// Package client implements the greeting client: an HTTP client for the
// greeting service and the submission flow shared by the web frontend and the CLI.
package client

import "context"

// Client requests greetings from the greeting service
type Client interface {
	Hello(ctx context.Context, name string) (string, error)
}
