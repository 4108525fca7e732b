// Package blob contains an object storage interface.
package blob

import (
	"context"
	"io"
)

//go:generate mockgen -destination=./mock/blob.go -package=mock -source=blob.go

// Storage stores binary objects and serves them by public url.
type Storage interface {
	// Put writes the object overwriting an existing one with the same key and returns its public url.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Ping(ctx context.Context) error
}
