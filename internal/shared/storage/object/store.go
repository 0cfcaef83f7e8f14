package object

import (
	"context"
	"io"
	"time"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
type ObjectStore interface {
	// Put writes the reader contents under the given key and returns the byte count.
	Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
	// Open opens a stored object for reading.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// SignedURL returns a time-limited URL granting read access to one object.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
