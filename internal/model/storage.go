package model

import (
	"context"
	"io"
	"time"
)

// Storage abstracts the object storage backend. SignedURL issues a
// time-limited URL granting read access to one private object.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
