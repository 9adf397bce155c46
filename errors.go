package confmap

import "github.com/pkg/errors"

var (
	// ErrKeyEmpty is returned by Set when given an empty key. Empty keys
	// are rejected outright rather than being given a bucket.
	ErrKeyEmpty = errors.New("confmap: empty key")

	// ErrClosed is returned when mutating a table after Close.
	ErrClosed = errors.New("confmap: table is closed")
)
