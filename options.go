package confmap

import "github.com/sirupsen/logrus"

// Config defines configurable options for Table construction.
type Config struct {
	// bucketCount fixes the number of buckets for the table's lifetime.
	// If zero or negative, the default of 256 is used.
	bucketCount int

	// hash overrides the bucket-selection checksum. If nil, the built-in
	// xxhash-based checksum is used.
	hash HashFunc

	// logger receives debug-level insert/overwrite events. If nil, the
	// table emits nothing.
	logger logrus.FieldLogger
}

// WithBucketCount configures a new Table with n buckets. Values of zero
// or less are ignored. The count cannot be changed after construction.
func WithBucketCount(n int) func(*Config) {
	return func(c *Config) {
		c.bucketCount = n
	}
}

// WithHasher sets a custom checksum function for bucket selection.
// Pass nil to keep the default. The function must be deterministic:
// a key must map to the same bucket for the life of the table.
func WithHasher(h HashFunc) func(*Config) {
	return func(c *Config) {
		c.hash = h
	}
}

// WithLogger attaches a logger for debug tracing of mutations. The
// table stays silent without one; nothing is ever logged on the lookup
// or error paths.
func WithLogger(l logrus.FieldLogger) func(*Config) {
	return func(c *Config) {
		c.logger = l
	}
}
