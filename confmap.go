package confmap

import (
	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
)

const defaultBucketCount = 256

// HashFunc maps a key to a 32-bit checksum used for bucket selection.
// Any stable, well-distributed function works; this is not a security
// boundary and not a wire format.
type HashFunc func(key string) uint32

// entry is one stored key/value pair in a bucket's collision chain.
// Each entry owns the link to the next colliding entry; an empty bucket
// is a nil head, so no occupancy flag is needed.
type entry struct {
	key   string
	value string
	next  *entry
}

// Table is a fixed-size hash table mapping string keys to string values.
// The bucket count is decided at construction time and never changes;
// collisions are resolved by chaining within a bucket. Table is not safe
// for concurrent use. The intended pattern is populate once, then read.
type Table struct {
	buckets     []*entry
	bucketCount uint32
	entryCount  int

	hash   HashFunc
	logger logrus.FieldLogger
	closed bool
}

// New creates an empty Table. By default it uses 256 buckets and an
// xxhash-based checksum; see WithBucketCount, WithHasher and WithLogger.
//
// There is no resizing: the table assumes entry counts in the tens, not
// thousands. Chains simply grow when the load factor exceeds 1.
func New(options ...func(*Config)) *Table {
	var cfg Config
	for _, o := range options {
		o(&cfg)
	}

	n := uint32(defaultBucketCount)
	if cfg.bucketCount > 0 {
		n = uint32(cfg.bucketCount)
	}

	h := cfg.hash
	if h == nil {
		h = checksum
	}

	return &Table{
		buckets:     make([]*entry, n),
		bucketCount: n,
		hash:        h,
		logger:      cfg.logger,
	}
}

// Set stores value under key, overwriting any previous value for the
// same key in place. A new chain entry is created only for keys not
// already present. The empty key is rejected with ErrKeyEmpty.
func (t *Table) Set(key, value string) error {
	if t.closed {
		return ErrClosed
	}
	if key == "" {
		return ErrKeyEmpty
	}

	idx := t.bucketIndex(key)

	head := t.buckets[idx]
	if head == nil {
		t.buckets[idx] = &entry{key: key, value: value}
		t.entryCount++
		t.debugf("set %q bucket=%d chain=0", key, idx)
		return nil
	}

	// Walk the chain: overwrite on an exact key match, otherwise
	// remember the tail so the new entry can be appended there.
	e := head
	pos := 0
	for {
		if e.key == key {
			e.value = value
			t.debugf("overwrite %q bucket=%d chain=%d", key, idx, pos)
			return nil
		}
		if e.next == nil {
			break
		}
		e = e.next
		pos++
	}

	e.next = &entry{key: key, value: value}
	t.entryCount++
	t.debugf("set %q bucket=%d chain=%d", key, idx, pos+1)
	return nil
}

// Get returns the value stored under key. The second result reports
// whether the key was present, so an empty stored value is
// distinguishable from a missing key. Looking up a key that was never
// inserted is a normal, recoverable outcome.
func (t *Table) Get(key string) (string, bool) {
	if t.closed || key == "" {
		return "", false
	}

	for e := t.buckets[t.bucketIndex(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

// Has reports whether key is present in the table.
func (t *Table) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Keys returns every stored key in bucket-then-chain order: bucket 0
// first, and within a bucket the head entry before chained ones. No
// ordering across insertions is guaranteed beyond that positional scan.
// The result is sized by the tracked entry count, so it stays correct
// when chains hold more than one entry.
func (t *Table) Keys() []string {
	if t.closed {
		return nil
	}

	keys := make([]string, 0, t.entryCount)
	for _, e := range t.buckets {
		for ; e != nil; e = e.next {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return t.entryCount
}

// Close tears the table down: every collision chain is unlinked and the
// bucket array released, so entries become collectable even while the
// caller still holds the Table. After Close, Set and Close fail with
// ErrClosed and Get/Keys report nothing found.
func (t *Table) Close() error {
	if t.closed {
		return ErrClosed
	}

	// Unlink chained entries before dropping the bucket array, mirroring
	// the teardown order of the chains' construction.
	for i, e := range t.buckets {
		for e != nil {
			next := e.next
			e.next = nil
			e = next
		}
		t.buckets[i] = nil
	}

	t.buckets = nil
	t.entryCount = 0
	t.closed = true
	return nil
}

// bucketIndex reduces the key's checksum to a bucket offset. It is a
// pure function of the key for the life of the Table, since the bucket
// count is fixed at construction.
func (t *Table) bucketIndex(key string) uint32 {
	return t.hash(key) % t.bucketCount
}

func (t *Table) debugf(format string, args ...interface{}) {
	if t.logger != nil {
		t.logger.Debugf(format, args...)
	}
}

// checksum is the default bucket-selection primitive: the low 32 bits
// of the key's xxhash digest.
func checksum(key string) uint32 {
	return uint32(xxhash.Sum64String(key))
}
