/*
Package confmap provides a fixed-size, string-keyed hash table for
configuration key/value pairs that are loaded once at startup and
queried repeatedly afterwards.

The table uses a fixed array of buckets (256 by default), selects a
bucket by reducing an xxhash checksum of the key modulo the bucket
count, and resolves collisions by chaining entries within a bucket.
Inserting an existing key overwrites its value in place; there is no
per-entry delete and no resizing.

Basic usage:

	import "github.com/theflywheel/confmap"

	t := confmap.New()
	defer t.Close()

	// Insert settings
	if err := t.Set("Host", "example.com"); err != nil {
		log.Fatal(err)
	}
	t.Set("Port", "22")

	// Look up a setting; missing keys are a normal outcome
	host, ok := t.Get("Host")
	if ok {
		fmt.Println("Host:", host)
	}

	// Enumerate everything that was stored
	for _, key := range t.Keys() {
		fmt.Println(key)
	}

Settings can also be loaded from a key=value file:

	t := confmap.New()
	if err := confmap.LoadFile(t, "settings.conf"); err != nil {
		log.Fatal(err)
	}

Features:

  - Immutable bucket count fixed at construction
  - Separate chaining for collision resolution
  - Overwrite-in-place semantics for repeated keys
  - Key enumeration in bucket-then-chain order
  - Optional debug tracing through a logrus hook

Implementation Details:

The design assumes a low load factor: entry counts in the tens, not
thousands. There is deliberately no rehashing; if an embedding system
outgrows that assumption, resizing is the extension point to add. The
table performs no internal locking. The intended usage is to populate
it fully during a load phase and treat it as read-only afterwards; any
concurrent mutation must be serialized by the caller.
*/
package confmap
