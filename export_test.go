package confmap

// Hooks for the external test package.

var Checksum = checksum

func (t *Table) BucketIndex(key string) uint32 {
	return t.bucketIndex(key)
}

func (t *Table) BucketCount() uint32 {
	return t.bucketCount
}
