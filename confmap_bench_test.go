package confmap_test

import (
	"fmt"
	"testing"

	"github.com/theflywheel/confmap"
)

// Benchmarks use a working set in the tens of entries, matching the
// low load factor the table is designed around.
const benchKeys = 64

func benchKeySet() []string {
	keys := make([]string, benchKeys)
	for i := range keys {
		keys[i] = fmt.Sprintf("setting-%d", i)
	}
	return keys
}

func BenchmarkSet(b *testing.B) {
	keys := benchKeySet()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		table := confmap.New()
		for _, key := range keys {
			if err := table.Set(key, "value"); err != nil {
				b.Fatalf("Failed to set %q: %v", key, err)
			}
		}
		table.Close()
	}
}

func BenchmarkGetHit(b *testing.B) {
	keys := benchKeySet()
	table := confmap.New()
	defer table.Close()
	for _, key := range keys {
		if err := table.Set(key, "value"); err != nil {
			b.Fatalf("Failed to set %q: %v", key, err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := table.Get(keys[i%benchKeys]); !found {
			b.Fatal("Expected key to be present")
		}
	}
}

func BenchmarkGetMiss(b *testing.B) {
	keys := benchKeySet()
	table := confmap.New()
	defer table.Close()
	for _, key := range keys {
		if err := table.Set(key, "value"); err != nil {
			b.Fatalf("Failed to set %q: %v", key, err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := table.Get("missing-key"); found {
			b.Fatal("Expected key to be absent")
		}
	}
}

// BenchmarkChainScan measures the worst case: every key funneled into a
// single bucket so lookups must walk the full collision chain.
func BenchmarkChainScan(b *testing.B) {
	keys := benchKeySet()
	table := confmap.New(confmap.WithBucketCount(1))
	defer table.Close()
	for _, key := range keys {
		if err := table.Set(key, "value"); err != nil {
			b.Fatalf("Failed to set %q: %v", key, err)
		}
	}
	last := keys[benchKeys-1]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := table.Get(last); !found {
			b.Fatal("Expected chained key to be present")
		}
	}
}

func BenchmarkKeys(b *testing.B) {
	keys := benchKeySet()
	table := confmap.New()
	defer table.Close()
	for _, key := range keys {
		if err := table.Set(key, "value"); err != nil {
			b.Fatalf("Failed to set %q: %v", key, err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := table.Keys(); len(got) != benchKeys {
			b.Fatalf("Expected %d keys, got %d", benchKeys, len(got))
		}
	}
}
