package simplehash

import (
	xxhash "github.com/cespare/xxhash/v2"
)

// xxHash64 rides in as an external provider of the same streaming
// contract the native ports implement. Any implementation satisfying
// Hasher64 is interchangeable here; the test suite runs the shared
// streaming properties against this one alongside the native ports.

// NewXXHash64 returns a streaming xxHash64 hasher backed by
// github.com/cespare/xxhash. Its Digest already matches the Hasher64
// method set, so no wrapping is needed.
func NewXXHash64() Hasher64 {
	return xxhash.New()
}

// XXHashSum64 computes the one-shot xxHash64 of data.
func XXHashSum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
