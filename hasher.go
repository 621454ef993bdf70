package simplehash

import "io"

// Hasher32 is the streaming interface for 32-bit hash algorithms.
// Write never returns an error; the io.Writer shape is kept so hashers
// compose with io.Copy and friends. Sum32 is idempotent: calling it
// repeatedly without further writes returns the same value.
type Hasher32 interface {
	io.Writer
	Sum32() uint32
	Reset()
}

// Hasher64 is the streaming interface for 64-bit hash algorithms.
// *xxhash.Digest satisfies it directly, as do the hashers in this package.
type Hasher64 interface {
	io.Writer
	Sum64() uint64
	Reset()
}

// Hasher128 is the streaming interface for 128-bit hash algorithms.
type Hasher128 interface {
	io.Writer
	Sum128() Uint128
	Reset()
}

// Uint128 is an unsigned 128-bit hash result. Equality and ordering are
// its only meaningful operations.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Cmp returns -1, 0 or +1 depending on whether u is less than, equal to
// or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// IsZero reports whether u is the zero value.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// hash32to64 widens a Hasher32 to the Hasher64 interface.
type hash32to64 struct {
	Hasher32
}

func (h hash32to64) Sum64() uint64 { return uint64(h.Sum32()) }

// Hash32To64 adapts a 32-bit hasher factory for use where a Hasher64
// factory is required, e.g. to drive a Selector with Murmur3-32.
func Hash32To64(newHasher func() Hasher32) func() Hasher64 {
	return func() Hasher64 { return hash32to64{newHasher()} }
}
