package simplehash

import (
	"encoding/binary"
	"math/bits"
)

// Shared low-level mixing primitives. Every algorithm in this package
// assembles multi-byte words explicitly little-endian so results do not
// depend on the host byte order.

// fetch32 returns the little-endian 32-bit word at b[i:i+4].
func fetch32(b []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(b[i:])
}

// fetch64 returns the little-endian 64-bit word at b[i:i+8].
func fetch64(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i:])
}

func rotl32(x uint32, r int) uint32 {
	return bits.RotateLeft32(x, r)
}

// rotr64 rotates right; CityHash specifies its rotations in this direction.
func rotr64(x uint64, r int) uint64 {
	return bits.RotateLeft64(x, -r)
}

// fmix32 is the MurmurHash3 finalization mix: a fixed xorshift/multiply
// sequence that forces every input bit to affect roughly half the output
// bits before the state is returned.
func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// shiftMix folds the high bits of a 64-bit word into the low bits.
func shiftMix(v uint64) uint64 {
	return v ^ (v >> 47)
}

// Mix64 is a fast 64-bit mixer (SplitMix64 finalizer). It is a convenient
// way to hash integer keys directly without going through a byte encoding.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
