// Package simplehash implements fast non-cryptographic hash functions
// (FNV-1/FNV-1a, MurmurHash3, CityHash64, xxHash64) and a rendezvous
// (highest random weight) selector built on top of them.
//
// All hash functions accept arbitrary byte slices, are deterministic and
// endian-agnostic (multi-byte words are assembled explicitly little-endian),
// and use wrapping arithmetic throughout. Each algorithm is exposed both as
// a one-shot function and as a streaming hasher; a streaming hasher's result
// depends only on the concatenation of all bytes written, never on how the
// writes were chunked.
//
// None of these functions resist deliberate collision or preimage attacks.
// Do not use this package where an adversary controls the input and the
// hash value guards anything of value.
package simplehash
