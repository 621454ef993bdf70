package simplehash

// MurmurHash3, x86 variants: 32-bit and 128-bit. Input is consumed in
// fixed-size little-endian blocks with a separate tail path, then a
// length-dependent finalization avalanche. The streaming hashers buffer
// partial blocks between Write calls, so a value split across writes at
// any offset hashes identically to a single write of the concatenation.

const (
	murmurC1 uint32 = 0xcc9e2d51
	murmurC2 uint32 = 0x1b873593
)

// Lane constants for the 128-bit variant; each lane multiplies by a
// different successive pair.
const (
	murmur128C1 uint32 = 0x239b961b
	murmur128C2 uint32 = 0xab0e9789
	murmur128C3 uint32 = 0x38b34ae5
	murmur128C4 uint32 = 0xa1e38b93
)

// murmur32Scramble is the per-block k1 transform shared by the block and
// tail paths.
func murmur32Scramble(k uint32) uint32 {
	k *= murmurC1
	k = rotl32(k, 15)
	k *= murmurC2
	return k
}

// murmur32Block folds one scrambled 4-byte block into the state. Tail
// bytes skip this step: they only get the scramble and a direct XOR.
func murmur32Block(h1, k uint32) uint32 {
	h1 ^= murmur32Scramble(k)
	h1 = rotl32(h1, 13)
	return h1*5 + 0xe6546b64
}

// Murmur3Sum32 computes the 32-bit MurmurHash3 of data with the given seed.
func Murmur3Sum32(data []byte, seed uint32) uint32 {
	h1 := seed
	p := data
	for len(p) >= 4 {
		h1 = murmur32Block(h1, fetch32(p, 0))
		p = p[4:]
	}

	var k1 uint32
	switch len(p) {
	case 3:
		k1 ^= uint32(p[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(p[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(p[0])
		h1 ^= murmur32Scramble(k1)
	}

	h1 ^= uint32(len(data))
	return fmix32(h1)
}

// Murmur32 is a streaming 32-bit MurmurHash3 hasher.
type Murmur32 struct {
	h1     uint32
	seed   uint32
	length int
	buf    [4]byte
	n      int
}

// NewMurmur32 returns a streaming 32-bit MurmurHash3 hasher seeded with seed.
func NewMurmur32(seed uint32) *Murmur32 {
	return &Murmur32{h1: seed, seed: seed}
}

func (m *Murmur32) Write(p []byte) (int, error) {
	written := len(p)
	m.length += written

	// Bridge a partial block left over from the previous write.
	if m.n > 0 {
		c := copy(m.buf[m.n:], p)
		m.n += c
		p = p[c:]
		if m.n < len(m.buf) {
			return written, nil
		}
		m.h1 = murmur32Block(m.h1, fetch32(m.buf[:], 0))
		m.n = 0
	}

	for len(p) >= 4 {
		m.h1 = murmur32Block(m.h1, fetch32(p, 0))
		p = p[4:]
	}
	m.n = copy(m.buf[:], p)
	return written, nil
}

// Sum32 returns the hash of all bytes written so far. It does not modify
// the accumulator; writing more bytes afterwards is allowed.
func (m *Murmur32) Sum32() uint32 {
	h1 := m.h1
	var k1 uint32
	switch m.n {
	case 3:
		k1 ^= uint32(m.buf[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(m.buf[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(m.buf[0])
		h1 ^= murmur32Scramble(k1)
	}
	h1 ^= uint32(m.length)
	return fmix32(h1)
}

// Reset restores the hasher to its freshly seeded state.
func (m *Murmur32) Reset() {
	m.h1 = m.seed
	m.length = 0
	m.n = 0
}

// murmur128State holds the four 32-bit lanes of the 128-bit variant.
type murmur128State struct {
	h1, h2, h3, h4 uint32
}

// mixBlock folds one 16-byte block (four little-endian words) into the
// lanes. Each lane's update pulls in the next lane's previous value
// (h1←h2←h3←h4←h1); this circular fold is where the mixing strength comes
// from and its order must not change.
func (s *murmur128State) mixBlock(b []byte) {
	k1 := fetch32(b, 0)
	k2 := fetch32(b, 4)
	k3 := fetch32(b, 8)
	k4 := fetch32(b, 12)

	h1, h2, h3, h4 := s.h1, s.h2, s.h3, s.h4

	k1 *= murmur128C1
	k1 = rotl32(k1, 15)
	k1 *= murmur128C2
	h1 ^= k1
	h1 = rotl32(h1, 19)
	h1 += h2
	h1 = h1*5 + 0x561ccd1b

	k2 *= murmur128C2
	k2 = rotl32(k2, 16)
	k2 *= murmur128C3
	h2 ^= k2
	h2 = rotl32(h2, 17)
	h2 += h3
	h2 = h2*5 + 0x0bcaa747

	k3 *= murmur128C3
	k3 = rotl32(k3, 17)
	k3 *= murmur128C4
	h3 ^= k3
	h3 = rotl32(h3, 15)
	h3 += h4
	h3 = h3*5 + 0x96cd1c35

	k4 *= murmur128C4
	k4 = rotl32(k4, 18)
	k4 *= murmur128C1
	h4 ^= k4
	h4 = rotl32(h4, 13)
	h4 += h1
	h4 = h4*5 + 0x32ac3b17

	s.h1, s.h2, s.h3, s.h4 = h1, h2, h3, h4
}

// mixTail folds 1-15 leftover bytes. Only the lanes the tail reaches are
// touched; a 5-byte tail fully folds k1 and partially folds k2, and the
// higher lanes stay untouched until finalization.
func (s *murmur128State) mixTail(tail []byte) {
	var k1, k2, k3, k4 uint32
	switch len(tail) {
	case 15:
		k4 ^= uint32(tail[14]) << 16
		fallthrough
	case 14:
		k4 ^= uint32(tail[13]) << 8
		fallthrough
	case 13:
		k4 ^= uint32(tail[12])
		k4 *= murmur128C4
		k4 = rotl32(k4, 18)
		k4 *= murmur128C1
		s.h4 ^= k4
		fallthrough
	case 12:
		k3 ^= uint32(tail[11]) << 24
		fallthrough
	case 11:
		k3 ^= uint32(tail[10]) << 16
		fallthrough
	case 10:
		k3 ^= uint32(tail[9]) << 8
		fallthrough
	case 9:
		k3 ^= uint32(tail[8])
		k3 *= murmur128C3
		k3 = rotl32(k3, 17)
		k3 *= murmur128C4
		s.h3 ^= k3
		fallthrough
	case 8:
		k2 ^= uint32(tail[7]) << 24
		fallthrough
	case 7:
		k2 ^= uint32(tail[6]) << 16
		fallthrough
	case 6:
		k2 ^= uint32(tail[5]) << 8
		fallthrough
	case 5:
		k2 ^= uint32(tail[4])
		k2 *= murmur128C2
		k2 = rotl32(k2, 16)
		k2 *= murmur128C3
		s.h2 ^= k2
		fallthrough
	case 4:
		k1 ^= uint32(tail[3]) << 24
		fallthrough
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= murmur128C1
		k1 = rotl32(k1, 15)
		k1 *= murmur128C2
		s.h1 ^= k1
	}
}

// finalize XORs the total length into all lanes, propagates h1 through the
// others, avalanches each lane and packs (h4<<96)|(h3<<64)|(h2<<32)|h1.
func (s murmur128State) finalize(length int) Uint128 {
	h1, h2, h3, h4 := s.h1, s.h2, s.h3, s.h4

	h1 ^= uint32(length)
	h2 ^= uint32(length)
	h3 ^= uint32(length)
	h4 ^= uint32(length)

	h1 += h2 + h3 + h4
	h2 += h1
	h3 += h1
	h4 += h1

	h1 = fmix32(h1)
	h2 = fmix32(h2)
	h3 = fmix32(h3)
	h4 = fmix32(h4)

	return Uint128{
		Hi: uint64(h4)<<32 | uint64(h3),
		Lo: uint64(h2)<<32 | uint64(h1),
	}
}

// Murmur3Sum128 computes the 128-bit MurmurHash3 of data with the given
// seed. The low 64 bits are independently usable as a 64-bit hash.
func Murmur3Sum128(data []byte, seed uint32) Uint128 {
	s := murmur128State{h1: seed, h2: seed, h3: seed, h4: seed}
	p := data
	for len(p) >= 16 {
		s.mixBlock(p)
		p = p[16:]
	}
	s.mixTail(p)
	return s.finalize(len(data))
}

// Murmur128 is a streaming 128-bit MurmurHash3 hasher.
type Murmur128 struct {
	state  murmur128State
	seed   uint32
	length int
	buf    [16]byte
	n      int
}

// NewMurmur128 returns a streaming 128-bit MurmurHash3 hasher seeded with seed.
func NewMurmur128(seed uint32) *Murmur128 {
	return &Murmur128{
		state: murmur128State{h1: seed, h2: seed, h3: seed, h4: seed},
		seed:  seed,
	}
}

func (m *Murmur128) Write(p []byte) (int, error) {
	written := len(p)
	m.length += written

	if m.n > 0 {
		c := copy(m.buf[m.n:], p)
		m.n += c
		p = p[c:]
		if m.n < len(m.buf) {
			return written, nil
		}
		m.state.mixBlock(m.buf[:])
		m.n = 0
	}

	for len(p) >= 16 {
		m.state.mixBlock(p)
		p = p[16:]
	}
	m.n = copy(m.buf[:], p)
	return written, nil
}

// Sum128 returns the hash of all bytes written so far without modifying
// the accumulator.
func (m *Murmur128) Sum128() Uint128 {
	s := m.state
	s.mixTail(m.buf[:m.n])
	return s.finalize(m.length)
}

// Sum64 returns the low 64 bits of Sum128, which lets Murmur128 stand in
// wherever a Hasher64 is expected.
func (m *Murmur128) Sum64() uint64 { return m.Sum128().Lo }

// Reset restores the hasher to its freshly seeded state.
func (m *Murmur128) Reset() {
	m.state = murmur128State{h1: m.seed, h2: m.seed, h3: m.seed, h4: m.seed}
	m.length = 0
	m.n = 0
}
