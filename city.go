package simplehash

// CityHash64, after Google's CityHash. Three length-dispatched paths with
// distinct mixing strategies: the short and medium paths match the
// reference algorithm, while the long path is the simplified variant that
// mixes the first 32 and last 32 bytes of the buffer (plus fixed offsets)
// instead of looping over 64-byte chunks. That trade keeps the working set
// fixed regardless of input length and is part of this function's contract;
// the golden vectors below depend on it.

// Primes between 2^63 and 2^64 for various uses.
const (
	cityK0 uint64 = 0xc3a5c85c97cb3127
	cityK1 uint64 = 0xb492b66fbe98f273
	cityK2 uint64 = 0x9ae16a3b2f90404f

	// Multiplier for the seed-combining hashLen16 form.
	cityKMul uint64 = 0x9ddfea08eb382d69
)

// hashLen16Mul mixes two 64-bit words through the shared 16-byte finalizer.
func hashLen16Mul(u, v, mul uint64) uint64 {
	a := (u ^ v) * mul
	a ^= a >> 47
	b := (v ^ a) * mul
	b ^= b >> 47
	b *= mul
	return b
}

func hashLen16(u, v uint64) uint64 {
	return hashLen16Mul(u, v, cityKMul)
}

// cityHashSmall covers inputs of 0-16 bytes.
func cityHashSmall(s []byte) uint64 {
	n := len(s)
	if n >= 8 {
		mul := cityK2 + uint64(n)*2
		a := fetch64(s, 0) + cityK2
		b := fetch64(s, n-8)
		c := rotr64(b, 37)*mul + a
		d := (rotr64(a, 25) + b) * mul
		return hashLen16Mul(c, d, mul)
	}
	if n >= 4 {
		mul := cityK2 + uint64(n)*2
		a := uint64(fetch32(s, 0))
		b := uint64(fetch32(s, n-4))
		return hashLen16Mul(uint64(n)+a<<3, b, mul)
	}
	if n > 0 {
		a := uint64(s[0])
		b := uint64(s[n>>1])
		c := uint64(s[n-1])
		y := a + b<<8
		z := uint64(n) + c<<2
		return shiftMix(y*cityK2^z*cityK0) * cityK2
	}
	return cityK2
}

// cityHashMedium covers inputs of 17-32 bytes: four words from fixed
// offsets combined with rotates and a length-dependent multiplier.
func cityHashMedium(s []byte) uint64 {
	n := len(s)
	mul := cityK2 + uint64(n)*2
	a := fetch64(s, 0) * cityK1
	b := fetch64(s, 8)
	c := fetch64(s, n-8) * mul
	d := fetch64(s, n-16) * cityK2
	return hashLen16Mul(
		rotr64(a+b, 43)+rotr64(c, 30)+d,
		a+rotr64(b+cityK2, 18)+c,
		mul,
	)
}

// cityWeakHash32 produces a pair of 64-bit values from the first 32 bytes
// of s via a four-word rotate/add mix. For total inputs longer than 48
// bytes a second round folds in words at offsets 32 and 40; the pair
// computed over the 32-byte suffix never takes that round.
func cityWeakHash32(s []byte, totalLen int) (uint64, uint64) {
	a := fetch64(s, 0)
	b := fetch64(s, 8)
	c := fetch64(s, 16)
	d := fetch64(s, 24)

	a += fetch64(s, 0)
	b = rotr64(b+a+d, 21)
	c += a
	a += rotr64(a, 44) + b
	vf := a + d
	vs := c + rotr64(b, 10)

	if totalLen > 48 && len(s) >= 40 {
		vf += shiftMix(fetch64(s, 32)*cityK2)*cityK0 + a
		vs += shiftMix(c+fetch64(s, 40)) * cityK2
		vf = shiftMix(vf)
		vs = shiftMix(vs)
	}
	return vf, vs
}

// cityHashLarge covers inputs of more than 32 bytes.
func cityHashLarge(s []byte) uint64 {
	n := len(s)

	x := fetch64(s, 0) * cityK2
	y := fetch64(s, 8)
	z := fetch64(s, n-8) * cityK2

	v1, v2 := cityWeakHash32(s, n)
	w1, w2 := cityWeakHash32(s[n-32:], n)

	x = x*cityK2 + fetch64(s, 16)
	y += rotr64(x, 48)*cityK2 + fetch64(s, 24)
	z = z*cityK2 + fetch64(s, n-16)

	v1 = v1*cityK2 + w2
	v2 = v2*cityK2 + w1

	a := (y+z)*cityK2 + v1 + w1
	b := (v2+w2)*cityK2 + x + y
	return hashLen16Mul(a, b, cityK2)
}

// CityHash64 computes the 64-bit CityHash of data.
func CityHash64(data []byte) uint64 {
	switch n := len(data); {
	case n <= 16:
		return cityHashSmall(data)
	case n <= 32:
		return cityHashMedium(data)
	default:
		return cityHashLarge(data)
	}
}

// CityHash64WithSeed computes the 64-bit CityHash of data folded with seed.
func CityHash64WithSeed(data []byte, seed uint64) uint64 {
	return CityHash64WithSeeds(data, cityK2, seed)
}

// CityHash64WithSeeds computes the 64-bit CityHash of data folded with two
// seed values.
func CityHash64WithSeeds(data []byte, seed0, seed1 uint64) uint64 {
	return hashLen16(CityHash64(data)-seed0, seed1)
}

// City64 is a streaming CityHash64 hasher. CityHash dispatches on total
// input length, so the hasher accumulates written bytes and hashes the
// full buffer at Sum64; auxiliary state is proportional to the input, not
// O(1) like the other streaming hashers here.
type City64 struct {
	buf []byte
}

// NewCity64 returns a streaming CityHash64 hasher.
func NewCity64() *City64 { return &City64{} }

func (c *City64) Write(p []byte) (int, error) {
	c.buf = append(c.buf, p...)
	return len(p), nil
}

// Sum64 returns CityHash64 of everything written so far. With no bytes
// written it equals CityHash64(nil).
func (c *City64) Sum64() uint64 {
	return CityHash64(c.buf)
}

// Reset discards all buffered input.
func (c *City64) Reset() { c.buf = c.buf[:0] }
