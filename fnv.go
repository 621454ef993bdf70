package simplehash

// FNV constants per width. The offset basis seeds the accumulator; the
// prime drives the multiplicative step.
const (
	fnvOffset32 uint32 = 0x811c9dc5
	fnvPrime32  uint32 = 0x01000193
	fnvOffset64 uint64 = 0xcbf29ce484222325
	fnvPrime64  uint64 = 0x00000100000001b3
)

// FnvVariant selects the operand order of the FNV byte step.
//
// FNV-1 multiplies first and XORs second; FNV-1a XORs first and multiplies
// second. The swap costs nothing but measurably improves dispersion, which
// is why FNV-1a is the variant to reach for unless a legacy value must be
// reproduced.
type FnvVariant int

const (
	Fnv1 FnvVariant = iota
	Fnv1a
)

// fnvWord constrains the generic core to the two FNV widths.
type fnvWord interface {
	~uint32 | ~uint64
}

// fnvDigest is the single accumulator behind all four FNV hashers. The
// algorithm family differs only in word width and operand order, so one
// parameterized core replaces four hand-duplicated loops.
type fnvDigest[T fnvWord] struct {
	state   T
	offset  T
	prime   T
	variant FnvVariant
}

func (d *fnvDigest[T]) Write(p []byte) (int, error) {
	s := d.state
	if d.variant == Fnv1a {
		for _, b := range p {
			s = (s ^ T(b)) * d.prime
		}
	} else {
		for _, b := range p {
			s = s*d.prime ^ T(b)
		}
	}
	d.state = s
	return len(p), nil
}

func (d *fnvDigest[T]) Reset() { d.state = d.offset }

// Fnv32 is a streaming 32-bit FNV hasher.
type Fnv32 struct {
	fnvDigest[uint32]
}

// Sum32 returns the current hash. With no bytes written it is the offset basis.
func (f *Fnv32) Sum32() uint32 { return f.state }

// Fnv64 is a streaming 64-bit FNV hasher.
type Fnv64 struct {
	fnvDigest[uint64]
}

// Sum64 returns the current hash. With no bytes written it is the offset basis.
func (f *Fnv64) Sum64() uint64 { return f.state }

// NewFnv32 returns a streaming 32-bit FNV hasher for the given variant.
func NewFnv32(variant FnvVariant) *Fnv32 {
	return &Fnv32{fnvDigest[uint32]{
		state:   fnvOffset32,
		offset:  fnvOffset32,
		prime:   fnvPrime32,
		variant: variant,
	}}
}

// NewFnv64 returns a streaming 64-bit FNV hasher for the given variant.
func NewFnv64(variant FnvVariant) *Fnv64 {
	return &Fnv64{fnvDigest[uint64]{
		state:   fnvOffset64,
		offset:  fnvOffset64,
		prime:   fnvPrime64,
		variant: variant,
	}}
}

// Fnv1Sum32 computes the one-shot FNV-1 32-bit hash of data.
func Fnv1Sum32(data []byte) uint32 {
	h := fnvOffset32
	for _, b := range data {
		h = h*fnvPrime32 ^ uint32(b)
	}
	return h
}

// Fnv1aSum32 computes the one-shot FNV-1a 32-bit hash of data.
func Fnv1aSum32(data []byte) uint32 {
	h := fnvOffset32
	for _, b := range data {
		h = (h ^ uint32(b)) * fnvPrime32
	}
	return h
}

// Fnv1Sum64 computes the one-shot FNV-1 64-bit hash of data.
func Fnv1Sum64(data []byte) uint64 {
	h := fnvOffset64
	for _, b := range data {
		h = h*fnvPrime64 ^ uint64(b)
	}
	return h
}

// Fnv1aSum64 computes the one-shot FNV-1a 64-bit hash of data.
func Fnv1aSum64(data []byte) uint64 {
	h := fnvOffset64
	for _, b := range data {
		h = (h ^ uint64(b)) * fnvPrime64
	}
	return h
}
