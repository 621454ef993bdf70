package simplehash

import (
	"encoding/binary"
	"errors"
	"fmt"

	cbor "github.com/fxamacker/cbor/v2"
)

// KeyCodec maps K <-> []byte for hashing. Encodings must be stable: equal
// keys must always produce identical bytes, since every hash and selection
// result flows from those bytes.
type KeyCodec[K any] interface {
	EncodeKey(K) []byte
	DecodeKey([]byte) (K, error)
}

var ErrInvalidKeyLength = errors.New("invalid key length")

// String keys: encode to raw bytes.
type StringKeyCodec[K ~string] struct{}

func (StringKeyCodec[K]) EncodeKey(k K) []byte          { return []byte(string(k)) }
func (StringKeyCodec[K]) DecodeKey(b []byte) (K, error) { return K(string(b)), nil }

// Bytes keys: returns the underlying slice. Decode copies to detach from
// the caller.
type BytesKeyCodec[K ~[]byte] struct{}

func (BytesKeyCodec[K]) EncodeKey(k K) []byte          { return []byte(k) }
func (BytesKeyCodec[K]) DecodeKey(b []byte) (K, error) { return K(append([]byte(nil), b...)), nil }

type Int64KeyCodec[K ~int64] struct{}

func (Int64KeyCodec[K]) EncodeKey(k K) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(k))
	return buf[:]
}

func (Int64KeyCodec[K]) DecodeKey(b []byte) (K, error) {
	if len(b) != 8 {
		return *new(K), ErrInvalidKeyLength
	}
	return K(int64(binary.BigEndian.Uint64(b))), nil
}

type Uint64KeyCodec[K ~uint64] struct{}

func (Uint64KeyCodec[K]) EncodeKey(k K) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(k))
	return buf[:]
}

func (Uint64KeyCodec[K]) DecodeKey(b []byte) (K, error) {
	if len(b) != 8 {
		return *new(K), ErrInvalidKeyLength
	}
	return K(binary.BigEndian.Uint64(b)), nil
}

// keyEncMode encodes with CBOR canonical options so that equal values
// always serialize to identical bytes regardless of map iteration order.
var keyEncMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("simplehash: cbor enc mode: %v", err))
	}
	return em
}()

// MarshalKey encodes an arbitrary value to canonical CBOR bytes suitable
// for hashing.
func MarshalKey(v any) ([]byte, error) {
	b, err := keyEncMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode key: %w", err)
	}
	return b, nil
}

// CBORKeyCodec encodes any CBOR-serializable key type to canonical bytes,
// which lets struct-valued nodes participate in hashing and selection.
// EncodeKey panics if K cannot be serialized (e.g. contains channels or
// functions); that is a programming error, not an input condition.
type CBORKeyCodec[K any] struct{}

func (CBORKeyCodec[K]) EncodeKey(k K) []byte {
	b, err := MarshalKey(k)
	if err != nil {
		panic(fmt.Sprintf("simplehash: %v", err))
	}
	return b
}

func (CBORKeyCodec[K]) DecodeKey(b []byte) (K, error) {
	var k K
	if err := cbor.Unmarshal(b, &k); err != nil {
		return k, fmt.Errorf("decode key: %w", err)
	}
	return k, nil
}
