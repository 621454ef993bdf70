package simplehash

import (
	"math/bits"
	"sort"
)

// Rendezvous (highest random weight) selection. Every (key, node) pair is
// scored by hashing the key followed by the node's encoded bytes through a
// fresh accumulator; the node with the highest score wins. Because a
// node's score depends only on the key and that node, adding or removing
// a node reassigns only the keys that preferred it — about 1/N of them
// for an N-node set — instead of reshuffling everything the way
// hash(key) % N does.
//
// A Selector holds no membership state; callers pass the candidate set on
// every call and all consistency comes from the hash being deterministic.
// Selectors are safe for concurrent use: each call builds its own
// accumulator.

// Selector assigns keys to nodes of type N using rendezvous hashing. The
// hasher factory decides the score function; the codec decides how nodes
// become bytes.
type Selector[N any] struct {
	newHasher func() Hasher64
	codec     KeyCodec[N]
}

// NewSelector returns a Selector scoring with hashers from newHasher and
// encoding nodes with codec.
func NewSelector[N any](newHasher func() Hasher64, codec KeyCodec[N]) *Selector[N] {
	return &Selector[N]{newHasher: newHasher, codec: codec}
}

// NewStringSelector returns a Selector for string-like nodes scored with
// xxHash64.
func NewStringSelector[N ~string]() *Selector[N] {
	return NewSelector[N](NewXXHash64, StringKeyCodec[N]{})
}

func (s *Selector[N]) score(h Hasher64, key []byte, node N) uint64 {
	h.Reset()
	h.Write(key)
	h.Write(s.codec.EncodeKey(node))
	return h.Sum64()
}

// Select returns the node with the highest score for key. ok is false iff
// nodes is empty. Ties go to the earliest node in input order, which keeps
// Select consistent with Rank.
func (s *Selector[N]) Select(key []byte, nodes []N) (node N, ok bool) {
	i, ok := s.SelectIndex(key, nodes)
	if !ok {
		var zero N
		return zero, false
	}
	return nodes[i], true
}

// SelectIndex is Select returning the winning position instead of the node.
func (s *Selector[N]) SelectIndex(key []byte, nodes []N) (int, bool) {
	if len(nodes) == 0 {
		return 0, false
	}
	h := s.newHasher()
	best := 0
	bestScore := s.score(h, key, nodes[0])
	for i := 1; i < len(nodes); i++ {
		if sc := s.score(h, key, nodes[i]); sc > bestScore {
			best, bestScore = i, sc
		}
	}
	return best, true
}

// Rank returns all nodes sorted by descending score for key. Equal scores
// keep their input order (stable sort), so Rank(key, nodes)[0] equals
// Select(key, nodes) whenever nodes is non-empty.
func (s *Selector[N]) Rank(key []byte, nodes []N) []N {
	if len(nodes) == 0 {
		return nil
	}
	h := s.newHasher()
	scores := make([]uint64, len(nodes))
	for i, n := range nodes {
		scores[i] = s.score(h, key, n)
	}

	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	out := make([]N, len(nodes))
	for i, idx := range order {
		out[i] = nodes[idx]
	}
	return out
}

// Weighted pairs a node with a capacity weight for weighted selection.
type Weighted[N any] struct {
	Node   N
	Weight uint64
}

// SelectWeighted returns the node maximizing score x weight, compared as a
// full 128-bit product so large weights cannot overflow the ranking. Ties
// go to the earliest node in input order.
func (s *Selector[N]) SelectWeighted(key []byte, nodes []Weighted[N]) (node N, ok bool) {
	if len(nodes) == 0 {
		var zero N
		return zero, false
	}
	h := s.newHasher()
	best := 0
	bestHi, bestLo := bits.Mul64(s.score(h, key, nodes[0].Node), nodes[0].Weight)
	for i := 1; i < len(nodes); i++ {
		hi, lo := bits.Mul64(s.score(h, key, nodes[i].Node), nodes[i].Weight)
		if hi > bestHi || (hi == bestHi && lo > bestLo) {
			best, bestHi, bestLo = i, hi, lo
		}
	}
	return nodes[best].Node, true
}

// RankWeighted returns all nodes sorted by descending score x weight with
// the same 128-bit ranking and tie order as SelectWeighted.
func (s *Selector[N]) RankWeighted(key []byte, nodes []Weighted[N]) []N {
	if len(nodes) == 0 {
		return nil
	}
	h := s.newHasher()
	products := make([]Uint128, len(nodes))
	for i, wn := range nodes {
		hi, lo := bits.Mul64(s.score(h, key, wn.Node), wn.Weight)
		products[i] = Uint128{Hi: hi, Lo: lo}
	}

	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return products[order[a]].Cmp(products[order[b]]) > 0
	})

	out := make([]N, len(nodes))
	for i, idx := range order {
		out[i] = nodes[idx].Node
	}
	return out
}
