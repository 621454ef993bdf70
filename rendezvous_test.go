package simplehash

import (
	"fmt"
	"testing"
)

func TestSelectorDeterministic(t *testing.T) {
	s := NewStringSelector[string]()
	nodes := []string{"node1", "node2", "node3", "node4"}

	first, ok := s.Select([]byte("test_key"), nodes)
	if !ok {
		t.Fatal("Select returned ok=false for non-empty nodes")
	}
	for i := 0; i < 10; i++ {
		got, ok := s.Select([]byte("test_key"), nodes)
		if !ok || got != first {
			t.Fatalf("Select not stable: got %q ok=%v, want %q", got, ok, first)
		}
	}
}

func TestSelectorIndexMatchesSelect(t *testing.T) {
	s := NewStringSelector[string]()
	nodes := []string{"node1", "node2", "node3", "node4", "node5"}

	for i := 0; i < 50; i++ {
		key := []byte(fmt.Sprintf("key_%d", i))
		node, ok1 := s.Select(key, nodes)
		idx, ok2 := s.SelectIndex(key, nodes)
		if !ok1 || !ok2 {
			t.Fatal("unexpected ok=false")
		}
		if nodes[idx] != node {
			t.Errorf("key %q: SelectIndex -> %q, Select -> %q", key, nodes[idx], node)
		}
	}
}

func TestSelectorRankHeadMatchesSelect(t *testing.T) {
	s := NewStringSelector[string]()
	nodes := []string{"node1", "node2", "node3", "node4"}

	for i := 0; i < 50; i++ {
		key := []byte(fmt.Sprintf("ranking_%d", i))
		ranked := s.Rank(key, nodes)
		if len(ranked) != len(nodes) {
			t.Fatalf("Rank returned %d nodes, want %d", len(ranked), len(nodes))
		}

		selected, _ := s.Select(key, nodes)
		if ranked[0] != selected {
			t.Errorf("key %q: Rank[0] = %q, Select = %q", key, ranked[0], selected)
		}

		// Every node appears exactly once.
		seen := make(map[string]bool, len(ranked))
		for _, n := range ranked {
			if seen[n] {
				t.Errorf("key %q: node %q ranked twice", key, n)
			}
			seen[n] = true
		}

		// Rankings are stable across calls.
		again := s.Rank(key, nodes)
		for j := range ranked {
			if again[j] != ranked[j] {
				t.Errorf("key %q: ranking not stable at position %d", key, j)
			}
		}
	}
}

func TestSelectorEmptyNodes(t *testing.T) {
	s := NewStringSelector[string]()

	if _, ok := s.Select([]byte("key"), nil); ok {
		t.Error("Select on empty nodes should return ok=false")
	}
	if _, ok := s.SelectIndex([]byte("key"), []string{}); ok {
		t.Error("SelectIndex on empty nodes should return ok=false")
	}
	if ranked := s.Rank([]byte("key"), nil); len(ranked) != 0 {
		t.Errorf("Rank on empty nodes returned %d entries", len(ranked))
	}
	if _, ok := s.SelectWeighted([]byte("key"), nil); ok {
		t.Error("SelectWeighted on empty nodes should return ok=false")
	}
	if ranked := s.RankWeighted([]byte("key"), nil); len(ranked) != 0 {
		t.Errorf("RankWeighted on empty nodes returned %d entries", len(ranked))
	}
}

func TestSelectorNodeRemovalReassignsMinority(t *testing.T) {
	s := NewStringSelector[string]()
	nodes := []string{"node1", "node2", "node3", "node4", "node5"}

	const keys = 1000
	assignments := make([]string, keys)
	for i := 0; i < keys; i++ {
		node, _ := s.Select([]byte(fmt.Sprintf("key_%d", i)), nodes)
		assignments[i] = node
	}

	// Drop node5; only keys that preferred node5 should move.
	reduced := nodes[:4]
	reassigned := 0
	for i := 0; i < keys; i++ {
		node, _ := s.Select([]byte(fmt.Sprintf("key_%d", i)), reduced)
		if node != assignments[i] {
			reassigned++
			if assignments[i] != "node5" {
				t.Errorf("key_%d moved from %q, which is still present", i, assignments[i])
			}
		}
	}

	// Expect ~1/5 of keys to move; allow generous statistical slack.
	if reassigned < keys/10 || reassigned > keys*3/10 {
		t.Errorf("reassigned %d/%d keys, expected roughly %d", reassigned, keys, keys/5)
	}
}

func TestSelectorDistribution(t *testing.T) {
	s := NewStringSelector[string]()
	nodes := []string{"a", "b", "c", "d"}

	counts := make(map[string]int)
	const keys = 2000
	for i := 0; i < keys; i++ {
		node, _ := s.Select([]byte(fmt.Sprintf("user:%d", i)), nodes)
		counts[node]++
	}

	// Every node should receive a reasonable share.
	for _, n := range nodes {
		if counts[n] < keys/8 {
			t.Errorf("node %q received only %d of %d keys", n, counts[n], keys)
		}
	}
}

func TestSelectorWithEveryHasher(t *testing.T) {
	// Any Hasher64 provider drives the selector; each must be internally
	// consistent even though they pick different winners.
	for _, maker := range hasher64Makers {
		t.Run(maker.name, func(t *testing.T) {
			s := NewSelector[string](maker.new, StringKeyCodec[string]{})
			nodes := []string{"n1", "n2", "n3"}

			a, ok := s.Select([]byte("k"), nodes)
			if !ok {
				t.Fatal("ok=false")
			}
			b, _ := s.Select([]byte("k"), nodes)
			if a != b {
				t.Errorf("unstable selection: %q then %q", a, b)
			}
			if ranked := s.Rank([]byte("k"), nodes); ranked[0] != a {
				t.Errorf("Rank[0] = %q, Select = %q", ranked[0], a)
			}
		})
	}
}

func TestSelectWeightedHeaviestWins(t *testing.T) {
	s := NewStringSelector[string]()

	// Make one node overwhelmingly heavy so it always wins top rank.
	nodes := []Weighted[string]{
		{Node: "light1", Weight: 1},
		{Node: "heavy", Weight: 1_000_000_000},
		{Node: "light2", Weight: 1},
	}

	for i := 0; i < 50; i++ {
		key := []byte(fmt.Sprintf("key_%d", i))
		node, ok := s.SelectWeighted(key, nodes)
		if !ok || node != "heavy" {
			t.Fatalf("key %q: expected heavy node, got %q ok=%v", key, node, ok)
		}
		if ranked := s.RankWeighted(key, nodes); ranked[0] != "heavy" {
			t.Fatalf("key %q: RankWeighted[0] = %q", key, ranked[0])
		}
	}
}

func TestSelectWeightedEqualWeightsMatchUnweighted(t *testing.T) {
	s := NewStringSelector[string]()
	plain := []string{"n1", "n2", "n3", "n4"}
	weighted := make([]Weighted[string], len(plain))
	for i, n := range plain {
		weighted[i] = Weighted[string]{Node: n, Weight: 1}
	}

	for i := 0; i < 50; i++ {
		key := []byte(fmt.Sprintf("key_%d", i))
		want, _ := s.Select(key, plain)
		got, _ := s.SelectWeighted(key, weighted)
		if got != want {
			t.Errorf("key %q: weighted %q, unweighted %q", key, got, want)
		}
	}
}

func TestSelectorStructNodes(t *testing.T) {
	s := NewSelector[testNode](NewXXHash64, CBORKeyCodec[testNode]{})
	nodes := []testNode{
		{Name: "node-1", Port: 8080},
		{Name: "node-2", Port: 8080},
		{Name: "node-3", Port: 9090},
	}

	first, ok := s.Select([]byte("some_key"), nodes)
	if !ok {
		t.Fatal("ok=false")
	}
	again, _ := s.Select([]byte("some_key"), nodes)
	if first.Name != again.Name || first.Port != again.Port {
		t.Errorf("struct node selection unstable: %+v then %+v", first, again)
	}

	idx, _ := s.SelectIndex([]byte("some_key"), nodes)
	if nodes[idx].Name != first.Name {
		t.Errorf("SelectIndex disagrees with Select for struct nodes")
	}
}

func BenchmarkSelect(b *testing.B) {
	s := NewStringSelector[string]()
	nodes := make([]string, 16)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("node-%d", i)
	}
	key := []byte("cache:user:profile:1234567890")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Select(key, nodes)
	}
}

func BenchmarkRank(b *testing.B) {
	s := NewStringSelector[string]()
	nodes := make([]string, 16)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("node-%d", i)
	}
	key := []byte("cache:user:profile:1234567890")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Rank(key, nodes)
	}
}
