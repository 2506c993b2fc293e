package cayley

import (
	"sort"
	"testing"
)

func TestDedupKeepsLowestIndexPerHash(t *testing.T) {
	cands := newEncoded(5, 1)
	for i := range cands.data {
		cands.data[i] = uint64(100 + i)
	}
	hashes := []uint64{7, 3, 7, 3, 9}

	next, nextHashes := dedupFrontier(cands, hashes, nil, nil)
	if next.Rows() != 3 {
		t.Fatalf("expected 3 unique rows, got %d", next.Rows())
	}
	if !sort.SliceIsSorted(nextHashes, func(a, b int) bool { return nextHashes[a] < nextHashes[b] }) {
		t.Fatalf("layer hashes not sorted: %v", nextHashes)
	}

	// Hash 3 first appeared at row 1, hash 7 at row 0, hash 9 at row 4.
	byHash := map[uint64]uint64{}
	for i := range nextHashes {
		byHash[nextHashes[i]] = next.row(i)[0]
	}
	want := map[uint64]uint64{3: 101, 7: 100, 9: 104}
	for h, row := range want {
		if byHash[h] != row {
			t.Fatalf("hash %d kept row word %d, want %d", h, byHash[h], row)
		}
	}
}

func TestDedupDropsPreviousLayers(t *testing.T) {
	cands := newEncoded(4, 1)
	for i := range cands.data {
		cands.data[i] = uint64(i)
	}
	hashes := []uint64{10, 20, 30, 40}
	prev := hashSet{20}
	prevPrev := hashSet{40}

	next, nextHashes := dedupFrontier(cands, hashes, prev, prevPrev)
	if next.Rows() != 2 {
		t.Fatalf("expected 2 surviving rows, got %d", next.Rows())
	}
	if nextHashes[0] != 10 || nextHashes[1] != 30 {
		t.Fatalf("surviving hashes %v, want [10 30]", nextHashes)
	}
}

func TestDedupEmptyFrontier(t *testing.T) {
	cands := newEncoded(3, 1)
	hashes := []uint64{1, 2, 3}
	prev := hashSet{1, 2}
	prevPrev := hashSet{3}

	next, nextHashes := dedupFrontier(cands, hashes, prev, prevPrev)
	if next.Rows() != 0 || len(nextHashes) != 0 {
		t.Fatalf("expected empty layer, got %d rows", next.Rows())
	}
}

func TestHashSetContains(t *testing.T) {
	s := hashSet{2, 4, 8, 16}
	for _, h := range []uint64{2, 4, 8, 16} {
		if !s.contains(h) {
			t.Fatalf("hashSet missed %d", h)
		}
	}
	for _, h := range []uint64{0, 3, 17} {
		if s.contains(h) {
			t.Fatalf("hashSet falsely contains %d", h)
		}
	}
	if (hashSet)(nil).contains(5) {
		t.Fatalf("nil hashSet claims membership")
	}
}
