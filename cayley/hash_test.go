package cayley

import (
	"testing"
)

func TestHashDeterministic(t *testing.T) {
	g := hashTestGraph(t, Options{})
	enc := hashTestBatch(t, g)

	first := g.hashChunked(enc)
	second := g.hashChunked(enc)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("hash of row %d changed between calls: %x vs %x", i, first[i], second[i])
		}
	}
}

func TestHashDistinguishesRows(t *testing.T) {
	g := hashTestGraph(t, Options{})
	enc := hashTestBatch(t, g)

	hashes := g.hashChunked(enc)
	seen := make(map[uint64]int)
	for i, h := range hashes {
		if j, ok := seen[h]; ok {
			t.Fatalf("rows %d and %d collided on %x", j, i, h)
		}
		seen[h] = i
	}
}

// Tiling the batch bounds scratch memory only; it must not change a single
// hash.
func TestHashChunkingEquivalent(t *testing.T) {
	whole := hashTestGraph(t, Options{})
	ref := whole.hashChunked(hashTestBatch(t, whole))

	for _, chunk := range []int{1, 3, 100} {
		g := hashTestGraph(t, Options{HashChunkSize: chunk})
		got := g.hashChunked(hashTestBatch(t, g))
		if len(got) != len(ref) {
			t.Fatalf("chunk %d: %d hashes, want %d", chunk, len(got), len(ref))
		}
		for i := range ref {
			if got[i] != ref[i] {
				t.Fatalf("chunk %d: row %d hashed to %x, want %x", chunk, i, got[i], ref[i])
			}
		}
	}
}

func hashTestGraph(t *testing.T, opts Options) *Graph {
	t.Helper()
	def, err := NewGraphDef([][]int{{1, 2, 3, 4, 5, 0}, {5, 0, 1, 2, 3, 4}})
	if err != nil {
		t.Fatalf("NewGraphDef returned error: %v", err)
	}
	g, err := NewGraph(def, opts)
	if err != nil {
		t.Fatalf("NewGraph returned error: %v", err)
	}
	return g
}

func hashTestBatch(t *testing.T, g *Graph) *Encoded {
	t.Helper()
	var rows [][]int64
	// The six rotations of the identity, then the same six with the first
	// two positions swapped. All twelve rows are distinct.
	for r := 0; r < 12; r++ {
		row := make([]int64, 6)
		for i := range row {
			row[i] = int64((i + r) % 6)
		}
		if r >= 6 {
			row[0], row[1] = row[1], row[0]
		}
		rows = append(rows, row)
	}
	states, err := StatesFromRows(rows)
	if err != nil {
		t.Fatalf("StatesFromRows returned error: %v", err)
	}
	enc, err := g.EncodeStates(states)
	if err != nil {
		t.Fatalf("EncodeStates returned error: %v", err)
	}
	return enc
}
