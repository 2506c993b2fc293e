package cayley

import (
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		width int // 0 selects the raw codec
	}{
		{name: "Raw", n: 8, width: 0},
		{name: "Packed1", n: 10, width: 1},
		{name: "Packed3", n: 8, width: 3},
		{name: "Packed5", n: 5, width: 5},
		{name: "Packed10", n: 8, width: 10},
		{name: "PackedStraddle", n: 40, width: 6},
		{name: "PackedWide", n: 3, width: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := codecForTest(t, tt.n, tt.width)
			rows := make([][]int64, 3)
			var limit int64
			if tt.width > 0 {
				limit = int64(1)<<uint(tt.width) - 1
			} else {
				limit = int64(tt.n - 1)
			}
			for r := range rows {
				row := make([]int64, tt.n)
				for i := range row {
					row[i] = int64(r*7+i*3) % (limit + 1)
				}
				rows[r] = row
			}
			states, err := StatesFromRows(rows)
			if err != nil {
				t.Fatalf("StatesFromRows returned error: %v", err)
			}

			enc, err := c.encode(states)
			if err != nil {
				t.Fatalf("encode returned error: %v", err)
			}
			dec := c.decode(enc)
			if dec.Rows() != states.Rows() || dec.N() != states.N() {
				t.Fatalf("decode shape (%d,%d), want (%d,%d)", dec.Rows(), dec.N(), states.Rows(), states.N())
			}
			for r := 0; r < states.Rows(); r++ {
				for i, v := range states.Row(r) {
					if dec.Row(r)[i] != v {
						t.Fatalf("row %d position %d decoded to %d, want %d", r, i, dec.Row(r)[i], v)
					}
				}
			}
		})
	}
}

func TestCodecWordsPerState(t *testing.T) {
	tests := []struct {
		n, width, words int
	}{
		{n: 8, width: 0, words: 8},
		{n: 10, width: 1, words: 1},
		{n: 64, width: 1, words: 1},
		{n: 65, width: 1, words: 2},
		{n: 40, width: 6, words: 4},
		{n: 8, width: 10, words: 2},
	}
	for _, tt := range tests {
		c := codecForTest(t, tt.n, tt.width)
		if c.words != tt.words {
			t.Fatalf("n=%d width=%d: %d words per state, want %d", tt.n, tt.width, c.words, tt.words)
		}
	}
}

// The packing order is a frozen contract: element 0 sits in the highest bits
// of word 0 and later elements follow toward lower bits; an element whose bits
// cross a 64-bit boundary is split across two words.
func TestCodecPackingOrder(t *testing.T) {
	c := codecForTest(t, 3, 2)
	states, _ := StatesFromRows([][]int64{{1, 2, 3}})
	enc, err := c.encode(states)
	if err != nil {
		t.Fatalf("encode returned error: %v", err)
	}
	want := uint64(1)<<62 | uint64(2)<<60 | uint64(3)<<58
	if enc.row(0)[0] != want {
		t.Fatalf("packed word %016x, want %016x", enc.row(0)[0], want)
	}
}

func TestCodecPackingOrderStraddle(t *testing.T) {
	const a, b = 0xABCDE, 0x123456789A
	c := codecForTest(t, 2, 40)
	states, _ := StatesFromRows([][]int64{{a, b}})
	enc, err := c.encode(states)
	if err != nil {
		t.Fatalf("encode returned error: %v", err)
	}
	want0 := uint64(a)<<24 | uint64(b)>>16
	want1 := (uint64(b) & 0xFFFF) << 48
	if enc.row(0)[0] != want0 || enc.row(0)[1] != want1 {
		t.Fatalf("packed words %016x %016x, want %016x %016x",
			enc.row(0)[0], enc.row(0)[1], want0, want1)
	}
}

func TestCodecRejectsOversizedValues(t *testing.T) {
	c := codecForTest(t, 4, 3)
	states, _ := StatesFromRows([][]int64{{0, 1, 2, 8}})
	if _, err := c.encode(states); err == nil {
		t.Fatalf("encode accepted value 8 at width 3")
	}
}

func TestCodecRejectsNegativeValues(t *testing.T) {
	for _, width := range []int{0, 4} {
		c := codecForTest(t, 3, width)
		states, _ := StatesFromRows([][]int64{{0, -1, 2}})
		if _, err := c.encode(states); err == nil {
			t.Fatalf("width %d: encode accepted a negative value", width)
		}
	}
}

func TestCodecRejectsBadWidth(t *testing.T) {
	for _, width := range []int{-1, 64, 100} {
		if _, err := newPackedCodec(8, width); err == nil {
			t.Fatalf("newPackedCodec accepted width %d", width)
		}
	}
}

func codecForTest(t *testing.T, n, width int) *codec {
	t.Helper()
	if width == 0 {
		return newRawCodec(n)
	}
	c, err := newPackedCodec(n, width)
	if err != nil {
		t.Fatalf("newPackedCodec(%d, %d) returned error: %v", n, width, err)
	}
	return c
}
