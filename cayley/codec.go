// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package cayley

import (
	"github.com/pkg/errors"
)

// Encoded is a batch of states in the graph codec's word layout: one row of
// wordsPerState uint64 words per state. Row identity is preserved by every
// batch operation except deduplication.
type Encoded struct {
	rows  int
	words int
	data  []uint64
}

// Rows returns the number of encoded states in the batch.
func (e *Encoded) Rows() int { return e.rows }

// WordsPerState returns the row width in 64-bit words.
func (e *Encoded) WordsPerState() int { return e.words }

func newEncoded(rows, words int) *Encoded {
	return &Encoded{rows: rows, words: words, data: make([]uint64, rows*words)}
}

func (e *Encoded) row(i int) []uint64 {
	return e.data[i*e.words : (i+1)*e.words]
}

// CodecMode selects the encoded state representation.
type CodecMode int

const (
	// ModeRaw stores one element per 64-bit word.
	ModeRaw CodecMode = iota
	// ModePacked stores each element in a fixed number of bits inside a
	// contiguous 64-bit word stream.
	ModePacked
)

func (m CodecMode) String() string {
	if m == ModePacked {
		return "packed"
	}
	return "raw"
}

// slotRef locates one w-bit element inside a packed word stream. Elements are
// placed from the most significant bits of word 0 toward lower bits, wrapping
// into the next word at the 64-bit boundary; a slot that straddles the
// boundary keeps its high hiBits in word `word` and its low loBits in
// word+1. This placement is a frozen contract: hashing and equality operate
// on the packed words directly.
type slotRef struct {
	word   int
	shift  uint // single-word slots: right shift to the low bits
	span   bool
	hiMask uint64 // spanning slots: low bits of word holding the element's high part
	loBits uint
}

// codec converts between decoded States and the Encoded word layout. One
// codec instance is built per graph and shared by the neighbor kernels and
// the hasher.
type codec struct {
	mode  CodecMode
	n     int
	width int    // bits per element, packed mode only
	words int    // words per state
	mask  uint64 // (1<<width)-1
	slots []slotRef
}

func newRawCodec(n int) *codec {
	return &codec{mode: ModeRaw, n: n, words: n}
}

func newPackedCodec(n, width int) (*codec, error) {
	if width <= 0 || width > 63 {
		return nil, errors.Errorf("cayley: bit encoding width %d out of range 1..63", width)
	}
	c := &codec{
		mode:  ModePacked,
		n:     n,
		width: width,
		words: (n*width + 63) / 64,
		mask:  (uint64(1) << uint(width)) - 1,
		slots: make([]slotRef, n),
	}
	for i := 0; i < n; i++ {
		start := i * width
		word, off := start/64, uint(start%64)
		if off+uint(width) <= 64 {
			c.slots[i] = slotRef{word: word, shift: 64 - off - uint(width)}
			continue
		}
		hiBits := 64 - off
		c.slots[i] = slotRef{
			word:   word,
			span:   true,
			hiMask: (uint64(1) << hiBits) - 1,
			loBits: uint(width) - hiBits,
		}
	}
	return c, nil
}

func (c *codec) get(row []uint64, i int) uint64 {
	if c.mode == ModeRaw {
		return row[i]
	}
	s := c.slots[i]
	if !s.span {
		return (row[s.word] >> s.shift) & c.mask
	}
	return (row[s.word]&s.hiMask)<<s.loBits | row[s.word+1]>>(64-s.loBits)
}

// put assumes the destination bits are zero.
func (c *codec) put(row []uint64, i int, v uint64) {
	if c.mode == ModeRaw {
		row[i] = v
		return
	}
	s := c.slots[i]
	if !s.span {
		row[s.word] |= v << s.shift
		return
	}
	row[s.word] |= v >> s.loBits
	row[s.word+1] |= (v << (64 - s.loBits))
}

// encode packs a batch of decoded states. In packed mode every value must fit
// in the configured element width.
func (c *codec) encode(s *States) (*Encoded, error) {
	if s.n != c.n {
		return nil, errors.Errorf("cayley: states of length %d on a graph of length %d", s.n, c.n)
	}
	out := newEncoded(s.rows, c.words)
	for r := 0; r < s.rows; r++ {
		src := s.Row(r)
		dst := out.row(r)
		for i, v := range src {
			if v < 0 {
				return nil, errors.Errorf("cayley: negative state value %d at row %d position %d", v, r, i)
			}
			if c.mode == ModePacked && uint64(v) > c.mask {
				return nil, errors.Errorf("cayley: state value %d at row %d does not fit in %d bits", v, r, c.width)
			}
			c.put(dst, i, uint64(v))
		}
	}
	return out, nil
}

// decode is the exact inverse of encode.
func (c *codec) decode(e *Encoded) *States {
	s := &States{rows: e.rows, n: c.n, data: make([]int64, e.rows*c.n)}
	for r := 0; r < e.rows; r++ {
		src := e.row(r)
		dst := s.data[r*c.n : (r+1)*c.n]
		for i := range dst {
			dst[i] = int64(c.get(src, i))
		}
	}
	return s
}
