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
	"sync"
)

// Neighbors returns the batch of all neighbors of the input batch: for each
// generator p and each input row s, the image p(s). The output has
// g*Rows() rows and its row ordering is a fixed, observable contract that
// depends on the codec mode:
//
//   - packed: generator-major, [p0(s0) ... p0(sm-1), p1(s0) ...]
//   - raw: state-major, [p0(s0), p1(s0) ... pg-1(s0), p0(s1) ...]
//
// Edge recording derives edge endpoints from these positions.
func (g *Graph) Neighbors(e *Encoded) *Encoded {
	out := newEncoded(len(g.def.generators)*e.rows, g.codec.words)
	g.neighborsInto(out, 0, e, 0, e.rows)
	return out
}

// neighborsInto expands src rows [lo,hi) into dst starting at row dstOff,
// producing g*(hi-lo) rows in the mode's ordering. The work is split across
// the graph's worker pool; workers own disjoint destination row ranges.
func (g *Graph) neighborsInto(dst *Encoded, dstOff int, src *Encoded, lo, hi int) {
	m := hi - lo
	if m <= 0 {
		return
	}
	workers := g.workers
	if workers > m {
		workers = m
	}
	if workers <= 1 {
		g.expandRange(dst, dstOff, src, lo, hi, lo, hi)
		return
	}

	chunk := (m + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		rlo := lo + w*chunk
		rhi := rlo + chunk
		if rhi > hi {
			rhi = hi
		}
		if rlo >= rhi {
			break
		}
		wg.Add(1)
		go func(rlo, rhi int) {
			defer wg.Done()
			g.expandRange(dst, dstOff, src, lo, hi, rlo, rhi)
		}(rlo, rhi)
	}
	wg.Wait()
}

// expandRange applies every generator to src rows [rlo,rhi), which must lie
// inside the slice [lo,hi) that dstOff addresses.
func (g *Graph) expandRange(dst *Encoded, dstOff int, src *Encoded, lo, hi, rlo, rhi int) {
	m := hi - lo
	gens := g.def.generators
	c := g.codec
	for si := rlo; si < rhi; si++ {
		in := src.row(si)
		for gi, p := range gens {
			var dr int
			if c.mode == ModePacked {
				dr = dstOff + gi*m + (si - lo)
			} else {
				dr = dstOff + (si-lo)*len(gens) + gi
			}
			out := dst.row(dr)
			if c.mode == ModeRaw {
				for i, pi := range p {
					out[i] = in[pi]
				}
				continue
			}
			for i, pi := range p {
				c.put(out, i, c.get(in, pi))
			}
		}
	}
}

// parentIndex maps a row of an expanded slice back to the source row it was
// generated from, following the ordering contract of Neighbors. r is the row
// offset inside one expanded slice of m source rows.
func (g *Graph) parentIndex(r, m int) int {
	if g.codec.mode == ModePacked {
		return r % m
	}
	return r / len(g.def.generators)
}
