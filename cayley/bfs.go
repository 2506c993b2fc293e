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
	"math"

	"github.com/pkg/errors"
)

const (
	// NoLimit disables a budget that would otherwise default to a finite
	// cap.
	NoLimit = math.MaxInt
	// DefaultMaxLayerSizeToStore is the retention cap applied when
	// BFSOptions leaves MaxLayerSizeToStore at zero.
	DefaultMaxLayerSizeToStore = 1 << 30
)

// BFSOptions are the per-invocation knobs of the layer loop. The zero value
// runs an unbounded BFS from the graph's central state with the default
// retention cap and no edge or hash outputs.
type BFSOptions struct {
	// StartStates seeds layer 0. Nil starts from the central state.
	StartStates *States
	// MaxDiameter stops the walk after this many layers past the start
	// set. Zero means unlimited.
	MaxDiameter int
	// MaxLayerSizeToExplore halts the walk before expanding a layer whose
	// size strictly exceeds it; the layer is counted but not stored. Zero
	// means unlimited.
	MaxLayerSizeToExplore int
	// MaxLayerSizeToStore drops layers above this size from the result's
	// per-layer store (they are still counted and still expanded). Zero
	// selects DefaultMaxLayerSizeToStore; NoLimit retains every layer.
	MaxLayerSizeToStore int
	// ReturnAllEdges records every edge of the explored subgraph as an
	// unordered pair of vertex hashes.
	ReturnAllEdges bool
	// ReturnAllHashes records the hash and decoded name of every
	// discovered vertex in discovery order.
	ReturnAllHashes bool
}

// BFS runs the layer-by-layer expansion from the start set and returns an
// independent result. Layer index equals graph distance from the start set;
// the walk stops on an empty frontier or on the first budget hit.
func (g *Graph) BFS(opts BFSOptions) (*BFSResult, error) {
	if !g.def.inverseClosed {
		return nil, errors.New("cayley: generator set is not inverse-closed, symmetric BFS is undefined")
	}
	if opts.MaxDiameter < 0 || opts.MaxLayerSizeToExplore < 0 || opts.MaxLayerSizeToStore < 0 {
		return nil, errors.Errorf("cayley: negative budget: diameter %d, explore %d, store %d",
			opts.MaxDiameter, opts.MaxLayerSizeToExplore, opts.MaxLayerSizeToStore)
	}
	storeCap := opts.MaxLayerSizeToStore
	if storeCap == 0 {
		storeCap = DefaultMaxLayerSizeToStore
	}

	starts := opts.StartStates
	if starts == nil {
		s, err := StatesFromRows([][]int64{g.def.central})
		if err != nil {
			return nil, err
		}
		starts = s
	}
	enc, err := g.EncodeStates(starts)
	if err != nil {
		return nil, err
	}

	res := newBFSResult(g, storeCap, opts)

	// Seed layer 0 with the distinct start states.
	cur, curHashes := dedupFrontier(enc, g.hashChunked(enc), nil, nil)
	res.recordLayer(0, cur, curHashes, true)

	var prevHashes hashSet
	for d := 0; ; d++ {
		if opts.MaxDiameter > 0 && d == opts.MaxDiameter {
			break
		}

		cands, parents := g.expandFrontier(cur)
		candHashes := g.hashChunked(cands)
		if opts.ReturnAllEdges {
			for r := range candHashes {
				a, b := curHashes[parents[r]], candHashes[r]
				if b < a {
					a, b = b, a
				}
				res.Edges = append(res.Edges, [2]uint64{a, b})
			}
		}

		next, nextHashes := dedupFrontier(cands, candHashes, curHashes, prevHashes)
		if next.rows == 0 {
			res.Completed = true
			break
		}
		if opts.MaxLayerSizeToExplore > 0 && next.rows > opts.MaxLayerSizeToExplore {
			// Counted but neither expanded nor retained.
			res.recordLayer(d+1, next, nextHashes, false)
			break
		}
		res.recordLayer(d+1, next, nextHashes, true)
		prevHashes = curHashes
		cur, curHashes = next, nextHashes
	}

	res.sealTail()
	return res, nil
}

// expandFrontier runs the neighbor kernel over the frontier in slices of at
// most batchSize rows and concatenates the per-slice outputs. The returned
// parent slice maps every candidate row back to its frontier row, resolving
// the kernel's positional ordering per slice so edge endpoints stay correct
// under any slicing granularity.
func (g *Graph) expandFrontier(cur *Encoded) (*Encoded, []int) {
	gcount := len(g.def.generators)
	out := newEncoded(gcount*cur.rows, g.codec.words)
	parents := make([]int, gcount*cur.rows)

	base := 0
	for lo := 0; lo < cur.rows; lo += g.batchSize {
		hi := lo + g.batchSize
		if hi > cur.rows {
			hi = cur.rows
		}
		m := hi - lo
		g.neighborsInto(out, base, cur, lo, hi)
		for r := 0; r < gcount*m; r++ {
			parents[base+r] = lo + g.parentIndex(r, m)
		}
		base += gcount * m
	}
	return out, parents
}
