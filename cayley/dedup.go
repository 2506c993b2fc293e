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
	"sort"
)

// hashSet is a sorted slice of layer hashes. For undirected BFS a candidate
// in layer d+1 can only collide with layers d and d-1, so at most three
// layers of hashes are live at any point of the walk.
type hashSet []uint64

func (s hashSet) contains(h uint64) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= h })
	return i < len(s) && s[i] == h
}

// dedupFrontier reduces a candidate batch to the next BFS layer using hashes
// only: one representative (the lowest-index row) is kept per hash value, and
// representatives whose hash occurs in the previous or the one-before
// previous layer are dropped. Returned rows are ordered by ascending hash and
// the returned hash slice is aligned row-for-row, so it doubles as the
// layer's hashSet.
func dedupFrontier(cands *Encoded, hashes []uint64, prev, prevPrev hashSet) (*Encoded, hashSet) {
	order := make([]int, len(hashes))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ha, hb := hashes[order[a]], hashes[order[b]]
		if ha != hb {
			return ha < hb
		}
		return order[a] < order[b]
	})

	keep := order[:0]
	for i := 0; i < len(order); {
		j := i
		for j < len(order) && hashes[order[j]] == hashes[order[i]] {
			j++
		}
		h := hashes[order[i]]
		if !prev.contains(h) && !prevPrev.contains(h) {
			keep = append(keep, order[i])
		}
		i = j
	}

	next := newEncoded(len(keep), cands.words)
	nextHashes := make(hashSet, len(keep))
	for i, r := range keep {
		copy(next.row(i), cands.row(r))
		nextHashes[i] = hashes[r]
	}
	return next, nextHashes
}
