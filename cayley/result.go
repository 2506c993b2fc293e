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
	"encoding/binary"
	"sort"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// BFSResult is the read-only outcome of one BFS invocation. Every produced
// layer is counted in LayerSizes; layer contents are retained selectively
// under the store cap and held snappy-compressed until accessed.
type BFSResult struct {
	// LayerSizes holds the size of every layer, dense from layer 0.
	LayerSizes []int
	// Completed is true only when the walk stopped on an empty frontier.
	Completed bool
	// VertexHashes and VertexNames list every discovered vertex in
	// discovery order. Populated only with ReturnAllHashes.
	VertexHashes []uint64
	VertexNames  []string
	// Edges lists every recorded edge as an unordered hash pair, smaller
	// hash first. Self-loops have both endpoints equal. Populated only
	// with ReturnAllEdges.
	Edges [][2]uint64

	g        *Graph
	storeCap int
	hashes   bool
	stored   map[int]storedLayer

	// tail tracks the last two storable layers so they can be stored
	// regardless of the cap once the walk ends.
	tail [2]tailLayer
}

type storedLayer struct {
	rows int
	comp []byte
}

type tailLayer struct {
	idx int
	enc *Encoded
}

func newBFSResult(g *Graph, storeCap int, opts BFSOptions) *BFSResult {
	r := &BFSResult{
		g:        g,
		storeCap: storeCap,
		hashes:   opts.ReturnAllHashes,
		stored:   make(map[int]storedLayer),
		tail:     [2]tailLayer{{idx: -1}, {idx: -1}},
	}
	if opts.ReturnAllEdges {
		r.Edges = [][2]uint64{}
	}
	return r
}

// recordLayer counts a produced layer and applies the retention rules. A
// non-storable layer (halted by the explore budget) contributes to counts,
// hashes and names but never to the per-layer store.
func (r *BFSResult) recordLayer(idx int, layer *Encoded, hashes hashSet, storable bool) {
	r.LayerSizes = append(r.LayerSizes, layer.rows)
	if r.hashes {
		r.VertexHashes = append(r.VertexHashes, hashes...)
		decoded := r.g.DecodeStates(layer)
		for i := 0; i < decoded.Rows(); i++ {
			r.VertexNames = append(r.VertexNames, decoded.Name(i))
		}
	}
	if !storable {
		return
	}
	// Layers 0 and 1 are always retained; the final two are retained by
	// sealTail once the walk ends.
	if layer.rows <= r.storeCap || idx <= 1 {
		r.store(idx, layer)
	}
	r.tail[0] = r.tail[1]
	r.tail[1] = tailLayer{idx: idx, enc: layer}
}

// sealTail retains the last two storable layers regardless of the cap. A final
// layer halted by the explore budget is not storable and stays unretained.
func (r *BFSResult) sealTail() {
	for _, t := range r.tail {
		if t.idx < 0 {
			continue
		}
		if _, ok := r.stored[t.idx]; !ok {
			r.store(t.idx, t.enc)
		}
		// the encoded batches are not needed past this point
	}
	r.tail = [2]tailLayer{{idx: -1}, {idx: -1}}
}

func (r *BFSResult) store(idx int, layer *Encoded) {
	buf := make([]byte, len(layer.data)*8)
	for i, v := range layer.data {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}
	r.stored[idx] = storedLayer{rows: layer.rows, comp: snappy.Encode(nil, buf)}
}

// Diameter returns the index of the last counted layer.
func (r *BFSResult) Diameter() int { return len(r.LayerSizes) - 1 }

// NumVertices returns the total number of discovered vertices.
func (r *BFSResult) NumVertices() int {
	total := 0
	for _, s := range r.LayerSizes {
		total += s
	}
	return total
}

// StoredLayerIndices returns the sorted indices of retained layers. The set
// may be non-contiguous when the store cap dropped intermediate layers.
func (r *BFSResult) StoredLayerIndices() []int {
	idx := make([]int, 0, len(r.stored))
	for i := range r.stored {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// GetLayer decompresses and decodes a retained layer.
func (r *BFSResult) GetLayer(idx int) (*States, error) {
	sl, ok := r.stored[idx]
	if !ok {
		return nil, errors.Errorf("cayley: layer %d was not retained", idx)
	}
	buf, err := snappy.Decode(nil, sl.comp)
	if err != nil {
		return nil, errors.Wrapf(err, "cayley: layer %d", idx)
	}
	enc := newEncoded(sl.rows, r.g.codec.words)
	for i := range enc.data {
		enc.data[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return r.g.DecodeStates(enc), nil
}

// LastLayer returns the retained contents of the final layer.
func (r *BFSResult) LastLayer() (*States, error) {
	return r.GetLayer(r.Diameter())
}

// NamedUndirectedEdges returns the deduplicated set of explored edges as
// canonical pairs of decoded state names, lexicographically smaller name
// first. Requires both ReturnAllEdges and ReturnAllHashes.
func (r *BFSResult) NamedUndirectedEdges() (map[[2]string]struct{}, error) {
	if r.Edges == nil {
		return nil, errors.New("cayley: edges were not recorded, set ReturnAllEdges")
	}
	if !r.hashes {
		return nil, errors.New("cayley: vertex names were not recorded, set ReturnAllHashes")
	}
	names := make(map[uint64]string, len(r.VertexHashes))
	for i, h := range r.VertexHashes {
		names[h] = r.VertexNames[i]
	}
	set := make(map[[2]string]struct{}, len(r.Edges))
	for _, e := range r.Edges {
		a, ok1 := names[e[0]]
		b, ok2 := names[e[1]]
		if !ok1 || !ok2 {
			return nil, errors.Errorf("cayley: edge endpoint %x/%x has no recorded name", e[0], e[1])
		}
		if b < a {
			a, b = b, a
		}
		set[[2]string{a, b}] = struct{}{}
	}
	return set, nil
}
