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

// Package cayley explores very large Cayley graphs of permutation groups by
// batched breadth-first search. States are held in a compact word encoding,
// frontiers are deduplicated by 64-bit hashes only, and every kernel call
// (encode, neighbor expansion, hashing) operates on whole batches so the
// working set of a layer fits in memory and expands at high throughput.
package cayley

import (
	"math/bits"
	"runtime"

	"github.com/pkg/errors"
)

const (
	// DefaultBatchSize bounds the number of frontier rows expanded per
	// kernel call.
	DefaultBatchSize = 1 << 20
	// DefaultHashChunkSize bounds the number of rows hashed per tile.
	DefaultHashChunkSize = 1 << 22
)

// Options configures the encoding and batching of a Graph. The zero value
// selects the raw codec with large batch and chunk sizes.
type Options struct {
	// BitWidth selects the packed codec with the given element width in
	// bits. Zero keeps the raw codec unless AutoWidth is set.
	BitWidth int
	// AutoWidth selects the packed codec with the smallest width that fits
	// the graph's alphabet.
	AutoWidth bool
	// BatchSize caps the number of frontier rows per neighbor-kernel call.
	BatchSize int
	// HashChunkSize caps the number of rows hashed per tile.
	HashChunkSize int
	// Workers caps kernel data-parallelism. Defaults to GOMAXPROCS.
	Workers int
}

// Graph binds a GraphDef to a codec and batching configuration. It is
// immutable and may be reused across any number of BFS invocations.
type Graph struct {
	def           GraphDef
	codec         *codec
	batchSize     int
	hashChunkSize int
	workers       int
}

// NewGraph validates the configuration and builds the codec.
func NewGraph(def GraphDef, opts Options) (*Graph, error) {
	if def.n == 0 {
		return nil, errors.New("cayley: graph definition is empty")
	}
	if opts.BatchSize < 0 || opts.HashChunkSize < 0 || opts.Workers < 0 {
		return nil, errors.Errorf("cayley: negative batching option: batch %d, chunk %d, workers %d",
			opts.BatchSize, opts.HashChunkSize, opts.Workers)
	}
	if opts.BitWidth != 0 && opts.AutoWidth {
		return nil, errors.New("cayley: BitWidth and AutoWidth are mutually exclusive")
	}

	g := &Graph{
		def:           def,
		batchSize:     opts.BatchSize,
		hashChunkSize: opts.HashChunkSize,
		workers:       opts.Workers,
	}
	if g.batchSize == 0 {
		g.batchSize = DefaultBatchSize
	}
	if g.hashChunkSize == 0 {
		g.hashChunkSize = DefaultHashChunkSize
	}
	if g.workers == 0 {
		g.workers = runtime.GOMAXPROCS(0)
	}

	switch {
	case opts.AutoWidth:
		width := bits.Len(uint(def.AlphabetSize() - 1))
		if width == 0 {
			width = 1
		}
		c, err := newPackedCodec(def.n, width)
		if err != nil {
			return nil, err
		}
		g.codec = c
	case opts.BitWidth != 0:
		c, err := newPackedCodec(def.n, opts.BitWidth)
		if err != nil {
			return nil, err
		}
		g.codec = c
	default:
		g.codec = newRawCodec(def.n)
	}
	return g, nil
}

// Def returns the graph definition.
func (g *Graph) Def() GraphDef { return g.def }

// Mode returns the codec mode in effect.
func (g *Graph) Mode() CodecMode { return g.codec.mode }

// WordsPerState returns the encoded row width in 64-bit words.
func (g *Graph) WordsPerState() int { return g.codec.words }

// BitWidth returns the packed element width in bits, or zero in raw mode.
func (g *Graph) BitWidth() int { return g.codec.width }

// EncodeStates packs a batch of decoded states into the graph's word layout.
func (g *Graph) EncodeStates(s *States) (*Encoded, error) {
	return g.codec.encode(s)
}

// DecodeStates is the exact inverse of EncodeStates.
func (g *Graph) DecodeStates(e *Encoded) *States {
	return g.codec.decode(e)
}
