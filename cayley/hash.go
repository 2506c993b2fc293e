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

	"golang.org/x/crypto/blake2b"
)

// hashChunked returns one deterministic 64-bit hash per row: the first eight
// bytes of BLAKE2b-256 over the row's words in little-endian order. The hash
// is a pure function of the encoded words, so codec determinism makes hash
// equality safe to treat as state equality during dedup. The batch is
// processed in tiles of at most hashChunkSize rows; tiling only bounds
// scratch memory and cannot change the result.
func (g *Graph) hashChunked(e *Encoded) []uint64 {
	out := make([]uint64, e.rows)
	buf := make([]byte, e.words*8)
	for lo := 0; lo < e.rows; lo += g.hashChunkSize {
		hi := lo + g.hashChunkSize
		if hi > e.rows {
			hi = e.rows
		}
		for r := lo; r < hi; r++ {
			row := e.row(r)
			for w, v := range row {
				binary.LittleEndian.PutUint64(buf[w*8:], v)
			}
			sum := blake2b.Sum256(buf)
			out[r] = binary.LittleEndian.Uint64(sum[:8])
		}
	}
	return out
}
