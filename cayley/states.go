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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// States is the canonical batch of decoded states: a dense rows x n matrix of
// small non-negative integers. All engine entry points accept and return this
// one type instead of overloading on strings, nested slices and flat slices.
type States struct {
	rows int
	n    int
	data []int64
}

// StatesFromRows builds a batch from nested rows. All rows must have equal
// length.
func StatesFromRows(rows [][]int64) (*States, error) {
	if len(rows) == 0 {
		return nil, errors.New("cayley: empty state batch")
	}
	n := len(rows[0])
	s := &States{rows: len(rows), n: n, data: make([]int64, 0, len(rows)*n)}
	for i, r := range rows {
		if len(r) != n {
			return nil, errors.Errorf("cayley: state row %d has length %d, want %d", i, len(r), n)
		}
		s.data = append(s.data, r...)
	}
	return s, nil
}

// StatesFromFlat reshapes a flat slice into rows of length n.
func StatesFromFlat(data []int64, n int) (*States, error) {
	if n <= 0 {
		return nil, errors.Errorf("cayley: invalid state length %d", n)
	}
	if len(data) == 0 || len(data)%n != 0 {
		return nil, errors.Errorf("cayley: flat batch of %d values does not divide into rows of %d", len(data), n)
	}
	return &States{rows: len(data) / n, n: n, data: append([]int64(nil), data...)}, nil
}

// StatesFromString builds a single-row batch from a string of decimal digits,
// one digit per position.
func StatesFromString(s string) (*States, error) {
	if len(s) == 0 {
		return nil, errors.New("cayley: empty state string")
	}
	data := make([]int64, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return nil, errors.Errorf("cayley: state %q has non-digit at position %d", s, i)
		}
		data[i] = int64(r - '0')
	}
	return &States{rows: 1, n: len(s), data: data}, nil
}

// Rows returns the number of states in the batch.
func (s *States) Rows() int { return s.rows }

// N returns the state length.
func (s *States) N() int { return s.n }

// Row returns the i-th state as a view into the batch. Callers must not
// modify.
func (s *States) Row(i int) []int64 {
	return s.data[i*s.n : (i+1)*s.n]
}

// Name returns the decimal-digit form of the i-th state, the concatenation of
// its element values. The result is only unambiguous for alphabets of at most
// 10 symbols.
func (s *States) Name(i int) string {
	var b strings.Builder
	for _, v := range s.Row(i) {
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}
