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

// GraphDef is an immutable description of a Cayley graph: a generator set
// acting on sequences of length n, plus the central state the walk starts
// from. A generator p acts on a state by the gather rule new[i] = old[p[i]].
type GraphDef struct {
	n             int
	generators    [][]int
	names         []string
	central       []int64
	inverseClosed bool
}

// NewGraphDef builds a definition from a generator list. Each generator must
// be a permutation of {0..n-1}; names default to the comma-joined permutation.
// The central state defaults to the identity 0..n-1.
func NewGraphDef(generators [][]int) (GraphDef, error) {
	return NewNamedGraphDef(generators, nil)
}

// NewNamedGraphDef is NewGraphDef with explicit generator labels, one per
// generator.
func NewNamedGraphDef(generators [][]int, names []string) (GraphDef, error) {
	if len(generators) == 0 {
		return GraphDef{}, errors.New("cayley: at least one generator is required")
	}

	n := len(generators[0])
	gens := make([][]int, len(generators))
	for gi, p := range generators {
		if len(p) != n {
			return GraphDef{}, errors.Errorf("cayley: generator %d has length %d, want %d", gi, len(p), n)
		}
		if err := checkPermutation(p); err != nil {
			return GraphDef{}, errors.Wrapf(err, "cayley: generator %d", gi)
		}
		gens[gi] = append([]int(nil), p...)
	}

	if names == nil {
		names = make([]string, len(gens))
		for gi, p := range gens {
			names[gi] = permName(p)
		}
	} else {
		if len(names) != len(gens) {
			return GraphDef{}, errors.Errorf("cayley: %d generator names for %d generators", len(names), len(gens))
		}
		names = append([]string(nil), names...)
	}

	central := make([]int64, n)
	for i := range central {
		central[i] = int64(i)
	}

	def := GraphDef{
		n:          n,
		generators: gens,
		names:      names,
		central:    central,
	}
	def.inverseClosed = computeInverseClosed(gens)
	return def, nil
}

// WithCentralState returns a copy of the definition whose central state is
// parsed from a string of decimal digits, one digit per position. The digit
// form limits the alphabet to at most 10 symbols.
func (d GraphDef) WithCentralState(s string) (GraphDef, error) {
	if len(s) != d.n {
		return GraphDef{}, errors.Errorf("cayley: central state %q has length %d, want %d", s, len(s), d.n)
	}
	central := make([]int64, d.n)
	for i, r := range s {
		if r < '0' || r > '9' {
			return GraphDef{}, errors.Errorf("cayley: central state %q has non-digit at position %d", s, i)
		}
		central[i] = int64(r - '0')
	}
	return d.withCentral(central), nil
}

// WithCentralStateValues returns a copy of the definition with the given
// central state values.
func (d GraphDef) WithCentralStateValues(values []int64) (GraphDef, error) {
	if len(values) != d.n {
		return GraphDef{}, errors.Errorf("cayley: central state has length %d, want %d", len(values), d.n)
	}
	for i, v := range values {
		if v < 0 {
			return GraphDef{}, errors.Errorf("cayley: central state value %d at position %d is negative", v, i)
		}
	}
	return d.withCentral(append([]int64(nil), values...)), nil
}

func (d GraphDef) withCentral(central []int64) GraphDef {
	cp := d
	cp.central = central
	return cp
}

// N returns the state length.
func (d GraphDef) N() int { return d.n }

// Generators returns the generator permutations. Callers must not modify.
func (d GraphDef) Generators() [][]int { return d.generators }

// GeneratorNames returns one label per generator.
func (d GraphDef) GeneratorNames() []string { return d.names }

// CentralState returns the canonical start state.
func (d GraphDef) CentralState() []int64 { return d.central }

// InverseClosed reports whether the inverse of every generator is itself in
// the generator list. Symmetric BFS requires this.
func (d GraphDef) InverseClosed() bool { return d.inverseClosed }

// AlphabetSize returns the number of element values the central state can
// take, i.e. max value + 1.
func (d GraphDef) AlphabetSize() int {
	var max int64
	for _, v := range d.central {
		if v > max {
			max = v
		}
	}
	return int(max) + 1
}

func checkPermutation(p []int) error {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return errors.Errorf("row %v is not a permutation of 0..%d", p, len(p)-1)
		}
		seen[v] = true
	}
	return nil
}

func permName(p []int) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func computeInverseClosed(gens [][]int) bool {
	present := make(map[string]bool, len(gens))
	for _, p := range gens {
		present[permName(p)] = true
	}
	inv := make([]int, len(gens[0]))
	for _, p := range gens {
		for i, v := range p {
			inv[v] = i
		}
		if !present[permName(inv)] {
			return false
		}
	}
	return true
}
