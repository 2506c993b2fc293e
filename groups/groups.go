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

// Package groups is the catalog of named permutation-group families. Every
// family it produces is inverse-closed, so the resulting definitions can be
// fed to the BFS engine directly.
package groups

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/apich238/cayleybfs/cayley"
)

// LRX returns the left cyclic shift, the right cyclic shift and the swap of
// the first two positions, named "L", "R" and "X".
func LRX(n int) (cayley.GraphDef, error) {
	if n < 2 {
		return cayley.GraphDef{}, errors.Errorf("groups: lrx requires n >= 2, got %d", n)
	}
	gens := [][]int{shiftLeft(n), shiftRight(n), swapFirstTwo(n)}
	return cayley.NewNamedGraphDef(gens, []string{"L", "R", "X"})
}

// TopSpin returns the two cyclic shifts plus the reversal of the first four
// positions, named "L", "R" and "T".
func TopSpin(n int) (cayley.GraphDef, error) {
	if n < 4 {
		return cayley.GraphDef{}, errors.Errorf("groups: top_spin requires n >= 4, got %d", n)
	}
	rev := identity(n)
	rev[0], rev[1], rev[2], rev[3] = 3, 2, 1, 0
	gens := [][]int{shiftLeft(n), shiftRight(n), rev}
	return cayley.NewNamedGraphDef(gens, []string{"L", "R", "T"})
}

// AllTranspositions returns all n*(n-1)/2 transpositions with default
// comma-joined names.
func AllTranspositions(n int) (cayley.GraphDef, error) {
	if n < 2 {
		return cayley.GraphDef{}, errors.Errorf("groups: all_transpositions requires n >= 2, got %d", n)
	}
	var gens [][]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := identity(n)
			p[i], p[j] = j, i
			gens = append(gens, p)
		}
	}
	return cayley.NewGraphDef(gens)
}

// Pancake returns the prefix reversals of length 2..n, named "R2".."Rn".
// Every reversal is its own inverse.
func Pancake(n int) (cayley.GraphDef, error) {
	if n < 2 {
		return cayley.GraphDef{}, errors.Errorf("groups: pancake requires n >= 2, got %d", n)
	}
	var gens [][]int
	var names []string
	for k := 2; k <= n; k++ {
		p := identity(n)
		for i := 0; i < k; i++ {
			p[i] = k - 1 - i
		}
		gens = append(gens, p)
		names = append(names, "R"+strconv.Itoa(k))
	}
	return cayley.NewNamedGraphDef(gens, names)
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func shiftLeft(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = (i + 1) % n
	}
	return p
}

func shiftRight(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = (i + n - 1) % n
	}
	return p
}

func swapFirstTwo(n int) []int {
	p := identity(n)
	p[0], p[1] = 1, 0
	return p
}
