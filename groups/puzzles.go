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

package groups

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"github.com/apich238/cayleybfs/cayley"
)

// families maps identifier prefixes to their constructor functions. Using a map
// simplifies the code and makes adding new families easier.
var families = map[string]func(n int) (cayley.GraphDef, error){
	"lrx":                LRX,
	"top_spin":           TopSpin,
	"all_transpositions": AllTranspositions,
	"pancake":            Pancake,
}

// Prepare resolves a puzzle identifier of the form "<family>_<n>", e.g.
// "lrx_8" or "top_spin_12", into a graph definition.
func Prepare(id string) (cayley.GraphDef, error) {
	idMatcher := regexp.MustCompile(`^([a-z_]+)_([0-9]+)$`)
	matches := idMatcher.FindStringSubmatch(id)
	if len(matches) != 3 {
		return cayley.GraphDef{}, errors.Errorf("groups: malformed puzzle identifier:%v", id)
	}

	build, ok := families[matches[1]]
	if !ok {
		return cayley.GraphDef{}, errors.Errorf("groups: unknown family %q in identifier %q", matches[1], id)
	}

	n, err := strconv.Atoi(matches[2])
	if err != nil {
		return cayley.GraphDef{}, err
	}
	return build(n)
}
