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

// Package dataset serves pre-computed growth sequences for small graphs.
// Tests compare BFS layer sizes against these tables.
package dataset

import (
	_ "embed"
	"encoding/json"

	"github.com/pkg/errors"
)

//go:embed growth.json
var growthJSON []byte

// Load returns the named growth dataset: a map from graph key (state length
// or central state) to the expected layer sizes.
func Load(name string) (map[string][]int, error) {
	var all map[string]map[string][]int
	if err := json.Unmarshal(growthJSON, &all); err != nil {
		return nil, errors.Wrap(err, "dataset: corrupt growth table")
	}
	ds, ok := all[name]
	if !ok {
		return nil, errors.Errorf("dataset: unknown dataset %q", name)
	}
	return ds, nil
}
