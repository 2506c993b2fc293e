package groups

import (
	"testing"
)

func TestLRXGenerators(t *testing.T) {
	def, err := LRX(4)
	if err != nil {
		t.Fatalf("LRX returned error: %v", err)
	}

	names := def.GeneratorNames()
	if len(names) != 3 || names[0] != "L" || names[1] != "R" || names[2] != "X" {
		t.Fatalf("unexpected generator names: %v", names)
	}

	gens := def.Generators()
	want := [][]int{{1, 2, 3, 0}, {3, 0, 1, 2}, {1, 0, 2, 3}}
	for gi := range want {
		for i := range want[gi] {
			if gens[gi][i] != want[gi][i] {
				t.Fatalf("generator %d is %v, want %v", gi, gens[gi], want[gi])
			}
		}
	}
	if !def.InverseClosed() {
		t.Fatalf("lrx generators must be inverse-closed")
	}
}

func TestTopSpinGenerators(t *testing.T) {
	def, err := TopSpin(6)
	if err != nil {
		t.Fatalf("TopSpin returned error: %v", err)
	}
	gens := def.Generators()
	wantRev := []int{3, 2, 1, 0, 4, 5}
	for i := range wantRev {
		if gens[2][i] != wantRev[i] {
			t.Fatalf("reversal generator is %v, want %v", gens[2], wantRev)
		}
	}
	if !def.InverseClosed() {
		t.Fatalf("top_spin generators must be inverse-closed")
	}
}

func TestAllTranspositionsCount(t *testing.T) {
	for _, n := range []int{2, 4, 7} {
		def, err := AllTranspositions(n)
		if err != nil {
			t.Fatalf("AllTranspositions(%d) returned error: %v", n, err)
		}
		if got, want := len(def.Generators()), n*(n-1)/2; got != want {
			t.Fatalf("AllTranspositions(%d) has %d generators, want %d", n, got, want)
		}
		if !def.InverseClosed() {
			t.Fatalf("transpositions must be inverse-closed")
		}
	}
}

func TestPancakeGenerators(t *testing.T) {
	def, err := Pancake(5)
	if err != nil {
		t.Fatalf("Pancake returned error: %v", err)
	}
	if got := len(def.Generators()); got != 4 {
		t.Fatalf("Pancake(5) has %d generators, want 4", got)
	}
	names := def.GeneratorNames()
	if names[0] != "R2" || names[3] != "R5" {
		t.Fatalf("unexpected pancake names: %v", names)
	}
	if !def.InverseClosed() {
		t.Fatalf("prefix reversals must be inverse-closed")
	}
}

func TestFamilyBounds(t *testing.T) {
	if _, err := LRX(1); err == nil {
		t.Fatalf("LRX(1) expected error")
	}
	if _, err := TopSpin(3); err == nil {
		t.Fatalf("TopSpin(3) expected error")
	}
	if _, err := AllTranspositions(1); err == nil {
		t.Fatalf("AllTranspositions(1) expected error")
	}
	if _, err := Pancake(1); err == nil {
		t.Fatalf("Pancake(1) expected error")
	}
}

func TestPrepareValid(t *testing.T) {
	tests := []struct {
		name string
		id   string
		n    int
		gens int
	}{
		{name: "LRX", id: "lrx_8", n: 8, gens: 3},
		{name: "TopSpin", id: "top_spin_12", n: 12, gens: 3},
		{name: "AllTranspositions", id: "all_transpositions_6", n: 6, gens: 15},
		{name: "Pancake", id: "pancake_5", n: 5, gens: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Prepare(tt.id)
			if err != nil {
				t.Fatalf("Prepare(%q) unexpected error: %v", tt.id, err)
			}
			if def.N() != tt.n {
				t.Fatalf("expected n %d, got %d", tt.n, def.N())
			}
			if len(def.Generators()) != tt.gens {
				t.Fatalf("expected %d generators, got %d", tt.gens, len(def.Generators()))
			}
		})
	}
}

func TestPrepareInvalid(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "MissingSize", id: "lrx"},
		{name: "UnknownFamily", id: "rubik_3"},
		{name: "Garbage", id: "lrx-8"},
		{name: "TooSmall", id: "top_spin_2"},
		{name: "Empty", id: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Prepare(tt.id); err == nil {
				t.Fatalf("Prepare(%q) expected error", tt.id)
			}
		})
	}
}
