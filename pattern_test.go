package rs16fec

import "testing"

func TestInitPatternTableHas37Entries(t *testing.T) {
	model := InitModel()
	table := InitPatternTable(model)
	if len(table.entries) != 37 {
		t.Fatalf("pattern table has %d entries, want 37", len(table.entries))
	}
}

func TestInitPatternTableAllEntriesValid(t *testing.T) {
	model := InitModel()
	table := InitPatternTable(model)
	for _, e := range table.entries {
		if !e.valid {
			t.Fatalf("entry %v marked invalid; the Cauchy parity matrix is MDS so every pattern up to 2 erasures must invert", e.positions[:e.count])
		}
	}
}

func TestInitPatternTableEmptyEntryIsIdentity(t *testing.T) {
	model := InitModel()
	table := InitPatternTable(model)
	entry, err := table.lookup(nil)
	if err != nil {
		t.Fatalf("lookup(nil) unexpected error: %v", err)
	}
	for r := 0; r < NumData; r++ {
		for c := 0; c < NumData; c++ {
			want := byte(0)
			if r == c {
				want = 1
			}
			if entry.inv[r][c] != want {
				t.Fatalf("empty-pattern inverse[%d][%d] = %d, want %d", r, c, entry.inv[r][c], want)
			}
		}
	}
}

func TestPatternTableLookupOrderIndependent(t *testing.T) {
	model := InitModel()
	table := InitPatternTable(model)
	a, err := table.lookup([]int{1, 5})
	if err != nil {
		t.Fatalf("lookup({1,5}) unexpected error: %v", err)
	}
	b, err := table.lookup([]int{5, 1})
	if err != nil {
		t.Fatalf("lookup({5,1}) unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("lookup order changed the matched entry")
	}
}

func TestPatternTableLookupTooMany(t *testing.T) {
	model := InitModel()
	table := InitPatternTable(model)
	if _, err := table.lookup([]int{0, 1, 2}); err != ErrTooManyErasures {
		t.Fatalf("lookup({0,1,2}) error = %v, want ErrTooManyErasures", err)
	}
}

func TestPatternTableLookupMissing(t *testing.T) {
	model := InitModel()
	table := InitPatternTable(model)
	if _, err := table.lookup([]int{9}); err != ErrPatternMissing {
		t.Fatalf("lookup({9}) error = %v, want ErrPatternMissing", err)
	}
}

func TestSubstitutionMatrixRowsMatchPattern(t *testing.T) {
	model := InitModel()
	g := substitutionMatrix(model, []int{2, 5})
	for r := 0; r < NumData; r++ {
		switch r {
		case 2:
			for c := 0; c < NumData; c++ {
				if g[r][c] != model.P[0][c] {
					t.Fatalf("row 2 should be parity row 0")
				}
			}
		case 5:
			for c := 0; c < NumData; c++ {
				if g[r][c] != model.P[1][c] {
					t.Fatalf("row 5 should be parity row 1")
				}
			}
		default:
			for c := 0; c < NumData; c++ {
				want := byte(0)
				if r == c {
					want = 1
				}
				if g[r][c] != want {
					t.Fatalf("row %d should be identity row", r)
				}
			}
		}
	}
}
