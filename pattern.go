package rs16fec

import "sort"

// patternEntry is one recognised erasure pattern: its sorted positions, the
// count, the inverse of the substituted generator matrix, and whether
// inversion succeeded (spec.md §3 "Erasure-pattern table").
type patternEntry struct {
	positions [2]int // only positions[:count] are meaningful
	count     int
	inv       matrix
	valid     bool
}

// PatternTable is the set of pre-computed inverse matrices for every
// erasure set of size 0, 1, or 2 over 8 data positions: 1 + 8 + 28 = 37
// entries (spec.md §3). Built once from a CodeModel and safe for
// concurrent read-only use thereafter.
type PatternTable struct {
	entries []patternEntry
}

// substitutionMatrix builds the 8x8 matrix G* for an erasure set: row r is
// the identity row e_r if r is not erased, or parity row k of model.P if r
// is the k-th erased position in sorted order (spec.md §4.5).
func substitutionMatrix(model *CodeModel, positions []int) matrix {
	g := newMatrix(NumData, NumData)
	erased := make(map[int]int, len(positions))
	for k, pos := range positions {
		erased[pos] = k
	}
	for r := 0; r < NumData; r++ {
		if k, ok := erased[r]; ok {
			copy(g[r], model.P[k])
		} else {
			g[r][r] = 1
		}
	}
	return g
}

// InitPatternTable builds the erasure-pattern table for model: the empty
// pattern, all 8 single-erasure patterns, and all 28 two-erasure patterns.
// A pattern whose substitution matrix fails to invert is kept in the table
// marked invalid (defensive only — the Cauchy-derived parity matrix this
// module builds is MDS, so every pattern up to 2 erasures is invertible in
// practice; see DESIGN.md decision 4).
func InitPatternTable(model *CodeModel) *PatternTable {
	t := &PatternTable{}

	add := func(positions []int) {
		sorted := append([]int(nil), positions...)
		sort.Ints(sorted)

		e := patternEntry{count: len(sorted)}
		copy(e.positions[:], sorted)

		g := substitutionMatrix(model, sorted)
		inv, err := g.invert()
		if err == nil {
			e.inv = inv
			e.valid = true
		}
		t.entries = append(t.entries, e)
	}

	add(nil)
	for e := 0; e < NumData; e++ {
		add([]int{e})
	}
	for a := 0; a < NumData; a++ {
		for b := a + 1; b < NumData; b++ {
			add([]int{a, b})
		}
	}

	return t
}

// lookup finds the table entry matching erasures exactly (as a set,
// irrespective of input order). Returns ErrTooManyErasures if more than 2
// positions are given, ErrPatternMissing if no valid entry matches.
func (t *PatternTable) lookup(erasures []int) (*patternEntry, error) {
	if len(erasures) > 2 {
		return nil, ErrTooManyErasures
	}

	sorted := append([]int(nil), erasures...)
	sort.Ints(sorted)

	for i := range t.entries {
		e := &t.entries[i]
		if e.count != len(sorted) {
			continue
		}
		match := true
		for k := 0; k < e.count; k++ {
			if e.positions[k] != sorted[k] {
				match = false
				break
			}
		}
		if match {
			if !e.valid {
				return nil, ErrPatternMissing
			}
			return e, nil
		}
	}
	return nil, ErrPatternMissing
}
