package rs16fec

// Fixed code shape: RS(10,8) over GF(16). spec.md §9 notes that at least one
// source header carries a wider p=6/k=14 constant alongside code that only
// ever uses the first two parity columns; this module only ever models the
// concrete RS(10,8) code, so no such unused width is carried here.
const (
	// NumData is the number of data symbols per codeword (n in spec.md §4.3).
	NumData = 8
	// NumParity is the number of parity symbols per codeword (p in spec.md §4.3).
	NumParity = 2
	// CodewordLen is the total codeword length (k in spec.md §4.3).
	CodewordLen = NumData + NumParity
)

// CodeModel holds the generator matrix, the parity submatrix, and the
// parity submatrix in exponent space. It is built once and is safe for
// concurrent read-only use by any number of callers thereafter (spec.md §5).
type CodeModel struct {
	// G is the 8x10 systematic generator matrix [I | P].
	G matrix
	// P is the 2x8 parity submatrix: P[i][j] is the coefficient multiplying
	// data symbol j to contribute to parity row i.
	P matrix
	// PExp is P with every entry replaced by its discrete logarithm
	// (gfExp[P[i][j]]), letting the encoder turn a multiply into an
	// exponent-space add plus one table lookup.
	PExp matrix
}

// parityMatrix returns the 2x8 Cauchy-style parity submatrix used by this
// code: P[i][j] = inv(x_i XOR y_j), with y_j = j for j in 0..7 and
// x_i = 8+i for i in 0..1. Every square submatrix of a Cauchy matrix is
// invertible, which is exactly the MDS property spec.md §4.5 relies on to
// guarantee every recognised erasure pattern has a valid inverse.
func parityMatrix() matrix {
	p := newMatrix(NumParity, NumData)
	for i := 0; i < NumParity; i++ {
		x := byte(NumData + i)
		for j := 0; j < NumData; j++ {
			y := byte(j)
			v, err := gfInv(gfAdd(x, y))
			if err != nil {
				// x and y are always distinct by construction (x >= 8, y <= 7),
				// so x^y is never zero and this path is unreachable.
				panic("rs16fec: degenerate Cauchy parity construction")
			}
			p[i][j] = v
		}
	}
	return p
}

// InitModel builds the RS(10,8) code model: the systematic generator
// matrix, its parity submatrix, and the parity submatrix in exponent
// space. It has no external state and can be called any number of times;
// callers typically call it once at startup and share the result.
func InitModel() *CodeModel {
	p := parityMatrix()

	pExp := newMatrix(NumParity, NumData)
	for i := 0; i < NumParity; i++ {
		for j := 0; j < NumData; j++ {
			pExp[i][j] = gfExp[p[i][j]]
		}
	}

	g := newMatrix(NumData, CodewordLen)
	for r := 0; r < NumData; r++ {
		g[r][r] = 1
		for i := 0; i < NumParity; i++ {
			g[r][NumData+i] = p[i][r]
		}
	}

	return &CodeModel{G: g, P: p, PExp: pExp}
}
