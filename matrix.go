package rs16fec

// matrix is a dense n x n (or n x m) matrix over GF(16), one symbol per
// byte, row-major. Only the low nibble of each entry is meaningful.
type matrix [][]byte

// newMatrix allocates a rows x cols matrix with all entries zeroed.
func newMatrix(rows, cols int) matrix {
	m := make(matrix, rows)
	buf := make([]byte, rows*cols)
	for r := range m {
		m[r] = buf[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return m
}

// identity returns the n x n identity matrix over GF(16).
func identity(n int) matrix {
	m := newMatrix(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

func (m matrix) rows() int { return len(m) }
func (m matrix) cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// clone returns a deep copy of m.
func (m matrix) clone() matrix {
	out := newMatrix(m.rows(), m.cols())
	for r := range m {
		copy(out[r], m[r])
	}
	return out
}

// invert computes the inverse of a square matrix over GF(16) via
// Gauss-Jordan elimination on the augmented matrix [M | I], per spec.md
// §4.2. Pivot selection is deterministic: the first non-zero row
// encountered scanning top-down, so the result is reproducible across
// builds. Returns ErrSingular if no inverse exists.
func (m matrix) invert() (matrix, error) {
	n := m.rows()
	if n == 0 || n != m.cols() {
		return nil, ErrOutOfRange
	}

	work := m.clone()
	inv := identity(n)

	for col := 0; col < n; col++ {
		pivotRow := -1
		for r := col; r < n; r++ {
			if work[r][col] != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			return nil, ErrSingular
		}
		if pivotRow != col {
			work[pivotRow], work[col] = work[col], work[pivotRow]
			inv[pivotRow], inv[col] = inv[col], inv[pivotRow]
		}

		pivotInv, err := gfInv(work[col][col])
		if err != nil {
			return nil, ErrSingular
		}
		scaleRow(work[col], pivotInv)
		scaleRow(inv[col], pivotInv)

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := work[r][col]
			if factor == 0 {
				continue
			}
			subtractScaledRow(work[r], work[col], factor)
			subtractScaledRow(inv[r], inv[col], factor)
		}
	}

	return inv, nil
}

// scaleRow multiplies every entry of row by c in place.
func scaleRow(row []byte, c byte) {
	for i := range row {
		row[i] = gfMul(row[i], c)
	}
}

// subtractScaledRow computes dst ^= factor * src (subtraction is XOR over
// GF(16), same as addition).
func subtractScaledRow(dst, src []byte, factor byte) {
	for i := range dst {
		dst[i] = gfSub(dst[i], gfMul(factor, src[i]))
	}
}

// multiplyVector computes dst[i] = XOR_j m[i][j] * v[j] for every row i.
func (m matrix) multiplyVector(v []byte, dst []byte) {
	for i := range m {
		var acc byte
		row := m[i]
		for j, coef := range row {
			if coef != 0 && v[j] != 0 {
				acc = gfSub(acc, gfMul(coef, v[j]))
			}
		}
		dst[i] = acc
	}
}
