package rs16fec

// LayoutToBlocked converts n codewords of stripeWidth symbols each from
// vector-major (codeword-major) order into the block-transposed layout
// spec.md §4.8 describes: codewords are grouped into blocks of up to
// blockSize, and within each block the stripeWidth-many symbol columns are
// stored contiguously (all of symbol 0 across the block, then all of
// symbol 1, and so on). The tail block, if n is not a multiple of
// blockSize, is sized n - floor(n/blockSize)*blockSize and is not padded.
//
// src must have length n*stripeWidth; dst must have the same length (the
// transform only reorders bytes, it never changes their count).
func LayoutToBlocked(src, dst []byte, n, blockSize, stripeWidth int) error {
	if blockSize <= 0 || stripeWidth <= 0 || n < 0 {
		return ErrOutOfRange
	}
	if len(src) != n*stripeWidth || len(dst) != n*stripeWidth {
		return ErrBadLength
	}

	srcOff, dstOff := 0, 0
	for processed := 0; processed < n; {
		b := blockSize
		if n-processed < b {
			b = n - processed
		}
		for s := 0; s < stripeWidth; s++ {
			col := dst[dstOff+s*b : dstOff+s*b+b]
			for c := 0; c < b; c++ {
				col[c] = src[srcOff+c*stripeWidth+s]
			}
		}
		srcOff += b * stripeWidth
		dstOff += b * stripeWidth
		processed += b
	}
	return nil
}

// LayoutFromBlocked is the inverse of LayoutToBlocked: it converts a
// block-transposed buffer back into vector-major order.
func LayoutFromBlocked(src, dst []byte, n, blockSize, stripeWidth int) error {
	if blockSize <= 0 || stripeWidth <= 0 || n < 0 {
		return ErrOutOfRange
	}
	if len(src) != n*stripeWidth || len(dst) != n*stripeWidth {
		return ErrBadLength
	}

	srcOff, dstOff := 0, 0
	for processed := 0; processed < n; {
		b := blockSize
		if n-processed < b {
			b = n - processed
		}
		for s := 0; s < stripeWidth; s++ {
			col := src[srcOff+s*b : srcOff+s*b+b]
			for c := 0; c < b; c++ {
				dst[dstOff+c*stripeWidth+s] = col[c]
			}
		}
		srcOff += b * stripeWidth
		dstOff += b * stripeWidth
		processed += b
	}
	return nil
}
