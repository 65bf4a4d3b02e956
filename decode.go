package rs16fec

import "sort"

// substitute builds the 8-symbol vector R*: received[r] for positions not
// in erasures, and the k-th parity symbol (received[8+k]) for the k-th
// erased position in sorted order (spec.md §4.6 step 2). erasures need not
// be sorted on input.
func substitute(received [CodewordLen]byte, erasures []int) (r [NumData]byte, sorted []int) {
	sorted = append([]int(nil), erasures...)
	sort.Ints(sorted)

	erasedAt := make(map[int]int, len(sorted))
	for k, pos := range sorted {
		erasedAt[pos] = k
	}
	for pos := 0; pos < NumData; pos++ {
		if k, ok := erasedAt[pos]; ok {
			r[pos] = received[NumData+k]
		} else {
			r[pos] = received[pos]
		}
	}
	return r, sorted
}

// DecodeNibbleReference is the on-the-fly decoder (spec.md §4.6, C8): it
// builds and inverts the substitution matrix on every call instead of
// consulting a PatternTable. It exists so the table-lookup decoder can be
// cross-checked against a path that does not share any precomputed state,
// and so a caller without a PatternTable handle can still decode.
//
// Fails with ErrTooManyErasures if more than 2 positions are erased, or
// ErrSingular if the erasure set has no valid substitution (unreachable
// for this module's Cauchy-derived code, but checked defensively). On
// failure data is left unchanged.
func DecodeNibbleReference(model *CodeModel, received [CodewordLen]byte, erasures []int) (data [NumData]byte, err error) {
	if len(erasures) > 2 {
		return data, ErrTooManyErasures
	}
	if len(erasures) > NumData {
		return data, ErrOutOfRange
	}

	sorted := append([]int(nil), erasures...)
	sort.Ints(sorted)

	g := substitutionMatrix(model, sorted)
	inv, ierr := g.invert()
	if ierr != nil {
		return data, ierr
	}

	rStar, _ := substitute(received, sorted)
	var out [NumData]byte
	inv.multiplyVector(rStar[:], out[:])
	return out, nil
}

// DecodeNibbleTableScalar is the production table-lookup decoder (spec.md
// §4.6): it looks up the precomputed inverse for this erasure set instead
// of inverting a matrix per call. On success data holds the original
// input. On failure (ErrTooManyErasures, ErrPatternMissing) data is
// unchanged.
//
// The decoder never reads received at the erased positions when computing
// the substitution vector (spec.md §8 P8): those bytes are ignored in
// favour of the corresponding parity symbol.
func DecodeNibbleTableScalar(table *PatternTable, received [CodewordLen]byte, erasures []int) (data [NumData]byte, err error) {
	entry, lerr := table.lookup(erasures)
	if lerr != nil {
		return data, lerr
	}

	rStar, sorted := substitute(received, erasures)
	_ = sorted

	var out [NumData]byte
	entry.inv.multiplyVector(rStar[:], out[:])
	return out, nil
}

// DecodeDualNibbleScalar decodes a dual-nibble codeword (spec.md §4.7):
// each byte of received (and the sentinel bytes at erased positions) packs
// two independent nibble streams, decoded independently and recombined as
// byte = (upper<<4) | (lower&0xF).
func DecodeDualNibbleScalar(table *PatternTable, received [CodewordLen]byte, erasures []int) (data [NumData]byte, err error) {
	var upper, lower [CodewordLen]byte
	for i, b := range received {
		upper[i] = b >> 4
		lower[i] = b & 0x0F
	}

	du, uerr := DecodeNibbleTableScalar(table, upper, erasures)
	if uerr != nil {
		return data, uerr
	}
	dl, lerr := DecodeNibbleTableScalar(table, lower, erasures)
	if lerr != nil {
		return data, lerr
	}

	var out [NumData]byte
	for i := range out {
		out[i] = (du[i] << 4) | (dl[i] & 0x0F)
	}
	return out, nil
}

// DecodeNibble decodes using the ISA backend selected for this process.
// Bit-identical to DecodeNibbleTableScalar for every (received, erasures)
// pair (spec.md §8 P7).
func DecodeNibble(table *PatternTable, received [CodewordLen]byte, erasures []int) (data [NumData]byte, err error) {
	return decodeNibbleFn(table, received, erasures)
}

// DecodeDualNibble decodes using the ISA backend selected for this
// process. Bit-identical to DecodeDualNibbleScalar for every input.
func DecodeDualNibble(table *PatternTable, received [CodewordLen]byte, erasures []int) (data [NumData]byte, err error) {
	return decodeDualNibbleFn(table, received, erasures)
}
