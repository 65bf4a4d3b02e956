package rs16fec

// EncodeNibbleScalar computes the 2 parity symbols for 8 data symbols using
// the portable reference algorithm (spec.md §4.4). Every entry of data must
// be in 0..15; the caller is expected to mask, not this function — masking
// is cheap and explicit at the boundary, per spec.md §6.
//
// Never fails. Systematic: data is not modified, and is not reflected in
// the return value (callers already have it).
func EncodeNibbleScalar(model *CodeModel, data [NumData]byte) [NumParity]byte {
	var parity [NumParity]byte
	for i := 0; i < NumParity; i++ {
		var p byte
		row := model.PExp[i]
		for j := 0; j < NumData; j++ {
			d := data[j]
			if d == 0 {
				continue
			}
			e := (int(gfExp[d]) + int(row[j])) % 15
			p ^= gfLog[e]
		}
		parity[i] = p
	}
	return parity
}

// EncodeDualNibbleScalar packs two independent RS(10,8) codewords into the
// upper and lower nibbles of each byte (spec.md §4.7). Each byte of data
// holds byte = (upper<<4) | (lower&0xF); the returned parity bytes are
// packed the same way. The two nibble streams are encoded independently
// and share only the code model.
func EncodeDualNibbleScalar(model *CodeModel, data [NumData]byte) [NumParity]byte {
	var upper, lower [NumData]byte
	for i, b := range data {
		upper[i] = b >> 4
		lower[i] = b & 0x0F
	}

	pu := EncodeNibbleScalar(model, upper)
	pl := EncodeNibbleScalar(model, lower)

	var parity [NumParity]byte
	for i := range parity {
		parity[i] = (pu[i] << 4) | (pl[i] & 0x0F)
	}
	return parity
}

// EncodeNibble encodes using the ISA backend selected for this process
// (scalar, NEON, AVX2, or AVX-512); see isa.go. Bit-identical to
// EncodeNibbleScalar for every input (spec.md §8 P5).
func EncodeNibble(model *CodeModel, data [NumData]byte) [NumParity]byte {
	return encodeNibbleFn(model, data)
}

// EncodeDualNibble encodes using the ISA backend selected for this
// process. Bit-identical to EncodeDualNibbleScalar for every input.
func EncodeDualNibble(model *CodeModel, data [NumData]byte) [NumParity]byte {
	return encodeDualNibbleFn(model, data)
}
