//go:build arm64

package rs16fec

import "github.com/klauspost/cpuid/v2"

func init() {
	if cpuid.CPU.Supports(cpuid.ASIMD) {
		activeBackend = backendNEON
		encodeNibbleFn = EncodeNibbleNEON
		encodeDualNibbleFn = EncodeDualNibbleNEON
	}
}

// EncodeNibbleNEON is the NEON-structured encoder backend: vtbl2-style
// table lookups against the two halves of gfExp/gfLog, expressed portably
// (see DESIGN.md C6 — no hand-written assembly in this module).
// Bit-identical to EncodeNibbleScalar for every input (spec.md §8 P5).
func EncodeNibbleNEON(model *CodeModel, data [NumData]byte) [NumParity]byte {
	return vectorEncodeNibble(model, data)
}

// EncodeDualNibbleNEON is the NEON-structured dual-nibble encoder backend.
func EncodeDualNibbleNEON(model *CodeModel, data [NumData]byte) [NumParity]byte {
	return vectorEncodeDualNibble(model, data)
}

// vectorEncodeNibble implements the SIMD strategy of spec.md §4.4: form a
// zero mask, translate to exponent space via table lookup, add the
// broadcast coefficient mod 15 with an explicit overflow mask, translate
// back, and reduce with a horizontal XOR.
func vectorEncodeNibble(model *CodeModel, data [NumData]byte) [NumParity]byte {
	var dExp [NumData]byte
	var zeroMask [NumData]bool
	for j, d := range data {
		zeroMask[j] = d != 0
		if zeroMask[j] {
			dExp[j] = gfExp[d]
		}
	}

	var parity [NumParity]byte
	for i := 0; i < NumParity; i++ {
		coefRow := model.PExp[i]
		var lanes [NumData]byte
		for j := 0; j < NumData; j++ {
			if !zeroMask[j] {
				continue
			}
			sum := int(dExp[j]) + int(coefRow[j])
			if sum >= 15 {
				sum -= 15
			}
			lanes[j] = gfLog[sum]
		}
		var acc byte
		for _, v := range lanes {
			acc ^= v
		}
		parity[i] = acc
	}
	return parity
}

func vectorEncodeDualNibble(model *CodeModel, data [NumData]byte) [NumParity]byte {
	var upper, lower [NumData]byte
	for i, b := range data {
		upper[i] = b >> 4
		lower[i] = b & 0x0F
	}
	pu := vectorEncodeNibble(model, upper)
	pl := vectorEncodeNibble(model, lower)

	var parity [NumParity]byte
	for i := range parity {
		parity[i] = (pu[i] << 4) | (pl[i] & 0x0F)
	}
	return parity
}
