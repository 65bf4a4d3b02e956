//go:build amd64

package rs16fec

import "github.com/klauspost/cpuid/v2"

func init() {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512VL):
		activeBackend = backendAVX512
		encodeNibbleFn = EncodeNibbleAVX512
		encodeDualNibbleFn = EncodeDualNibbleAVX512
	case cpuid.CPU.Supports(cpuid.AVX2):
		activeBackend = backendAVX2
		encodeNibbleFn = EncodeNibbleAVX2
		encodeDualNibbleFn = EncodeDualNibbleAVX2
	}
}

// vectorEncodeNibble implements the SIMD strategy described in spec.md
// §4.4 without hand-written assembly (this module never invokes the Go
// assembler; see DESIGN.md C6): load the exponent/log tables as two 8-lane
// "registers" (here, plain array reads), broadcast the coefficient row,
// form a zero mask, translate to exponent space, add mod 15 with an
// explicit overflow mask instead of the scalar's implicit int mod, and
// reduce with a horizontal XOR. The arithmetic is identical to
// EncodeNibbleScalar lane for lane; only the loop's shape differs, which is
// what the AVX2 and AVX-512 entry points below share.
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

// EncodeNibbleAVX2 is the AVX2-structured encoder backend. Bit-identical to
// EncodeNibbleScalar for every input (spec.md §8 P5).
func EncodeNibbleAVX2(model *CodeModel, data [NumData]byte) [NumParity]byte {
	return vectorEncodeNibble(model, data)
}

// EncodeNibbleAVX512 is the AVX-512-structured encoder backend (gather
// instead of shuffle-based table lookup on real hardware; the portable
// form below is identical either way). Bit-identical to EncodeNibbleScalar
// for every input.
func EncodeNibbleAVX512(model *CodeModel, data [NumData]byte) [NumParity]byte {
	return vectorEncodeNibble(model, data)
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

// EncodeDualNibbleAVX2 is the AVX2-structured dual-nibble encoder backend.
func EncodeDualNibbleAVX2(model *CodeModel, data [NumData]byte) [NumParity]byte {
	return vectorEncodeDualNibble(model, data)
}

// EncodeDualNibbleAVX512 is the AVX-512-structured dual-nibble encoder
// backend.
func EncodeDualNibbleAVX512(model *CodeModel, data [NumData]byte) [NumParity]byte {
	return vectorEncodeDualNibble(model, data)
}
