//go:build amd64

package rs16fec

import "github.com/klauspost/cpuid/v2"

func init() {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512VL):
		decodeNibbleFn = DecodeNibbleAVX512
		decodeDualNibbleFn = DecodeDualNibbleAVX512
	case cpuid.CPU.Supports(cpuid.AVX2):
		decodeNibbleFn = DecodeNibbleAVX2
		decodeDualNibbleFn = DecodeDualNibbleAVX2
	}
}

// vectorDecodeTable computes D = I* . R* the same way the scalar
// table-lookup decoder does, but with the inner product laid out as 8
// independent lane multiplies (one gfMul per column) followed by a
// horizontal XOR reduction, matching spec.md §4.6's "8 gf-multiplies and a
// horizontal XOR reduction" description of the per-row SIMD decode.
func vectorDecodeTable(table *PatternTable, received [CodewordLen]byte, erasures []int) (data [NumData]byte, err error) {
	entry, lerr := table.lookup(erasures)
	if lerr != nil {
		return data, lerr
	}
	rStar, _ := substitute(received, erasures)

	var out [NumData]byte
	for i := 0; i < NumData; i++ {
		row := entry.inv[i]
		var lanes [NumData]byte
		for j := 0; j < NumData; j++ {
			lanes[j] = gfMul(row[j], rStar[j])
		}
		var acc byte
		for _, v := range lanes {
			acc ^= v
		}
		out[i] = acc
	}
	return out, nil
}

// DecodeNibbleAVX2 is the AVX2-structured table-lookup decoder backend.
// Bit-identical to DecodeNibbleTableScalar for every input (spec.md §8 P7).
func DecodeNibbleAVX2(table *PatternTable, received [CodewordLen]byte, erasures []int) ([NumData]byte, error) {
	return vectorDecodeTable(table, received, erasures)
}

// DecodeNibbleAVX512 is the AVX-512-structured table-lookup decoder
// backend.
func DecodeNibbleAVX512(table *PatternTable, received [CodewordLen]byte, erasures []int) ([NumData]byte, error) {
	return vectorDecodeTable(table, received, erasures)
}

func vectorDecodeDualNibble(table *PatternTable, received [CodewordLen]byte, erasures []int) (data [NumData]byte, err error) {
	var upper, lower [CodewordLen]byte
	for i, b := range received {
		upper[i] = b >> 4
		lower[i] = b & 0x0F
	}

	du, uerr := vectorDecodeTable(table, upper, erasures)
	if uerr != nil {
		return data, uerr
	}
	dl, lerr := vectorDecodeTable(table, lower, erasures)
	if lerr != nil {
		return data, lerr
	}

	var out [NumData]byte
	for i := range out {
		out[i] = (du[i] << 4) | (dl[i] & 0x0F)
	}
	return out, nil
}

// DecodeDualNibbleAVX2 is the AVX2-structured dual-nibble decoder backend.
func DecodeDualNibbleAVX2(table *PatternTable, received [CodewordLen]byte, erasures []int) ([NumData]byte, error) {
	return vectorDecodeDualNibble(table, received, erasures)
}

// DecodeDualNibbleAVX512 is the AVX-512-structured dual-nibble decoder
// backend.
func DecodeDualNibbleAVX512(table *PatternTable, received [CodewordLen]byte, erasures []int) ([NumData]byte, error) {
	return vectorDecodeDualNibble(table, received, erasures)
}
