//go:build arm64

package rs16fec

import "github.com/klauspost/cpuid/v2"

func init() {
	if cpuid.CPU.Supports(cpuid.ASIMD) {
		decodeNibbleFn = DecodeNibbleNEON
		decodeDualNibbleFn = DecodeDualNibbleNEON
	}
}

// vectorDecodeTable computes D = I* . R* with the per-row inner product
// laid out as 8 independent lane multiplies and a horizontal XOR
// reduction, matching spec.md §4.6's description of the SIMD decode.
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

// DecodeNibbleNEON is the NEON-structured table-lookup decoder backend.
// Bit-identical to DecodeNibbleTableScalar for every input (spec.md §8 P7).
func DecodeNibbleNEON(table *PatternTable, received [CodewordLen]byte, erasures []int) ([NumData]byte, error) {
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

// DecodeDualNibbleNEON is the NEON-structured dual-nibble decoder backend.
func DecodeDualNibbleNEON(table *PatternTable, received [CodewordLen]byte, erasures []int) ([NumData]byte, error) {
	return vectorDecodeDualNibble(table, received, erasures)
}
