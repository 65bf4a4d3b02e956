package rs16fec

// backend identifies which vectorised code path is active for encode/decode
// in this process. Exactly one is selected, at package init time, by a
// per-arch file probing CPU capabilities with klauspost/cpuid/v2 — the same
// shape as reedsolomon/options.go's defaultOptions flags
// (useAVX2/useAVX512/useNEON), just collapsed to a single selector since
// this codec has no per-call option surface to layer the choice onto.
type backend int

const (
	backendScalar backend = iota
	backendNEON
	backendAVX2
	backendAVX512
)

func (b backend) String() string {
	switch b {
	case backendNEON:
		return "NEON"
	case backendAVX2:
		return "AVX2"
	case backendAVX512:
		return "AVX512"
	default:
		return "scalar"
	}
}

var activeBackend = backendScalar

type encodeFunc func(model *CodeModel, data [NumData]byte) [NumParity]byte
type decodeFunc func(table *PatternTable, received [CodewordLen]byte, erasures []int) ([NumData]byte, error)

// encodeNibbleFn/encodeDualNibbleFn/decodeNibbleFn/decodeDualNibbleFn are the
// currently active backend entry points. They default to the portable
// scalar reference and are overridden by an arch-specific init() (see
// encode_amd64.go, encode_neon_arm64.go, decode_amd64.go,
// decode_neon_arm64.go) when the CPU reports the matching capability.
var (
	encodeNibbleFn     encodeFunc = EncodeNibbleScalar
	encodeDualNibbleFn encodeFunc = EncodeDualNibbleScalar
	decodeNibbleFn     decodeFunc = DecodeNibbleTableScalar
	decodeDualNibbleFn decodeFunc = DecodeDualNibbleScalar
)

// ActiveBackend reports which ISA-structured code path this process
// selected at startup, e.g. "AVX2" or "scalar" — mirrors
// options.cpuOptions()'s human-readable rendering of the active
// instruction sets in reedsolomon.
func ActiveBackend() string {
	return activeBackend.String()
}
