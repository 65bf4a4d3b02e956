//go:build amd64

package rs16fec

import (
	"math/rand"
	"testing"
)

func TestDecodeAVXBackendsMatchScalar(t *testing.T) {
	model := InitModel()
	table := InitPatternTable(model)
	r := rand.New(rand.NewSource(72))

	for _, erasures := range allErasureSets() {
		var data [NumData]byte
		for i := range data {
			data[i] = byte(r.Intn(16))
		}
		parity := EncodeNibbleScalar(model, data)
		received := buildReceived(data, parity)

		want, werr := DecodeNibbleTableScalar(table, received, erasures)
		if got, err := DecodeNibbleAVX2(table, received, erasures); err != werr || got != want {
			t.Fatalf("erasures %v: DecodeNibbleAVX2 = (%v,%v), want (%v,%v)", erasures, got, err, want, werr)
		}
		if got, err := DecodeNibbleAVX512(table, received, erasures); err != werr || got != want {
			t.Fatalf("erasures %v: DecodeNibbleAVX512 = (%v,%v), want (%v,%v)", erasures, got, err, want, werr)
		}
	}
}

func TestDecodeDualNibbleAVXBackendsMatchScalar(t *testing.T) {
	model := InitModel()
	table := InitPatternTable(model)
	data := [NumData]byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}
	parity := EncodeDualNibbleScalar(model, data)
	received := buildReceived(data, parity)
	erasures := []int{4}

	want, werr := DecodeDualNibbleScalar(table, received, erasures)
	if got, err := DecodeDualNibbleAVX2(table, received, erasures); err != werr || got != want {
		t.Fatalf("DecodeDualNibbleAVX2 = (%v,%v), want (%v,%v)", got, err, want, werr)
	}
	if got, err := DecodeDualNibbleAVX512(table, received, erasures); err != werr || got != want {
		t.Fatalf("DecodeDualNibbleAVX512 = (%v,%v), want (%v,%v)", got, err, want, werr)
	}
}
