package rs16fec

import (
	"math/rand"
	"testing"
)

func TestEncodeBatchBlockedMatchesPerCodewordScalar(t *testing.T) {
	model := InitModel()
	const n = 37 // deliberately not a multiple of any blockSize below, to exercise tail blocks
	r := rand.New(rand.NewSource(1))

	dataVector := make([]byte, n*NumData)
	for i := range dataVector {
		dataVector[i] = byte(r.Intn(16))
	}

	wantParity := make([]byte, n*NumParity)
	for c := 0; c < n; c++ {
		var d [NumData]byte
		copy(d[:], dataVector[c*NumData:(c+1)*NumData])
		p := EncodeNibbleScalar(model, d)
		copy(wantParity[c*NumParity:(c+1)*NumParity], p[:])
	}

	for _, blockSize := range []int{16, 32, 64} {
		dataBlocked := make([]byte, n*NumData)
		wantParityBlocked := make([]byte, n*NumParity)
		if err := LayoutToBlocked(dataVector, dataBlocked, n, blockSize, NumData); err != nil {
			t.Fatalf("LayoutToBlocked unexpected error: %v", err)
		}
		if err := LayoutToBlocked(wantParity, wantParityBlocked, n, blockSize, NumParity); err != nil {
			t.Fatalf("LayoutToBlocked(parity) unexpected error: %v", err)
		}

		parityBlocked := make([]byte, n*NumParity)
		if err := EncodeBatchBlocked(model, dataBlocked, parityBlocked, n, blockSize, nil); err != nil {
			t.Fatalf("EncodeBatchBlocked(blockSize=%d) unexpected error: %v", blockSize, err)
		}

		for i := range parityBlocked {
			if parityBlocked[i] != wantParityBlocked[i] {
				t.Fatalf("blockSize=%d byte %d = %d, want %d", blockSize, i, parityBlocked[i], wantParityBlocked[i])
			}
		}
	}
}

func TestDecodeBatchBlockedMatchesPerCodewordDecode(t *testing.T) {
	model := InitModel()
	table := InitPatternTable(model)
	const n = 1000
	erasures := []int{2, 5}
	r := rand.New(rand.NewSource(2))

	dataVector := make([]byte, n*NumData)
	for i := range dataVector {
		dataVector[i] = byte(r.Intn(16))
	}
	parityVector := make([]byte, n*NumParity)
	for c := 0; c < n; c++ {
		var d [NumData]byte
		copy(d[:], dataVector[c*NumData:(c+1)*NumData])
		p := EncodeNibbleScalar(model, d)
		copy(parityVector[c*NumParity:(c+1)*NumParity], p[:])
	}

	for _, blockSize := range []int{16, 32, 64, 128, 256} {
		t.Run("", func(t *testing.T) {
			dataBlocked := make([]byte, n*NumData)
			parityBlocked := make([]byte, n*NumParity)
			if err := LayoutToBlocked(dataVector, dataBlocked, n, blockSize, NumData); err != nil {
				t.Fatalf("LayoutToBlocked unexpected error: %v", err)
			}
			if err := LayoutToBlocked(parityVector, parityBlocked, n, blockSize, NumParity); err != nil {
				t.Fatalf("LayoutToBlocked(parity) unexpected error: %v", err)
			}

			erased := append([]byte(nil), dataBlocked...)
			ws := NewWorkspace(blockSize)
			if err := DecodeBatchBlocked(table, erased, parityBlocked, erasures, n, blockSize, ws); err != nil {
				t.Fatalf("DecodeBatchBlocked(blockSize=%d) unexpected error: %v", blockSize, err)
			}

			back := make([]byte, n*NumData)
			if err := LayoutFromBlocked(erased, back, n, blockSize, NumData); err != nil {
				t.Fatalf("LayoutFromBlocked unexpected error: %v", err)
			}
			for i := range back {
				if back[i] != dataVector[i] {
					t.Fatalf("blockSize=%d byte %d = %d, want %d", blockSize, i, back[i], dataVector[i])
				}
			}
		})
	}
}

func TestDecodeBatchBlockedWorkspaceReuseAcrossCalls(t *testing.T) {
	model := InitModel()
	table := InitPatternTable(model)
	const n, blockSize = 300, 128
	erasures := []int{0, 7}

	ws := NewWorkspace(blockSize)
	for round := 0; round < 3; round++ {
		r := rand.New(rand.NewSource(int64(round)))
		dataVector := make([]byte, n*NumData)
		for i := range dataVector {
			dataVector[i] = byte(r.Intn(16))
		}
		parityVector := make([]byte, n*NumParity)
		for c := 0; c < n; c++ {
			var d [NumData]byte
			copy(d[:], dataVector[c*NumData:(c+1)*NumData])
			p := EncodeNibbleScalar(model, d)
			copy(parityVector[c*NumParity:(c+1)*NumParity], p[:])
		}

		dataBlocked := make([]byte, n*NumData)
		parityBlocked := make([]byte, n*NumParity)
		if err := LayoutToBlocked(dataVector, dataBlocked, n, blockSize, NumData); err != nil {
			t.Fatalf("round %d: LayoutToBlocked error: %v", round, err)
		}
		if err := LayoutToBlocked(parityVector, parityBlocked, n, blockSize, NumParity); err != nil {
			t.Fatalf("round %d: LayoutToBlocked(parity) error: %v", round, err)
		}

		if err := DecodeBatchBlocked(table, dataBlocked, parityBlocked, erasures, n, blockSize, ws); err != nil {
			t.Fatalf("round %d: DecodeBatchBlocked error: %v", round, err)
		}
		back := make([]byte, n*NumData)
		if err := LayoutFromBlocked(dataBlocked, back, n, blockSize, NumData); err != nil {
			t.Fatalf("round %d: LayoutFromBlocked error: %v", round, err)
		}
		for i := range back {
			if back[i] != dataVector[i] {
				t.Fatalf("round %d: byte %d = %d, want %d", round, i, back[i], dataVector[i])
			}
		}
	}
}

func TestBatchBadLength(t *testing.T) {
	model := InitModel()
	if err := EncodeBatchBlocked(model, make([]byte, 3), make([]byte, 2), 1, 16, nil); err != ErrBadLength {
		t.Fatalf("error = %v, want ErrBadLength", err)
	}
}

func TestBatchOutOfRange(t *testing.T) {
	model := InitModel()
	if err := EncodeBatchBlocked(model, nil, nil, 0, 0, nil); err != ErrOutOfRange {
		t.Fatalf("error = %v, want ErrOutOfRange", err)
	}
}
