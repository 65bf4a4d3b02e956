package rs16fec

import "github.com/templexxx/xorsimd"

// Workspace is caller-owned scratch memory for the batched blocked codec
// (spec.md §9 "Design Notes — Scratch memory"), reused block to block so
// the decode fast path performs no allocations, mirroring
// kcp-go/v5/fec.go's fecEncoder.shardCache/fecDecoder.decodeCache.
type Workspace struct {
	contrib     [NumData][]byte // per-data-symbol GF multiply contributions, one block wide
	rows        [NumData][]byte // per-output-row contributions during decode
	contribHead [NumData][]byte // reusable xorsimd.Encode src slice for contrib
	rowsHead    [NumData][]byte // reusable xorsimd.Encode src slice for rows
	block       int
}

// NewWorkspace allocates a Workspace sized for blocks of up to blockSize
// codewords. Passing a *Workspace with too small a block capacity to
// EncodeBatchBlocked/DecodeBatchBlocked grows it in place.
func NewWorkspace(blockSize int) *Workspace {
	w := &Workspace{}
	w.ensure(blockSize)
	return w
}

func (w *Workspace) ensure(blockSize int) {
	if blockSize <= w.block {
		return
	}
	for i := range w.contrib {
		w.contrib[i] = make([]byte, blockSize)
	}
	for i := range w.rows {
		w.rows[i] = make([]byte, blockSize)
	}
	w.block = blockSize
}

// heads returns buffers truncated to length b, reusing dst's backing array
// instead of allocating, so the hot loops in EncodeBatchBlocked and
// DecodeBatchBlocked stay allocation-free.
func heads(dst *[NumData][]byte, buffers [NumData][]byte, b int) [][]byte {
	for i := range buffers {
		dst[i] = buffers[i][:b]
	}
	return dst[:]
}

// EncodeBatchBlocked computes parity for n codewords stored in
// block-transposed layout (spec.md §4.8, C11): dataBlocked holds n*8
// symbols, parityBlocked holds n*2 symbols, both grouped into blocks of up
// to blockSize codewords with the s-th symbol of every codeword in a block
// stored contiguously. ws may be nil, in which case a throwaway Workspace
// is allocated for the call.
func EncodeBatchBlocked(model *CodeModel, dataBlocked, parityBlocked []byte, n, blockSize int, ws *Workspace) error {
	if blockSize <= 0 || n < 0 {
		return ErrOutOfRange
	}
	if len(dataBlocked) != n*NumData || len(parityBlocked) != n*NumParity {
		return ErrBadLength
	}
	if ws == nil {
		ws = NewWorkspace(blockSize)
	} else {
		ws.ensure(blockSize)
	}

	dataOff, parityOff, processed := 0, 0, 0
	for processed < n {
		b := blockSize
		if n-processed < b {
			b = n - processed
		}
		dataBlock := dataBlocked[dataOff : dataOff+b*NumData]
		parityBlock := parityBlocked[parityOff : parityOff+b*NumParity]

		for i := 0; i < NumParity; i++ {
			coefRow := model.PExp[i]
			for j := 0; j < NumData; j++ {
				coefExp := coefRow[j]
				col := dataBlock[j*b : j*b+b]
				contrib := ws.contrib[j][:b]
				for c := 0; c < b; c++ {
					d := col[c]
					if d == 0 {
						contrib[c] = 0
						continue
					}
					e := (int(gfExp[d]) + int(coefExp)) % 15
					contrib[c] = gfLog[e]
				}
			}
			acc := parityBlock[i*b : i*b+b]
			xorsimd.Encode(acc, heads(&ws.contribHead, ws.contrib, b))
		}

		dataOff += b * NumData
		parityOff += b * NumParity
		processed += b
	}
	return nil
}

// DecodeBatchBlocked recovers missing data symbols for n codewords sharing
// one erasure set (spec.md §4.8), in place on dataBlocked. parityBlocked
// supplies the substitution values for erased positions. ws may be nil.
func DecodeBatchBlocked(table *PatternTable, dataBlocked, parityBlocked []byte, erasures []int, n, blockSize int, ws *Workspace) error {
	if blockSize <= 0 || n < 0 {
		return ErrOutOfRange
	}
	if len(dataBlocked) != n*NumData || len(parityBlocked) != n*NumParity {
		return ErrBadLength
	}
	entry, err := table.lookup(erasures)
	if err != nil {
		return err
	}
	if ws == nil {
		ws = NewWorkspace(blockSize)
	} else {
		ws.ensure(blockSize)
	}

	dataOff, parityOff, processed := 0, 0, 0
	for processed < n {
		b := blockSize
		if n-processed < b {
			b = n - processed
		}
		dataBlock := dataBlocked[dataOff : dataOff+b*NumData]
		parityBlock := parityBlocked[parityOff : parityOff+b*NumParity]

		// substitute: write the k-th parity lane onto the erased data lane.
		for k := 0; k < entry.count; k++ {
			pos := entry.positions[k]
			copy(dataBlock[pos*b:pos*b+b], parityBlock[k*b:k*b+b])
		}

		// D = I* . R*, computed row by row into scratch so a row that has
		// not been produced yet is never read back through dataBlock.
		for i := 0; i < NumData; i++ {
			row := entry.inv[i]
			for j := 0; j < NumData; j++ {
				coef := row[j]
				col := dataBlock[j*b : j*b+b]
				contrib := ws.rows[j][:b]
				if coef == 0 {
					for c := range contrib {
						contrib[c] = 0
					}
					continue
				}
				for c := 0; c < b; c++ {
					contrib[c] = gfMul(coef, col[c])
				}
			}
			xorsimd.Encode(ws.contrib[i][:b], heads(&ws.rowsHead, ws.rows, b))
		}
		for i := 0; i < NumData; i++ {
			copy(dataBlock[i*b:i*b+b], ws.contrib[i][:b])
		}

		dataOff += b * NumData
		parityOff += b * NumParity
		processed += b
	}
	return nil
}
