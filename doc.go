// The MIT License (MIT)
//
// Copyright (c) 2015 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// THE RS(10,8) FORWARD ERROR CORRECTION CORE OVER GF(16)
//
// Package rs16fec implements a systematic Reed-Solomon erasure code with 8
// data symbols and 2 parity symbols over GF(16). Every symbol is a 4-bit
// nibble. The decoders take erasures at data positions 0..7 only and
// rebuild the k-th erased data symbol (in sorted order) from parity symbol
// k; they return the 8 data symbols, not the parity. A codeword that has
// lost p0 together with a data symbol is therefore not recoverable through
// them.
//
// Encoding:
// -----------
// Data:            | d0 | d1 | ... | d7 |
// Generate Parity: | p0 | p1 |
// Codeword:        | d0 | d1 | ... | d7 | p0 | p1 |
//
// Decoding with erasures:
// ------------------------
// Received:        | d0 | ?? | ... | ?? | p0 | p1 |
// Erasures:        |    | e1 |     | e2 |    |    |
// Substituted:     | d0 | p0 | ... | p1 |
// Lookup:          pre-inverted 8x8 matrix for erasure set {e1, e2}
// Recovered:       | d0 | d1 | ... | d7 |
//
// The package is single-threaded and non-suspending: every exported function
// runs to completion on the calling goroutine with no I/O, no blocking calls,
// and no internal concurrency. Parallelism, if wanted, is the caller's job:
// partition a batch of codewords across goroutines, each with its own
// Workspace.
package rs16fec
