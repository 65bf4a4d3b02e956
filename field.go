package rs16fec

// GF(16) is realised with the primitive polynomial x^4 + x + 1 (0x13) and
// generator element 2. Every symbol is an integer in 0..15.
//
// gfExp is indexed by a symbol and gives its discrete logarithm in 0..14.
// gfExp[0] is a sentinel (the log of zero is undefined) and is never read
// through a path that isn't already zero-masked.
//
// gfLog is indexed by an exponent in 0..15 and gives the symbol for that
// power of the generator; index 15 mirrors index 0 (both are the identity
// element, exponent 0 modulo the 15-element multiplicative group). Every
// exponent is reduced mod 15 before the lookup, so index 15 is never read.
var gfExp = [16]byte{
	0, 0, 1, 4, 2, 8, 5, 10, 3, 14, 9, 7, 6, 13, 11, 12,
}

var gfLog = [16]byte{
	1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9, 1,
}

// gfAdd returns a XOR b, the GF(16) addition (and subtraction: the field has
// characteristic 2, so add and subtract coincide).
func gfAdd(a, b byte) byte { return a ^ b }

// gfSub is an alias for gfAdd; kept distinct so call sites read naturally.
func gfSub(a, b byte) byte { return a ^ b }

// gfMul multiplies two GF(16) symbols. Total: never fails, and short
// circuits on either operand being zero because gfExp[0] is not a valid
// table entry.
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	e := (int(gfExp[a]) + int(gfExp[b])) % 15
	return gfLog[e]
}

// gfDiv divides a by b over GF(16). Fails with ErrDivByZero when b is zero.
func gfDiv(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrDivByZero
	}
	if a == 0 {
		return 0, nil
	}
	e := (int(gfExp[a]) - int(gfExp[b]) + 15) % 15
	return gfLog[e], nil
}

// gfInv returns the multiplicative inverse of a over GF(16).
func gfInv(a byte) (byte, error) {
	return gfDiv(1, a)
}

// Mul exposes gfMul for callers that need raw GF(16) arithmetic (e.g. when
// building a custom code model). It is total and never fails.
func Mul(a, b byte) byte { return gfMul(a, b) }

// Div exposes gfDiv. It fails with ErrDivByZero when b is zero.
func Div(a, b byte) (byte, error) { return gfDiv(a, b) }

// Inv exposes gfInv. It fails with ErrDivByZero when a is zero.
func Inv(a byte) (byte, error) { return gfInv(a) }
