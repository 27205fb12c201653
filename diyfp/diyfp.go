// Package diyfp implements "do-it-yourself floating-point" arithmetic: a
// 64-bit significand paired with a binary exponent, used as the extended
// precision intermediate type for the Grisu2 digit generation algorithm.
package diyfp

import "math/bits"

// Precision is the number of significand bits carried by a DiyFp (q in the
// Grisu2 literature).
const Precision = 64

// DiyFp represents the real number F * 2^E.
type DiyFp struct {
	F uint64
	E int
}

// New returns the DiyFp f * 2^e.
func New(f uint64, e int) DiyFp {
	return DiyFp{F: f, E: e}
}

// Sub returns x - y.
//
// Requires x.E == y.E and x.F >= y.F.
func Sub(x, y DiyFp) DiyFp {
	return DiyFp{F: x.F - y.F, E: x.E}
}

// Mul returns x * y, rounded to the nearest representable DiyFp with ties
// rounding up. Only the upper 64 bits of the 128-bit product are kept; the
// result is not guaranteed to be normalized.
func Mul(x, y DiyFp) DiyFp {
	h, l := bits.Mul64(x.F, y.F)
	h += l >> 63 // round, ties up: add 2^63 before truncating to the high word.
	return DiyFp{F: h, E: x.E + y.E + Precision}
}

// Normalize left-shifts f.F until its top bit is set, decrementing f.E to
// compensate.
//
// Requires f.F != 0.
func Normalize(f DiyFp) DiyFp {
	shift := bits.LeadingZeros64(f.F)
	return DiyFp{F: f.F << shift, E: f.E - shift}
}

// NormalizeTo left-shifts f so that its exponent becomes e, without changing
// the value it represents other than through that shift.
//
// Requires e <= f.E and the top (f.E - e) bits of f.F to be zero.
func NormalizeTo(f DiyFp, e int) DiyFp {
	delta := f.E - e
	return DiyFp{F: f.F << uint(delta), E: e}
}
