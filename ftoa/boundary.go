package ftoa

import (
	"math"

	"github.com/loitsch/grisu2/diyfp"
)

// precision holds the bit layout of an IEEE-754 binary format: the width of
// the significand including the hidden bit (p) and the bias applied to the
// raw exponent field.
type precision struct {
	p    int
	bias int
}

var (
	float32precision = precision{p: 24, bias: 127 + 23}
	float64precision = precision{p: 53, bias: 1023 + 52}
)

// boundaries holds the normalized DiyFp for a value v together with the
// midpoints to its representable neighbors, all three sharing the same
// exponent.
type boundaries struct {
	v, mMinus, mPlus diyfp.DiyFp
}

// computeBoundaries decodes the raw significand (F) and biased exponent (E)
// of an IEEE value and derives its DiyFp boundaries, following §4.2: v is
// assembled from the hidden bit (or not, for denormals), m+ always sits
// halfway to the next representable value, and m- sits only half as far
// below v whenever v sits on a power of two with a zero fraction field and is not
// the smallest normal (the "lower boundary is closer" case).
func computeBoundaries(f uint64, e uint32, prec precision) boundaries {
	hiddenBit := uint64(1) << uint(prec.p-1)

	var v diyfp.DiyFp
	if e == 0 {
		v = diyfp.New(f, 1-prec.bias)
	} else {
		v = diyfp.New(f+hiddenBit, int(e)-prec.bias)
	}

	lowerBoundaryCloser := f == 0 && e > 1

	mPlus := diyfp.New(2*v.F+1, v.E-1)
	var mMinus diyfp.DiyFp
	if lowerBoundaryCloser {
		mMinus = diyfp.New(4*v.F-1, v.E-2)
	} else {
		mMinus = diyfp.New(2*v.F-1, v.E-1)
	}

	w := diyfp.Normalize(v)
	wPlus := diyfp.NormalizeTo(mPlus, w.E)
	wMinus := diyfp.NormalizeTo(mMinus, wPlus.E)

	return boundaries{v: w, mMinus: wMinus, mPlus: wPlus}
}

// boundariesFromFloat64 decodes a finite, strictly positive double.
func boundariesFromFloat64(value float64) boundaries {
	bits := math.Float64bits(value)
	f := bits & (1<<52 - 1)
	e := uint32(bits >> 52)
	return computeBoundaries(f, e, float64precision)
}

// boundariesFromFloat32 decodes a finite, strictly positive single.
func boundariesFromFloat32(value float32) boundaries {
	bits := math.Float32bits(value)
	f := uint64(bits & (1<<23 - 1))
	e := uint32(bits >> 23)
	return computeBoundaries(f, e, float32precision)
}
