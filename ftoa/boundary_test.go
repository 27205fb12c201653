package ftoa

import (
	"testing"
)

func TestBoundariesFromFloat64SharesExponent(t *testing.T) {
	b := boundariesFromFloat64(1.5)
	if b.v.E != b.mMinus.E || b.v.E != b.mPlus.E {
		t.Fatalf("boundaries do not share an exponent: %+v", b)
	}
	if !(b.mMinus.F < b.v.F && b.v.F < b.mPlus.F) {
		t.Fatalf("expected mMinus < v < mPlus, got %+v", b)
	}
}

func TestBoundariesLowerBoundaryCloserAtPowerOfTwo(t *testing.T) {
	// A power of two strictly above the smallest normal has F == 0 and
	// E > 1 (the "lower boundary is closer" case): its predecessor sits
	// half as far away as its successor, since the predecessor's exponent
	// is one less than v's (P3).
	const powerOfTwo = 4.0

	b := boundariesFromFloat64(powerOfTwo)

	distMinus := b.v.F - b.mMinus.F
	distPlus := b.mPlus.F - b.v.F
	if distPlus != 2*distMinus {
		t.Fatalf("expected successor distance to be double the predecessor distance at a power of two, got mMinus-dist=%d mPlus-dist=%d", distMinus, distPlus)
	}
}

func TestBoundariesRegularValueIsSymmetric(t *testing.T) {
	// Away from a power of two, both neighbors are a full ulp away, so the
	// midpoints are equidistant from v.
	b := boundariesFromFloat64(1.5)

	distMinus := b.v.F - b.mMinus.F
	distPlus := b.mPlus.F - b.v.F
	if distMinus != distPlus {
		t.Fatalf("expected symmetric boundaries away from a power of two, got mMinus-dist=%d mPlus-dist=%d", distMinus, distPlus)
	}
}

func TestBoundariesFromFloat32SharesExponent(t *testing.T) {
	b := boundariesFromFloat32(1.5)
	if b.v.E != b.mMinus.E || b.v.E != b.mPlus.E {
		t.Fatalf("boundaries do not share an exponent: %+v", b)
	}
}

func TestBoundariesDenormal(t *testing.T) {
	b := boundariesFromFloat64(5e-324) // smallest positive denormal double
	if !(b.mMinus.F < b.v.F && b.v.F < b.mPlus.F) {
		t.Fatalf("expected mMinus < v < mPlus for smallest denormal, got %+v", b)
	}
}
