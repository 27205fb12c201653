package ftoa

import "testing"

func TestCachedPowersAreSortedByDecExp(t *testing.T) {
	for i := 1; i < len(cachedPowers); i++ {
		if cachedPowers[i].k != cachedPowers[i-1].k+cachedPowersDecExpStep {
			t.Fatalf("cachedPowers[%d].k = %d, want %d", i, cachedPowers[i].k, cachedPowers[i-1].k+cachedPowersDecExpStep)
		}
	}
	if cachedPowers[0].k != cachedPowersMinDecExp {
		t.Fatalf("first cached power k = %d, want %d", cachedPowers[0].k, cachedPowersMinDecExp)
	}
	if got := cachedPowers[len(cachedPowers)-1].k; got != cachedPowersMaxDecExp {
		t.Fatalf("last cached power k = %d, want %d", got, cachedPowersMaxDecExp)
	}
}

func TestCachedPowersAreNormalized(t *testing.T) {
	for i, c := range cachedPowers {
		if c.f&(1<<63) == 0 {
			t.Fatalf("cachedPowers[%d] (k=%d) is not normalized: f=%#x", i, c.k, c.f)
		}
	}
}

// Normalized exponents reachable from a positive double (and so from a
// single) run from -1137 (5e-324, 1-1075-63) to 960 (MaxFloat64, 2046-1075-11).
func TestGetCachedPowerSatisfiesExponentWindow(t *testing.T) {
	for e := -1137; e <= 960; e++ {
		c := getCachedPower(e)
		sum := c.e + e + 64
		if sum < alpha || sum > gamma {
			t.Fatalf("getCachedPower(%d) = %+v, c.e+e+64 = %d, want in [%d, %d]", e, c, sum, alpha, gamma)
		}
	}
}

func TestGetCachedPowerIndexInRange(t *testing.T) {
	for e := -1137; e <= 960; e++ {
		f := alpha - e - 1
		k := (f * 78913) / (1 << 18)
		if f > 0 {
			k++
		}
		index := (-cachedPowersMinDecExp + k + (cachedPowersDecExpStep - 1)) / cachedPowersDecExpStep
		if index < 0 || index >= cachedPowersSize {
			t.Fatalf("index for e=%d out of range: %d", e, index)
		}
	}
}
