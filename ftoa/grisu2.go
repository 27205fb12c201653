package ftoa

import "github.com/loitsch/grisu2/diyfp"

// alpha and gamma bound the binary exponent window a scaled DiyFp must fall
// into: tight enough that the integral part of the scaled H fits in 32
// bits (gamma) and the fractional part can be multiplied by 10 without
// overflowing 64 bits (alpha). See the GLOSSARY entry for the derivation.
const (
	alpha = -60
	gamma = -32
)

// maxDigits10 is the largest number of decimal digits Grisu2 can emit for a
// double. The digit-generation loops do not check against it.
const maxDigits10 = 17

// digits100 holds the two-character decimal spelling of every n in [0, 99],
// used to emit a pair of digits with a single table lookup instead of two
// divisions.
const digits100 = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// appendPair appends the two-digit decimal spelling of n (0 <= n < 100).
func appendPair(buf []byte, n uint32) []byte {
	return append(buf, digits100[2*n], digits100[2*n+1])
}

// appendIntegralDigits appends the decimal digits of n, left to right,
// shaving two digits at a time via the digits100 table and falling through
// to the next smaller width instead of dividing by an unknown digit count.
// n never exceeds 798336123, the worst-case p1 produced by the cached-power
// index formula for any reachable binary exponent; this is not checked at
// run time, and a ten-digit n would index past the end of digits100.
func appendIntegralDigits(buf []byte, n uint32) []byte {
	var q uint32

	if n >= 100000000 {
		q = n / 10000000
		n %= 10000000
		buf = appendPair(buf, q)
		goto d7
	}
	if n >= 10000000 {
		goto d8
	}
	if n >= 1000000 {
		goto d7
	}
	if n >= 100000 {
		goto d6
	}
	if n >= 10000 {
		goto d5
	}
	if n >= 1000 {
		goto d4
	}
	if n >= 100 {
		goto d3
	}
	if n >= 10 {
		goto d2
	}
	return append(buf, byte('0'+n))

d8:
	q = n / 1000000
	n %= 1000000
	buf = appendPair(buf, q)
d6:
	q = n / 10000
	n %= 10000
	buf = appendPair(buf, q)
d4:
	q = n / 100
	n %= 100
	buf = appendPair(buf, q)
d2:
	return appendPair(buf, n)

d7:
	q = n / 100000
	n %= 100000
	buf = appendPair(buf, q)
d5:
	q = n / 1000
	n %= 1000
	buf = appendPair(buf, q)
d3:
	q = n / 10
	n %= 10
	buf = appendPair(buf, q)
	return append(buf, byte('0'+n))
}

// grisu2Round nudges the last emitted digit towards w, per §4.4. The three
// conditions are evaluated in this order, using only unsigned arithmetic, to
// avoid wrap-around.
func grisu2Round(buf []byte, distance, delta, rest, tenKappa uint64) {
	digit := buf[len(buf)-1] - '0'
	for rest < distance &&
		delta-rest >= tenKappa &&
		(rest+tenKappa <= distance || rest+tenKappa-distance < distance-rest) {
		digit--
		rest += tenKappa
	}
	buf[len(buf)-1] = '0' + digit
}

// digitGen generates V = buf * 10^exponent with L <= V <= H, appending the
// digits of buf. L, w and H must share the same exponent in [alpha, gamma]
// and satisfy L.F <= w.F <= H.F.
func digitGen(buf []byte, L, w, H diyfp.DiyFp) (out []byte, exponent int) {
	distance := diyfp.Sub(H, w).F
	delta := diyfp.Sub(H, L).F

	one := diyfp.New(uint64(1)<<uint(-H.E), H.E)

	p1 := uint32(H.F >> uint(-one.E))
	p2 := H.F & (one.F - 1)

	out = appendIntegralDigits(buf, p1)

	if p2 > delta {
		m := 0
		for {
			p2 *= 10
			d := p2 >> uint(-one.E)
			p2 &= one.F - 1
			out = append(out, byte('0'+d))
			m++
			delta *= 10
			distance *= 10
			if p2 <= delta {
				exponent = -m
				grisu2Round(out, distance, delta, p2, one.F)
				return out, exponent
			}
		}
	}

	// Too many integral digits were emitted; trim back to the point where
	// the residual first exceeds delta.
	rest := p2
	tenKappa := one.F
	for n := 0; ; n++ {
		dn := uint64(out[len(out)-1-n] - '0')
		rn := dn*tenKappa + rest
		if rn > delta {
			exponent = n
			out = out[:len(out)-n]
			grisu2Round(out, distance, delta, rest, tenKappa)
			return out, exponent
		}
		rest = rn
		tenKappa *= 10
	}
}

// grisu2 generates the shortest decimal digits of v such that the result
// lies in [mMinus, mPlus] (§4.4, steps 1-5).
func grisu2(buf []byte, b boundaries) (out []byte, exponent int) {
	c := getCachedPower(b.v.E)
	cMinusK := diyfp.New(c.f, c.e)

	w := diyfp.Mul(b.v, cMinusK)
	wMinus := diyfp.Mul(b.mMinus, cMinusK)
	wPlus := diyfp.Mul(b.mPlus, cMinusK)

	L := diyfp.New(wMinus.F+1, wMinus.E)
	H := diyfp.New(wPlus.F-1, wPlus.E)

	out, exponent = digitGen(buf, L, w, H)
	exponent += -c.k
	return out, exponent
}
