package ftoa

import "testing"

func TestAppendPair(t *testing.T) {
	for n := uint32(0); n < 100; n++ {
		got := appendPair(nil, n)
		want := byte('0' + n/10)
		if got[0] != want {
			t.Fatalf("appendPair(%d)[0] = %c, want %c", n, got[0], want)
		}
		if got[1] != byte('0'+n%10) {
			t.Fatalf("appendPair(%d)[1] = %c, want %c", n, got[1], byte('0'+n%10))
		}
	}
}

func TestAppendIntegralDigits(t *testing.T) {
	cases := []struct {
		n    uint32
		want string
	}{
		{0, "0"},
		{5, "5"},
		{42, "42"},
		{100, "100"},
		{12345, "12345"},
		{9999999, "9999999"},
		{10000000, "10000000"},
		{99999999, "99999999"},
		{100000000, "100000000"},
		{798336123, "798336123"},
	}
	for _, c := range cases {
		got := string(appendIntegralDigits(nil, c.n))
		if got != c.want {
			t.Fatalf("appendIntegralDigits(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestGrisu2KnownDigits(t *testing.T) {
	cases := []struct {
		value float64
		digits string
		exponent int
	}{
		{1.0, "1", 0},
		{1.5, "15", -1},
		{0.1, "1", -1},
	}
	for _, c := range cases {
		buf := make([]byte, 24)
		digits, exponent := grisu2(buf[:0], boundariesFromFloat64(c.value))
		if string(digits) != c.digits || exponent != c.exponent {
			t.Fatalf("grisu2(%v) = (%q, %d), want (%q, %d)", c.value, digits, exponent, c.digits, c.exponent)
		}
	}
}
