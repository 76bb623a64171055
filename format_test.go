package calc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x    float64
		want string
		int  bool
	}{
		{2, "2", true},
		{-4, "-4", true},
		{0, "0", true},
		{math.Copysign(0, -1), "0", true},
		{0.5, "0.5", false},
		{0.1, "0.1", false},
		{1.0 / 3, "0.3333333333333333", false},
		{1e-5, "1e-05", false},
		{math.Pi, "3.141592653589793", false},
		{2432902008176640000, "2432902008176640000", true},
		{1e21, "1000000000000000000000", true},
		{-1.5, "-1.5", false},
	}
	for _, c := range cases {
		if got := calc.Format(c.x); got != c.want {
			t.Errorf("Format(%g): want %q, got %q", c.x, c.want, got)
		}
		if got := calc.IsIntegral(c.x); got != c.int {
			t.Errorf("IsIntegral(%g): want %t, got %t", c.x, c.int, got)
		}
	}
	for _, x := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if calc.IsIntegral(x) {
			t.Errorf("IsIntegral(%g) is true", x)
		}
	}
}

func TestFormatResults(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"4/2", "2"},
		{"7/2", "3.5"},
		{"2^10", "1024"},
		{"sqrt(2)^2", "2.0000000000000004"},
		{"-0", "0"},
		{"factorial(20)", "2432902008176640000"},
	}
	for _, c := range cases {
		r, err := calc.EvalString(c.src)
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if got := calc.Format(r); got != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, got)
		}
	}
}
