package calc

import "math"

// binops and unops are the operators evaluation allows. They are never
// modified.
var (
	binops = map[Op]func(x, y float64) (float64, error){
		OpAdd: func(x, y float64) (float64, error) { return x + y, nil },
		OpSub: func(x, y float64) (float64, error) { return x - y, nil },
		OpMul: func(x, y float64) (float64, error) { return x * y, nil },
		OpDiv: div,
		OpPow: pow,
		OpMod: mod,
	}

	unops = map[Op]func(x float64) float64{
		OpNeg: func(x float64) float64 { return -x },
		OpPos: func(x float64) float64 { return x },
	}
)

func div(x, y float64) (float64, error) {
	if y == 0 {
		return 0, &DivisionByZeroError{Op: OpDiv}
	}
	return x / y, nil
}

// mod is the floating remainder, with the sign of x.
func mod(x, y float64) (float64, error) {
	if y == 0 {
		return 0, &DivisionByZeroError{Op: OpMod}
	}
	return math.Mod(x, y), nil
}

func pow(x, y float64) (float64, error) {
	switch {
	case x == 0 && y < 0:
		return 0, &DivisionByZeroError{Op: OpPow}
	case x < 0 && y != math.Trunc(y):
		// The result is not real.
		return 0, &DomainError{X: x, Arg: 1, Func: "^"}
	}
	return math.Pow(x, y), nil
}
