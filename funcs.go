package calc

import "math"

// function is an entry in the function table.
type function interface {
	// Call evaluates the function. The function arguments are passed in
	// invoc, which has a length for which CanCall returned true.
	Call(invoc []float64) (float64, error)

	// CanCall returns whether the function can be called with n arguments.
	CanCall(n int) bool
}

// constants and functions are the only names an expression can use. They are
// never modified.
var (
	constants = map[string]float64{
		"pi": math.Pi,
		"e":  math.E,
	}

	functions = map[string]function{
		"sin":       monadic{"sin", math.Sin, nil},
		"cos":       monadic{"cos", math.Cos, nil},
		"tan":       monadic{"tan", math.Tan, nil},
		"sqrt":      monadic{"sqrt", math.Sqrt, nonnegative},
		"exp":       monadic{"exp", math.Exp, nil},
		"abs":       monadic{"abs", math.Abs, nil},
		"log":       monadic{"log", log10, positive},
		"ln":        monadic{"ln", math.Log, positive},
		"factorial": factorial{},
	}
)

// Constants returns the names of the constants expressions may use, sorted.
func Constants() []string {
	v := make([]string, 0, len(constants))
	for k := range constants {
		v = append(v, k)
	}
	sortstrs(v)
	return v
}

// Functions returns the names of the functions expressions may call, sorted.
func Functions() []string {
	v := make([]string, 0, len(functions))
	for k := range functions {
		v = append(v, k)
	}
	sortstrs(v)
	return v
}

type monadic struct {
	name string
	f    func(float64) float64
	// domain reports whether an argument is valid. nil allows all reals.
	domain func(float64) bool
}

func (m monadic) Call(invoc []float64) (float64, error) {
	x := invoc[0]
	if m.domain != nil && !m.domain(x) {
		return 0, &DomainError{X: x, Func: m.name}
	}
	r := m.f(x)
	switch {
	case math.IsNaN(r):
		return 0, &DomainError{X: x, Func: m.name}
	case math.IsInf(r, 0):
		return 0, &OverflowError{Func: m.name}
	}
	return r, nil
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

func nonnegative(x float64) bool { return x >= 0 }
func positive(x float64) bool    { return x > 0 }

// log10 is math.Log10, but exact on powers of ten.
func log10(x float64) float64 {
	r := math.Log10(x)
	if k := math.Round(r); math.Pow10(int(k)) == x {
		return k
	}
	return r
}

// factorials holds n! for every n whose factorial is finite in a float64.
var factorials [171]float64

func init() {
	factorials[0] = 1
	for i := 1; i < len(factorials); i++ {
		factorials[i] = factorials[i-1] * float64(i)
	}
}

type factorial struct{}

func (factorial) Call(invoc []float64) (float64, error) {
	x := invoc[0]
	if x < 0 || x != math.Trunc(x) {
		return 0, &DomainError{X: x, Func: "factorial"}
	}
	if x >= float64(len(factorials)) {
		return 0, &OverflowError{Func: "factorial"}
	}
	return factorials[int(x)], nil
}

func (factorial) CanCall(n int) bool {
	return n == 1
}
