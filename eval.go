package calc

import (
	"io"
	"math"
	"strings"
)

// evalctx holds options for evaluation.
type evalctx struct {
	// max is the depth limit.
	max int
}

// Eval evaluates a syntax tree and returns the result. Names and operators
// are checked against the tables of allowed constants, functions, and
// operators as the tree is evaluated, so a tree built by hand is held to the
// same rules as a parsed one. The first error aborts evaluation.
//
// Eval is safe to call concurrently, including on the same tree.
func Eval(n Node, opts ...EvalOption) (float64, error) {
	ctx := evalctx{max: DefaultMaxDepth}
	for _, opt := range opts {
		ctx = opt.evalOption(ctx)
	}
	return ctx.eval(n, 1)
}

// Eval evaluates the expression with the depth limit it was parsed with,
// unless opts override it.
func (e *Expr) Eval(opts ...EvalOption) (float64, error) {
	ctx := evalctx{max: e.max}
	for _, opt := range opts {
		ctx = opt.evalOption(ctx)
	}
	return ctx.eval(e.n, 1)
}

// EvalReader is a shortcut to parse an expression and return its result.
func EvalReader(src io.RuneScanner, opts ...ParseOption) (float64, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	return EvalReader(strings.NewReader(src), opts...)
}

// eval computes the value of the node at the given depth.
func (ctx evalctx) eval(n Node, depth int) (float64, error) {
	if depth > ctx.max {
		return 0, &DepthError{Max: ctx.max}
	}
	switch n := n.(type) {
	case *Number:
		switch {
		case math.IsNaN(n.Value):
			return 0, &DomainError{X: n.Value, Func: "number"}
		case math.IsInf(n.Value, 0):
			return 0, &OverflowError{Func: "number"}
		}
		return n.Value, nil
	case *Ident:
		if v, ok := constants[n.Name]; ok {
			return v, nil
		}
		if _, ok := functions[n.Name]; ok {
			return 0, &NotCallableError{Name: n.Name}
		}
		return 0, &NameError{Name: n.Name}
	case *Unary:
		f := unops[n.Op]
		if f == nil {
			return 0, &ForbiddenOperatorError{Op: n.Op, Unary: true}
		}
		x, err := ctx.eval(n.X, depth+1)
		if err != nil {
			return 0, err
		}
		return f(x), nil
	case *Binary:
		f := binops[n.Op]
		if f == nil {
			return 0, &ForbiddenOperatorError{Op: n.Op}
		}
		// A chain like 1+2+3 nests only on the left, and its nesting depth
		// is that of a single sum.
		x, err := ctx.eval(n.L, depth)
		if err != nil {
			return 0, err
		}
		y, err := ctx.eval(n.R, depth+1)
		if err != nil {
			return 0, err
		}
		r, err := f(x, y)
		if err != nil {
			return 0, err
		}
		// Operands are always finite, so an infinity is always an overflow.
		switch {
		case math.IsInf(r, 0):
			return 0, &OverflowError{Func: n.Op.String()}
		case math.IsNaN(r):
			return 0, &DomainError{X: x, Arg: 1, Func: n.Op.String()}
		}
		return r, nil
	case *Call:
		f := functions[n.Func]
		if f == nil {
			return 0, &ForbiddenFuncError{Func: n.Func}
		}
		invoc := make([]float64, len(n.Args))
		for i, a := range n.Args {
			v, err := ctx.eval(a, depth+1)
			if err != nil {
				return 0, err
			}
			invoc[i] = v
		}
		if !f.CanCall(len(invoc)) {
			return 0, &CallError{Func: n.Func, Len: len(invoc)}
		}
		return f.Call(invoc)
	default:
		panic("calc: invalid syntax tree node")
	}
}
