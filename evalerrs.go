package calc

import (
	"errors"
	"strconv"
)

// NameError is an error from a lookup for a name that is neither a constant
// nor a function.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined name: " + strconv.Quote(err.Name)
}

// NotCallableError is an error indicating a function name used as a value,
// e.g. "sqrt + 1".
type NotCallableError struct {
	// Name is the function name.
	Name string
}

func (err *NotCallableError) Error() string {
	return "function " + strconv.Quote(err.Name) + " used without a call"
}

// ForbiddenOperatorError is an error indicating an operator node whose kind
// is not allowed in its position. The parser never produces one; it arises
// only from syntax trees built by hand.
type ForbiddenOperatorError struct {
	// Op is the rejected operator.
	Op Op
	// Unary is whether the operator appeared in a Unary node.
	Unary bool
}

func (err *ForbiddenOperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return s + " operator " + err.Op.String() + " not allowed"
}

// ForbiddenFuncError is an error indicating a call of a name that is not a
// function, whether it is unknown or a constant.
type ForbiddenFuncError struct {
	// Func is the called name.
	Func string
}

func (err *ForbiddenFuncError) Error() string {
	return "function " + strconv.Quote(err.Func) + " not allowed"
}

// CallError is an error indicating a function call with the wrong number of
// arguments.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments in the call.
	Len int
}

func (err *CallError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}

// DomainError is an error returned when a function or operator is applied to
// arguments outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument, or 0 if the function has only
	// one argument.
	Arg int
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

// DivisionByZeroError is an error indicating division by zero. Besides "/",
// it is returned for "%" with a zero divisor and for zero raised to a
// negative power.
type DivisionByZeroError struct {
	// Op is the operator that divided.
	Op Op
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero in " + err.Op.String()
}

// OverflowError is an error indicating a result too large to represent.
type OverflowError struct {
	// Func names the function or operator whose result overflowed. It is
	// "number" for a numeric literal out of range.
	Func string
}

func (err *OverflowError) Error() string {
	if err.Func == "number" {
		return "number out of range"
	}
	return "result of " + err.Func + " out of range"
}

// DepthError is an error indicating an expression nested more deeply than
// allowed. Parsing and evaluation both return it.
type DepthError struct {
	// Max is the depth limit that was exceeded.
	Max int
	// Col is the position at which parsing exceeded the limit, or 0 if the
	// limit was exceeded during evaluation.
	Col int
}

func (err *DepthError) Error() string {
	msg := "expression nested deeper than " + strconv.Itoa(err.Max)
	if err.Col > 0 {
		return errpos(err.Col, msg)
	}
	return msg
}

// Kind classifies errors from this package.
type Kind int

const (
	KindNone Kind = iota
	KindSyntax
	KindUnknownName
	KindNotCallable
	KindOperatorNotAllowed
	KindFunctionNotAllowed
	KindArityMismatch
	KindDomain
	KindDivisionByZero
	KindOverflow
	KindTooComplex
	// KindOther is any error not from this package, e.g. an I/O error while
	// reading the expression.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSyntax:
		return "syntax error"
	case KindUnknownName:
		return "unknown name"
	case KindNotCallable:
		return "not callable"
	case KindOperatorNotAllowed:
		return "operator not allowed"
	case KindFunctionNotAllowed:
		return "function not allowed"
	case KindArityMismatch:
		return "arity mismatch"
	case KindDomain:
		return "domain error"
	case KindDivisionByZero:
		return "division by zero"
	case KindOverflow:
		return "overflow"
	case KindTooComplex:
		return "too complex"
	default:
		return "other"
	}
}

// KindOf classifies an error returned by this package. Front ends which show
// only a generic message can still use it to report or log the kind.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var (
		name  *NameError
		nc    *NotCallableError
		fop   *ForbiddenOperatorError
		ffn   *ForbiddenFuncError
		call  *CallError
		dom   *DomainError
		div   *DivisionByZeroError
		over  *OverflowError
		depth *DepthError
	)
	switch {
	case errors.Is(err, ErrSyntax):
		return KindSyntax
	case errors.As(err, &name):
		return KindUnknownName
	case errors.As(err, &nc):
		return KindNotCallable
	case errors.As(err, &fop):
		return KindOperatorNotAllowed
	case errors.As(err, &ffn):
		return KindFunctionNotAllowed
	case errors.As(err, &call):
		return KindArityMismatch
	case errors.As(err, &dom):
		return KindDomain
	case errors.As(err, &div):
		return KindDivisionByZero
	case errors.As(err, &over):
		return KindOverflow
	case errors.As(err, &depth):
		return KindTooComplex
	default:
		return KindOther
	}
}
