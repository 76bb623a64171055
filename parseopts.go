package calc

import (
	"strconv"
	"unicode"
)

// DefaultMaxDepth is the nesting depth limit used when no MaxDepth option is
// given.
const DefaultMaxDepth = 256

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// EvalOption is an option for evaluation.
type EvalOption interface {
	evalOption(evalctx) evalctx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// names and funcs are the sets of constant and function names that have
	// been seen this parse.
	names map[string]bool
	funcs map[string]bool
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
	// depth is the current recursion depth, and max is its limit.
	depth, max int
}

// DepthLimit is both a ParseOption and an EvalOption limiting how deeply an
// expression may nest.
type DepthLimit int

// MaxDepth limits the nesting depth of expressions. Parsing and evaluation
// both fail with a *DepthError for expressions nested more deeply. Panics if
// n is less than 1.
func MaxDepth(n int) DepthLimit {
	if n < 1 {
		panic("calc: invalid depth limit " + strconv.Itoa(n))
	}
	return DepthLimit(n)
}

func (d DepthLimit) parseOption(p parsectx) parsectx {
	p.max = int(d)
	return p
}

func (d DepthLimit) evalOption(e evalctx) evalctx {
	e.max = int(d)
	return e
}

type eofopt struct {
	ws string
}

// StopOn tells the parser to treat a list of whitespace characters as ending
// the expression, so that one input can hold several expressions. Whitespace
// does not end an expression where a term is expected, e.g. at the beginning
// of an expression or following an operator or bracket. Panics if any rune
// is not whitespace.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("calc: cannot stop on " + strconv.QuoteRune(r))
		}
		if have(r) {
			continue
		}
		v = append(v, r)
	}
	return &eofopt{ws: string(v)}
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.wseof = o.ws
	return p
}
