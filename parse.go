package calc

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Expr = num | name | Call | Neg | Plus | Add | Sub | Mul | Div | Mod | Pow | '(' Expr ')'
// Call = name '(' [ Expr { ',' Expr } ] ')'
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Mod = Expr '%' Expr
// Pow = Expr '^' Expr | Expr '**' Expr

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n Node
	// names and funcs are the sorted constant and function names used in the
	// expression.
	names []string
	funcs []string
	// max is the depth limit the expression was parsed with.
	max int
}

// Parse parses an expression. The given options are applied in order. Names
// are not checked against the constants and functions that evaluation
// allows; that happens in Eval.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	p := parsectx{
		names: make(map[string]bool),
		funcs: make(map[string]bool),
		max:   DefaultMaxDepth,
	}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok, false)
	}
	ex := Expr{
		n:     n,
		names: setstrs(p.names),
		funcs: setstrs(p.funcs),
		max:   p.max,
	}
	return &ex, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

func setstrs(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	v := make([]string, 0, len(set))
	for k := range set {
		v = append(v, k)
	}
	sortstrs(v)
	return v
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression ended by a close bracket, the result is nil with no error;
// callers must create an error in contexts where that is illegal.
func parseterm(scan *lexer, p *parsectx, until operator) (Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.max {
		return nil, &DepthError{Max: p.max, Col: scan.rune}
	}
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum, tokenIdent, tokenOpen:
			// No implicit multiplication: 2 pi and 2(3) are both errors.
			return nil, &MissingOperatorError{Col: tok.pos, Text: tok.text}
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == OpNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				return nil, emptyexpr(scan)
			}
			n = &Binary{Op: prec.op, L: n, R: rhs}
		case tokenClose, tokenSep, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// any encountered token must be valid as the start of a subexpression, and
// whitespace normally lexed as EOF is ignored.
func parselhs(scan *lexer, p *parsectx, until operator) (Node, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	var n Node
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			if !math.IsInf(v, 0) {
				return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
			}
			return nil, &OverflowError{Func: "number"}
		}
		n = &Number{Value: v}
	case tokenIdent:
		// A name is a call exactly when an open bracket follows it.
		open, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		if open.kind != tokenOpen {
			scan.push(open)
			p.names[tok.text] = true
			n = &Ident{Name: tok.text}
			break
		}
		args, err := parsearglist(scan, p)
		if err != nil {
			return nil, err
		}
		p.funcs[tok.text] = true
		n = &Call{Func: tok.text, Args: args}
	case tokenOp:
		// unary operator
		prec := unop(tok.text)
		if prec.op == OpNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, emptyexpr(scan)
		}
		n = &Unary{Op: prec.op, X: rhs}
	case tokenOpen:
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, itShouldNotHaveEndedThisWay(end, true)
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = rhs
	case tokenClose:
		// This might be part of a niladic call f(), so just let the caller
		// decide what to do.
		scan.push(tok)
		return nil, nil
	case tokenSep:
		return nil, &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("calc: unknown token: " + tok.String())
	}
	return n, nil
}

// parsearglist parses a bracketed list of zero or more args following an
// open bracket which has already been scanned. On success, the lexer's next
// token is the token after the close bracket.
func parsearglist(scan *lexer, p *parsectx) ([]Node, error) {
	var args []Node
	for {
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			// As a special case, reporting an unclosed bracket is more
			// helpful than an empty expression at the end of the input.
			if ee, _ := err.(*EmptyExpressionError); ee != nil && ee.End == "" {
				err = &BracketError{Col: ee.Col, Left: "("}
			}
			return nil, err
		}
		end := scan.must()
		switch end.kind {
		case tokenClose:
			if rhs == nil {
				// func() is allowed, but func(a,) isn't.
				if len(args) != 0 {
					return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
				}
				return nil, nil
			}
			return append(args, rhs), nil
		case tokenSep:
			args = append(args, rhs)
		case tokenEOF:
			return nil, &BracketError{Col: end.pos, Left: "(", Right: ""}
		default:
			panic("calc: parseterm ended on non-end token " + end.String())
		}
	}
}

// emptyexpr creates an error for a missing operand, given that the token
// which ended the operand is pushed.
func emptyexpr(scan *lexer) error {
	tok := scan.must()
	return &EmptyExpressionError{Col: tok.pos, End: tok.text}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. paren is whether the expression should
// have ended with a close bracket.
func itShouldNotHaveEndedThisWay(tok lexToken, paren bool) error {
	left := ""
	if paren {
		left = "("
	}
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.pos, Left: left, Right: ""}
	case tokenClose:
		// A close bracket at the end of the input has no match.
		return &BracketError{Col: tok.pos, Left: left, Right: tok.text}
	case tokenSep:
		// Separator outside a function call.
		return &SeparatorError{Col: tok.pos, Sep: tok.text}
	default:
		panic("calc: it really should not have ended this way: " + tok.String())
	}
}

// Root returns the root of the expression's syntax tree.
func (e *Expr) Root() Node {
	return e.n
}

// Names returns the names the expression uses as values, which evaluation
// requires to be constants.
func (e *Expr) Names() []string {
	return append(([]string)(nil), e.names...)
}

// Funcs returns the names the expression calls.
func (e *Expr) Funcs() []string {
	return append(([]string)(nil), e.funcs...)
}

// String creates a string representation of the parsed expression, with
// parentheses grouping each term.
func (e *Expr) String() string {
	return String(e.n)
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the operator to use when this one is selected.
	op Op
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of OpNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, OpAdd}
	case "-":
		return operator{1, false, OpSub}
	case "*":
		return operator{5, false, OpMul}
	case "/":
		return operator{5, false, OpDiv}
	case "%":
		return operator{5, false, OpMod}
	case "^", "**":
		return operator{15, true, OpPow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of OpNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, OpPos}
	case "-":
		return operator{10, true, OpNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, OpNone}
