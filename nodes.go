package calc

import (
	"strconv"
	"strings"
)

// Node is a node in the syntax tree of an expression. The node types are
// exactly Number, Ident, Unary, Binary, and Call; no other package can add
// more. Trees are never modified by this package once built, so they may be
// shared freely.
type Node interface {
	fmt(b *strings.Builder)
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Ident is a bare name, which must name a constant.
type Ident struct {
	Name string
}

// Unary applies a sign to an operand.
type Unary struct {
	Op Op
	X  Node
}

// Binary applies an infix operator.
type Binary struct {
	Op   Op
	L, R Node
}

// Call is a function call. Args may be empty.
type Call struct {
	Func string
	Args []Node
}

// Op identifies an operator.
type Op int8

const (
	OpNone Op = iota

	OpAdd // L + R
	OpSub // L - R
	OpMul // L * R
	OpDiv // L / R
	OpPow // L ^ R
	OpMod // L % R, with the sign of L

	OpNeg // -X
	OpPos // +X
)

// String returns the operator's symbol.
func (op Op) String() string {
	switch op {
	case OpAdd, OpPos:
		return "+"
	case OpSub, OpNeg:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpMod:
		return "%"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Each node writes itself fully parenthesized so that the result parses back
// to the same tree.

func (n *Number) fmt(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	b.WriteByte(')')
}

func (n *Ident) fmt(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Name)
	b.WriteByte(')')
}

func (n *Unary) fmt(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Op.String())
	n.X.fmt(b)
	b.WriteByte(')')
}

func (n *Binary) fmt(b *strings.Builder) {
	b.WriteByte('(')
	n.L.fmt(b)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
	b.WriteByte(' ')
	n.R.fmt(b)
	b.WriteByte(')')
}

func (n *Call) fmt(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Func)
	b.WriteByte('(')
	for i, a := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.fmt(b)
	}
	b.WriteString("))")
}

// String formats a syntax tree with every term parenthesized.
func String(n Node) string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}
