// Package calc implements a restricted calculator over float64.
//
// Expressions use the usual infix arithmetic: "+", "-", "*", "/", "%", and
// "^" (or "**") for exponentiation, with parentheses, unary signs, and
// function calls like "sqrt(16)". "-2^2" is the same as "-(2^2)", and
// "2^3^2" is "2^(3^2)".
//
// Parsing never consults the set of known functions. Every name is resolved
// when the expression is evaluated, against fixed tables of constants and
// functions. Names and operators outside those tables are rejected with
// typed errors, so no input can do anything other than arithmetic.
//
// A parsed expression holds no evaluation state, and evaluating it is safe
// from any number of goroutines.
package calc
