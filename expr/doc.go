// Package expr parses and evaluates the symbolic overhead formulas attached
// to reduction rules, such as "num_vertices + num_edges" or
// "3 * num_vars ^ 2 + 1.44 ^ num_clauses".
//
// Formulas are parsed once, at catalog build time, into an immutable *Expr.
// Evaluation is a tree walk against Bindings (variable name → value) and
// either yields a finite float64 or a typed *EvalError: an unbound name is
// never read as zero, and domain violations (log of a non-positive number,
// a fractional power of a negative base, overflow) never leak NaN or Inf.
//
// Operators, loosest first: + and -, * and /, unary -, ^ (right-associative).
// Functions: log2 log10 ln exp sqrt floor ceil abs (one argument) and
// min max (two), matched case-insensitively.
//
// String prints the minimal parenthesization that Parse maps back to the
// same tree, so formulas survive export and Substitute-based composition.
package expr
