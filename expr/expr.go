package expr

import (
	"sort"
	"strings"
)

// Kind discriminates expression nodes.
type Kind uint8

// Node kinds.
const (
	KindNum Kind = iota
	KindVar
	KindBinary
	KindNeg
	KindCall
)

// Op is a binary operator.
type Op uint8

// Binary operators.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

var opSymbols = [...]string{OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpPow: "^"}

func (o Op) String() string { return opSymbols[o] }

// bindingPower returns the Pratt (left, right) binding powers. ^ is right-associative.
func (o Op) bindingPower() (int, int) {
	switch o {
	case OpAdd, OpSub:
		return 1, 2
	case OpMul, OpDiv:
		return 3, 4
	default:
		return 7, 6
	}
}

// unaryMinusPower sits between * and ^: -x^2 is -(x^2), -a*b is (-a)*b.
const unaryMinusPower = 5

// Func is a built-in function.
type Func uint8

// Built-in functions.
const (
	FuncNone Func = iota
	FuncLog2
	FuncLog10
	FuncLn
	FuncExp
	FuncSqrt
	FuncMin
	FuncMax
	FuncFloor
	FuncCeil
	FuncAbs
)

var funcNames = [...]string{
	FuncNone: "", FuncLog2: "log2", FuncLog10: "log10", FuncLn: "ln", FuncExp: "exp",
	FuncSqrt: "sqrt", FuncMin: "min", FuncMax: "max", FuncFloor: "floor", FuncCeil: "ceil", FuncAbs: "abs",
}

func (f Func) String() string { return funcNames[f] }

// Arity is the number of arguments f takes.
func (f Func) Arity() int {
	if f == FuncMin || f == FuncMax {
		return 2
	}

	return 1
}

// LookupFunc resolves a function name case-insensitively.
func LookupFunc(name string) (Func, bool) {
	lower := strings.ToLower(name)
	for f := FuncLog2; f <= FuncAbs; f++ {
		if funcNames[f] == lower {
			return f, true
		}
	}

	return FuncNone, false
}

// Expr is an immutable formula tree. Build one with Parse or the node
// constructors; a nil *Expr is not a valid expression.
type Expr struct {
	kind Kind
	num  float64
	name string
	op   Op
	fn   Func
	args []*Expr // binary: lhs, rhs; neg: operand; call: arguments
}

// Num returns a numeric literal.
func Num(v float64) *Expr { return &Expr{kind: KindNum, num: v} }

// Var returns a variable reference.
func Var(name string) *Expr { return &Expr{kind: KindVar, name: name} }

// Binary returns lhs op rhs.
func Binary(op Op, lhs, rhs *Expr) *Expr {
	return &Expr{kind: KindBinary, op: op, args: []*Expr{lhs, rhs}}
}

// Neg returns -x.
func Neg(x *Expr) *Expr { return &Expr{kind: KindNeg, args: []*Expr{x}} }

// Call returns f(args...). Arity is checked at evaluation time.
func Call(f Func, args ...*Expr) *Expr {
	return &Expr{kind: KindCall, fn: f, args: append([]*Expr(nil), args...)}
}

// Kind returns the node kind.
func (e *Expr) Kind() Kind { return e.kind }

// Value returns the literal of a KindNum node.
func (e *Expr) Value() float64 { return e.num }

// Name returns the variable name of a KindVar node.
func (e *Expr) Name() string { return e.name }

// Op returns the operator of a KindBinary node.
func (e *Expr) Op() Op { return e.op }

// Func returns the function of a KindCall node.
func (e *Expr) Func() Func { return e.fn }

// Args returns the children: (lhs, rhs), (operand) or call arguments.
func (e *Expr) Args() []*Expr { return append([]*Expr(nil), e.args...) }

// Variables returns the distinct variable names referenced, sorted.
func (e *Expr) Variables() []string {
	seen := make(map[string]struct{})
	e.walk(func(n *Expr) {
		if n.kind == KindVar {
			seen[n.name] = struct{}{}
		}
	})
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Substitute replaces every variable found in repl by its expression.
// Unchanged subtrees are shared with e.
func (e *Expr) Substitute(repl map[string]*Expr) *Expr {
	switch e.kind {
	case KindVar:
		if r, ok := repl[e.name]; ok {
			return r
		}

		return e
	case KindNum:
		return e
	}

	changed := false
	args := make([]*Expr, len(e.args))
	for i, a := range e.args {
		args[i] = a.Substitute(repl)
		changed = changed || args[i] != a
	}
	if !changed {
		return e
	}
	out := *e
	out.args = args

	return &out
}

// Equal reports structural equality.
func (e *Expr) Equal(o *Expr) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil || e.kind != o.kind || len(e.args) != len(o.args) {
		return false
	}
	switch e.kind {
	case KindNum:
		return e.num == o.num
	case KindVar:
		return e.name == o.name
	case KindBinary:
		if e.op != o.op {
			return false
		}
	case KindCall:
		if e.fn != o.fn {
			return false
		}
	}
	for i := range e.args {
		if !e.args[i].Equal(o.args[i]) {
			return false
		}
	}

	return true
}

func (e *Expr) walk(fn func(*Expr)) {
	fn(e)
	for _, a := range e.args {
		a.walk(fn)
	}
}

// MarshalText renders the canonical string form.
func (e *Expr) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText parses text into e.
func (e *Expr) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = *parsed

	return nil
}
