package expr

import "math"

// Bindings resolves variable names during evaluation. problem.Size implements it.
type Bindings interface {
	Lookup(name string) (float64, bool)
}

// Vars is a map-backed Bindings.
type Vars map[string]float64

// Lookup implements Bindings.
func (v Vars) Lookup(name string) (float64, bool) {
	x, ok := v[name]

	return x, ok
}

// Evaluate computes e under b.
//
// A successful result is always finite: every operation that would produce
// NaN or ±Inf fails with a Domain *EvalError instead. An unbound variable is
// an UnknownVariable error, never zero.
func (e *Expr) Evaluate(b Bindings) (float64, error) {
	switch e.kind {
	case KindNum:
		return e.num, nil
	case KindVar:
		if b != nil {
			if v, ok := b.Lookup(e.name); ok {
				return v, nil
			}
		}

		return 0, &EvalError{Kind: UnknownVariable, Name: e.name}
	case KindNeg:
		v, err := e.args[0].Evaluate(b)
		if err != nil {
			return 0, err
		}

		return -v, nil
	case KindBinary:
		return e.evalBinary(b)
	default:
		return e.evalCall(b)
	}
}

func (e *Expr) evalBinary(b Bindings) (float64, error) {
	l, err := e.args[0].Evaluate(b)
	if err != nil {
		return 0, err
	}
	r, err := e.args[1].Evaluate(b)
	if err != nil {
		return 0, err
	}

	var out float64
	switch e.op {
	case OpAdd:
		out = l + r
	case OpSub:
		out = l - r
	case OpMul:
		out = l * r
	case OpDiv:
		if r == 0 {
			return 0, &EvalError{Kind: DivideByZero}
		}
		out = l / r
	case OpPow:
		if l < 0 && r != math.Trunc(r) {
			return 0, domainErr(FuncNone, "^", "negative base %v with non-integer exponent %v", l, r)
		}
		out = math.Pow(l, r)
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, domainErr(FuncNone, e.op.String(), "%v %s %v produced a non-finite result", l, e.op, r)
	}

	return out, nil
}

func (e *Expr) evalCall(b Bindings) (float64, error) {
	if want := e.fn.Arity(); len(e.args) != want {
		return 0, &EvalError{Kind: Arity, Func: e.fn, Expected: want, Got: len(e.args)}
	}
	a, err := e.args[0].Evaluate(b)
	if err != nil {
		return 0, err
	}

	switch e.fn {
	case FuncLog2, FuncLog10, FuncLn:
		if a <= 0 {
			return 0, domainErr(e.fn, "", "%s of non-positive %v", e.fn, a)
		}
		switch e.fn {
		case FuncLog2:
			return math.Log2(a), nil
		case FuncLog10:
			return math.Log10(a), nil
		}

		return math.Log(a), nil
	case FuncExp:
		v := math.Exp(a)
		if math.IsInf(v, 0) {
			return 0, domainErr(e.fn, "", "exp(%v) overflows", a)
		}

		return v, nil
	case FuncSqrt:
		if a < 0 {
			return 0, domainErr(e.fn, "", "sqrt of negative %v", a)
		}

		return math.Sqrt(a), nil
	case FuncAbs:
		return math.Abs(a), nil
	case FuncFloor:
		return math.Floor(a), nil
	case FuncCeil:
		return math.Ceil(a), nil
	}

	c, err := e.args[1].Evaluate(b)
	if err != nil {
		return 0, err
	}
	if e.fn == FuncMin {
		return math.Min(a, c), nil
	}

	return math.Max(a, c), nil
}
