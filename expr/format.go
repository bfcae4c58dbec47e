package expr

import (
	"math"
	"strconv"
	"strings"
)

// precedence levels used by the printer; atoms bind tightest.
const (
	precNeg  = unaryMinusPower
	precAtom = 9
)

// String renders e with the minimal parentheses needed for Parse to rebuild
// the same tree. Integer-valued literals print without a fractional part.
func (e *Expr) String() string {
	var b strings.Builder
	e.format(&b)

	return b.String()
}

// precedence is the binding strength of e as seen by its parent.
func (e *Expr) precedence() int {
	switch e.kind {
	case KindBinary:
		l, _ := e.op.bindingPower()

		return l
	case KindNeg:
		return precNeg
	case KindNum:
		if e.num < 0 {
			return precNeg
		}
	}

	return precAtom
}

func (e *Expr) format(b *strings.Builder) {
	switch e.kind {
	case KindNum:
		b.WriteString(formatNum(e.num))
	case KindVar:
		b.WriteString(e.name)
	case KindNeg:
		b.WriteByte('-')
		inner := e.args[0]
		inner.formatChild(b, inner.kind == KindBinary || inner.precedence() == precNeg)
	case KindBinary:
		lhs, rhs := e.args[0], e.args[1]
		left, right := e.op.bindingPower()
		// The lhs of a right-associative ^ must bind strictly tighter.
		lhsParens := lhs.precedence() < left || (e.op == OpPow && lhs.precedence() <= left)
		lhs.formatChild(b, lhsParens)
		b.WriteByte(' ')
		b.WriteString(e.op.String())
		b.WriteByte(' ')
		rhs.formatChild(b, rhs.kind == KindBinary && rhs.precedence() < right)
	case KindCall:
		b.WriteString(e.fn.String())
		b.WriteByte('(')
		for i, a := range e.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.format(b)
		}
		b.WriteByte(')')
	}
}

func (e *Expr) formatChild(b *strings.Builder, parens bool) {
	if parens {
		b.WriteByte('(')
	}
	e.format(b)
	if parens {
		b.WriteByte(')')
	}
}

func formatNum(v float64) string {
	if r := math.Round(v); math.Abs(v-r) < 1e-10 && math.Abs(r) < 1<<53 {
		return strconv.FormatInt(int64(r), 10)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
