package expr

import (
	"errors"
	"fmt"
)

// Sentinels matched by *ParseError and *EvalError through errors.Is.
var (
	ErrParse           = errors.New("expr: parse error")
	ErrUnknownVariable = errors.New("expr: unknown variable")
	ErrDivideByZero    = errors.New("expr: division by zero")
	ErrArity           = errors.New("expr: wrong number of arguments")
	ErrDomain          = errors.New("expr: domain error")
)

// ParseErrorKind classifies a ParseError.
type ParseErrorKind uint8

// Parse error kinds.
const (
	UnexpectedChar ParseErrorKind = iota
	UnexpectedEOF
	UnexpectedToken
	UnknownFunction
	TrailingInput
)

// ParseError locates a syntax problem in a formula. Pos and End are byte offsets.
type ParseError struct {
	Kind   ParseErrorKind
	Pos    int
	End    int
	Char   byte
	Name   string
	Detail string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("expr: unexpected character %q at position %d", e.Char, e.Pos)
	case UnexpectedEOF:
		return "expr: unexpected end of input"
	case UnknownFunction:
		return fmt.Sprintf("expr: unknown function %q at %d..%d", e.Name, e.Pos, e.End)
	case TrailingInput:
		return fmt.Sprintf("expr: trailing input at %d..%d", e.Pos, e.End)
	default:
		return fmt.Sprintf("expr: %s at %d..%d", e.Detail, e.Pos, e.End)
	}
}

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// EvalErrorKind classifies an EvalError.
type EvalErrorKind uint8

// Evaluation error kinds.
const (
	UnknownVariable EvalErrorKind = iota
	DivideByZero
	Arity
	Domain
)

// EvalError reports why a formula could not be evaluated.
//
// Name is set for UnknownVariable; Func, Expected and Got for Arity;
// Func (or Op) and Detail for Domain.
type EvalError struct {
	Kind     EvalErrorKind
	Name     string
	Func     Func
	Op       string
	Expected int
	Got      int
	Detail   string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case UnknownVariable:
		return fmt.Sprintf("expr: unknown variable %q", e.Name)
	case DivideByZero:
		return "expr: division by zero"
	case Arity:
		return fmt.Sprintf("expr: %s expects %d args, got %d", e.Func, e.Expected, e.Got)
	default:
		where := e.Op
		if e.Func != FuncNone {
			where = e.Func.String()
		}
		if where == "" {
			return "expr: domain error: " + e.Detail
		}

		return fmt.Sprintf("expr: %s: %s", where, e.Detail)
	}
}

// Is matches the sentinel of the error's kind.
func (e *EvalError) Is(target error) bool {
	switch e.Kind {
	case UnknownVariable:
		return target == ErrUnknownVariable
	case DivideByZero:
		return target == ErrDivideByZero
	case Arity:
		return target == ErrArity
	default:
		return target == ErrDomain
	}
}

func domainErr(f Func, op, format string, args ...any) *EvalError {
	return &EvalError{Kind: Domain, Func: f, Op: op, Detail: fmt.Sprintf(format, args...)}
}
