package expr

import "strings"

// Parse builds an expression from its textual form.
//
// Grammar (Pratt, loosest first): + - · * / · unary - · ^ (right-assoc) ·
// atoms: numbers, identifiers, f(args), parenthesized expressions.
// Function names are case-insensitive.
func Parse(input string) (*Expr, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &ParseError{Kind: UnexpectedEOF, Pos: len(input), End: len(input)}
	}
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	e, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, &ParseError{Kind: TrailingInput, Pos: t.start, End: t.end}
	}

	return e, nil
}

// MustParse is Parse that panics on error. Meant for formula literals
// known at compile time.
func MustParse(input string) *Expr {
	e, err := Parse(input)
	if err != nil {
		panic(err)
	}

	return e
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}

	return t
}

var binaryOps = map[tokenKind]Op{
	tokPlus: OpAdd, tokMinus: OpSub, tokStar: OpMul, tokSlash: OpDiv, tokCaret: OpPow,
}

func (p *parser) expr(minPower int) (*Expr, error) {
	lhs, err := p.prefix()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := binaryOps[p.peek().kind]
		if !ok {
			return lhs, nil
		}
		left, right := op.bindingPower()
		if left < minPower {
			return lhs, nil
		}
		p.next()
		rhs, err := p.expr(right)
		if err != nil {
			return nil, err
		}
		lhs = Binary(op, lhs, rhs)
	}
}

func (p *parser) prefix() (*Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNum:
		return Num(t.num), nil
	case tokMinus:
		inner, err := p.expr(unaryMinusPower)
		if err != nil {
			return nil, err
		}

		return Neg(inner), nil
	case tokLParen:
		inner, err := p.expr(0)
		if err != nil {
			return nil, err
		}

		return inner, p.closeParen()
	case tokIdent:
		if p.peek().kind != tokLParen {
			return Var(t.text), nil
		}
		p.next()
		f, ok := LookupFunc(t.text)
		if !ok {
			return nil, &ParseError{Kind: UnknownFunction, Name: t.text, Pos: t.start, End: t.end}
		}

		return p.call(f)
	case tokEOF:
		return nil, &ParseError{Kind: UnexpectedEOF, Pos: t.start, End: t.end}
	default:
		return nil, &ParseError{Kind: UnexpectedToken, Detail: "expected expression", Pos: t.start, End: t.end}
	}
}

// call parses the argument list after "f(".
func (p *parser) call(f Func) (*Expr, error) {
	var args []*Expr
	if p.peek().kind != tokRParen {
		for {
			a, err := p.expr(0)
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if err := p.closeParen(); err != nil {
		return nil, err
	}

	return Call(f, args...), nil
}

func (p *parser) closeParen() error {
	t := p.peek()
	if t.kind == tokRParen {
		p.next()

		return nil
	}
	if t.kind == tokEOF {
		return &ParseError{Kind: UnexpectedEOF, Pos: t.start, End: t.end}
	}

	return &ParseError{Kind: UnexpectedToken, Detail: "expected ')'", Pos: t.start, End: t.end}
}
