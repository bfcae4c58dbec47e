package expr

import "strconv"

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNum
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind       tokenKind
	num        float64
	text       string
	start, end int
}

var punct = map[byte]tokenKind{
	'+': tokPlus, '-': tokMinus, '*': tokStar, '/': tokSlash,
	'^': tokCaret, '(': tokLParen, ')': tokRParen, ',': tokComma,
}

// tokenize splits input into tokens, always terminated by tokEOF.
func tokenize(input string) ([]token, error) {
	var out []token
	pos := 0
	for {
		for pos < len(input) && isSpace(input[pos]) {
			pos++
		}
		if pos >= len(input) {
			return append(out, token{kind: tokEOF, start: pos, end: pos}), nil
		}

		c := input[pos]
		start := pos
		switch {
		case punct[c] != tokEOF:
			pos++
			out = append(out, token{kind: punct[c], start: start, end: pos})
		case isDigit(c) || c == '.':
			for pos < len(input) && isDigit(input[pos]) {
				pos++
			}
			if pos < len(input) && input[pos] == '.' {
				pos++
				for pos < len(input) && isDigit(input[pos]) {
					pos++
				}
			}
			v, err := strconv.ParseFloat(input[start:pos], 64)
			if err != nil {
				return nil, &ParseError{Kind: UnexpectedChar, Char: c, Pos: start, End: pos}
			}
			out = append(out, token{kind: tokNum, num: v, start: start, end: pos})
		case isIdentStart(c):
			for pos < len(input) && (isIdentStart(input[pos]) || isDigit(input[pos])) {
				pos++
			}
			out = append(out, token{kind: tokIdent, text: input[start:pos], start: start, end: pos})
		default:
			return nil, &ParseError{Kind: UnexpectedChar, Char: c, Pos: start, End: start + 1}
		}
	}
}

func isSpace(c byte) bool      { return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v' }
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c|0x20 >= 'a' && c|0x20 <= 'z') }
