package calc

import (
	"fmt"
	"strconv"
)

type token int

const (
	tokenEOF token = iota
	tokenNumber
	tokenAdd
	tokenSub
	tokenMul
	tokenDiv
	tokenLparen
	tokenRparen
	tokenSemi
)

func (t token) String() string {
	switch t {
	case tokenEOF:
		return "end of input"
	case tokenNumber:
		return "number"
	case tokenAdd:
		return "'+'"
	case tokenSub:
		return "'-'"
	case tokenMul:
		return "'*'"
	case tokenDiv:
		return "'/'"
	case tokenLparen:
		return "'('"
	case tokenRparen:
		return "')'"
	case tokenSemi:
		return "';'"
	default:
		return "unknown"
	}
}

// lexer splits one line into calculator tokens. Unlike the pipeline
// grammar, unknown characters are real errors here.
type lexer struct {
	src string
	pos int
}

const eof byte = 0

func (l *lexer) current() byte {
	if l.pos >= len(l.src) {
		return eof
	}
	return l.src[l.pos]
}

func (l *lexer) advance() {
	if l.pos < len(l.src) {
		l.pos++
	}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

// next returns the next token. The value is meaningful only for
// tokenNumber.
func (l *lexer) next() (token, int, error) {
	for isSpace(l.current()) {
		l.advance()
	}

	if isDigit(l.current()) {
		start := l.pos
		for isDigit(l.current()) {
			l.advance()
		}
		n, err := strconv.Atoi(l.src[start:l.pos])
		if err != nil {
			return tokenEOF, 0, fmt.Errorf("number out of range: %s", l.src[start:l.pos])
		}
		return tokenNumber, n, nil
	}

	switch ch := l.current(); ch {
	case '+':
		l.advance()
		return tokenAdd, 0, nil
	case '-':
		l.advance()
		return tokenSub, 0, nil
	case '*':
		l.advance()
		return tokenMul, 0, nil
	case '/':
		l.advance()
		return tokenDiv, 0, nil
	case '(':
		l.advance()
		return tokenLparen, 0, nil
	case ')':
		l.advance()
		return tokenRparen, 0, nil
	case ';':
		l.advance()
		return tokenSemi, 0, nil
	case eof:
		return tokenEOF, 0, nil
	default:
		return tokenEOF, 0, fmt.Errorf("unexpected character %q", ch)
	}
}
