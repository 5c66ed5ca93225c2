// Package calc evaluates lines of semicolon-terminated integer
// expressions with +, -, *, / and parentheses.
package calc

import (
	"errors"
	"fmt"
)

// parser is a recursive-descent evaluator holding one token of
// lookahead.
type parser struct {
	lex lexer
	tok token
	val int
}

func (p *parser) next() error {
	tok, val, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok, p.val = tok, val
	return nil
}

// expression = term (('+' | '-') term)*
func (p *parser) expression() (int, error) {
	val, err := p.term()
	if err != nil {
		return 0, err
	}

	for {
		switch p.tok {
		case tokenAdd:
			if err := p.next(); err != nil {
				return 0, err
			}
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			val += rhs
		case tokenSub:
			if err := p.next(); err != nil {
				return 0, err
			}
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			val -= rhs
		default:
			return val, nil
		}
	}
}

// term = factor (('*' | '/') factor)*
func (p *parser) term() (int, error) {
	val, err := p.factor()
	if err != nil {
		return 0, err
	}

	for {
		switch p.tok {
		case tokenMul:
			if err := p.next(); err != nil {
				return 0, err
			}
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			val *= rhs
		case tokenDiv:
			if err := p.next(); err != nil {
				return 0, err
			}
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, errors.New("division by zero")
			}
			val /= rhs
		default:
			return val, nil
		}
	}
}

// factor = '(' expression ')' | number | '+' factor | '-' factor
func (p *parser) factor() (int, error) {
	switch p.tok {
	case tokenLparen:
		if err := p.next(); err != nil {
			return 0, err
		}
		val, err := p.expression()
		if err != nil {
			return 0, err
		}
		if p.tok != tokenRparen {
			return 0, fmt.Errorf("expected ')', got %s", p.tok)
		}
		if err := p.next(); err != nil {
			return 0, err
		}
		return val, nil
	case tokenNumber:
		val := p.val
		if err := p.next(); err != nil {
			return 0, err
		}
		return val, nil
	case tokenAdd:
		if err := p.next(); err != nil {
			return 0, err
		}
		return p.factor()
	case tokenSub:
		if err := p.next(); err != nil {
			return 0, err
		}
		val, err := p.factor()
		if err != nil {
			return 0, err
		}
		return -val, nil
	default:
		return 0, fmt.Errorf("unexpected %s", p.tok)
	}
}

// Eval evaluates one line of ';'-terminated statements and returns the
// value of each statement in order. On error the values of the
// statements that completed before the error are still returned.
func Eval(line string) ([]int, error) {
	p := &parser{lex: lexer{src: line}}
	if err := p.next(); err != nil {
		return nil, err
	}

	var values []int
	for p.tok != tokenEOF {
		val, err := p.expression()
		if err != nil {
			return values, err
		}
		if p.tok != tokenSemi {
			return values, fmt.Errorf("expected ';', got %s", p.tok)
		}
		if err := p.next(); err != nil {
			return values, err
		}
		values = append(values, val)
	}
	return values, nil
}
