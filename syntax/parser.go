package syntax

import (
	"fmt"
	"strings"
	"text/scanner"
)

type parser struct {
	s     scanner.Scanner
	eof   bool   // Have we reached eof yet?
	token string // Last token read
}

// Parse parses the formula written in input and returns the
// corresponding Formula. The connectives, from lowest to highest
// priority, are:
//
// - for an equivalence, the "<->" operator,
// - for an implication, the "->" operator,
// - for a disjunction ("or"), the "|" operator,
// - for a conjunction ("and"), the "&" operator,
// - for a negation, the "~" unary operator.
//
// The constants are written "T" and "F", and parentheses can be used to
// group subformulas.
func Parse(input string) (*Formula, error) {
	var s scanner.Scanner
	s.Init(strings.NewReader(input))
	p := parser{s: s}
	p.scan()
	f, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if !p.eof {
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	return f, nil
}

func isOperator(token string) bool {
	return token == "&" || token == "|" || token == "-" || token == "<" || token == ">"
}

func (p *parser) scan() {
	if p.eof {
		return
	}
	p.eof = (p.s.Scan() == scanner.EOF)
	p.token = p.s.TokenText()
}

func (p *parser) parseIff() (f *Formula, err error) {
	f, err = p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "<" {
		p.scan()
		if p.eof || p.token != "-" {
			return nil, fmt.Errorf("invalid token %q at %v", "<"+p.token, p.s.Pos())
		}
		p.scan()
		if p.eof || p.token != ">" {
			return nil, fmt.Errorf("invalid token %q at %v", "<-"+p.token, p.s.Pos())
		}
		p.scan()
		f2, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		return Iff(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseImplies() (f *Formula, err error) {
	f, err = p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "-" {
		p.scan()
		if p.eof || p.token != ">" {
			return nil, fmt.Errorf("invalid token %q at %v", "-"+p.token, p.s.Pos())
		}
		p.scan()
		f2, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Implies(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseOr() (f *Formula, err error) {
	f, err = p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "|" {
		p.scan()
		f2, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		return Or(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseAnd() (f *Formula, err error) {
	f, err = p.parseNot()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "&" {
		p.scan()
		f2, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		return And(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseNot() (f *Formula, err error) {
	if p.eof {
		return nil, fmt.Errorf("expected formula, found EOF at %s", p.s.Pos())
	}
	if p.token == "~" {
		p.scan()
		f, err = p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	}
	return p.parseBasic()
}

func (p *parser) parseBasic() (f *Formula, err error) {
	if p.eof {
		return nil, fmt.Errorf("expected formula, found EOF at %s", p.s.Pos())
	}
	if isOperator(p.token) || p.token == ")" {
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	if p.token == "(" {
		p.scan()
		f, err = p.parseIff()
		if err != nil {
			return nil, err
		}
		if p.eof {
			return nil, fmt.Errorf("expected closing parenthesis, found EOF at %s", p.s.Pos())
		}
		if p.token != ")" {
			return nil, fmt.Errorf("expected closing parenthesis, found %q at %s", p.token, p.s.Pos())
		}
		p.scan()
		return f, nil
	}
	defer p.scan()
	switch {
	case p.token == "T":
		return True(), nil
	case p.token == "F":
		return False(), nil
	case IsVariable(p.token):
		return Var(p.token), nil
	default:
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
}
