// Package rx implements the extended regex surface spec.md §4.E and §6
// describe: a tokeniser, an implicit-concatenation pass, and a recursive
// descent parser that climbs five grammar levels into an expression
// tree built with the arena-backed cursor from package tree.
package rx

import (
	verr "github.com/go-relang/relang/error"
	"github.com/go-relang/relang/tree"
	"github.com/go-relang/relang/value"
)

type parser struct {
	toks  []token
	pos   int
	arena *tree.Arena
}

// Parse compiles a pattern string into an expression tree. The returned
// arena owns every node of the tree; the caller is expected to run the
// rewrites in package tree (EliminateSigmaClosure, PruneEpsilon) before
// handing the tree to either synthesis algorithm.
func Parse(pattern string) (tree.Cursor, *tree.Arena, error) {
	toks := insertConcatenation(tokenize([]rune(pattern)))
	p := &parser{toks: toks, arena: tree.NewArena()}

	root, err := p.parseAlt()
	if err != nil {
		return tree.Cursor{}, nil, err
	}
	if p.peek().kind != tokEOF {
		if p.peek().kind == tokRParen {
			return tree.Cursor{}, nil, verr.NewSyntaxError(synErrDanglingParen, p.peek().col)
		}
		return tree.Cursor{}, nil, verr.NewSyntaxError(synErrExpectedOperand, p.peek().col)
	}
	return root, p.arena, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) consume(k tokenKind) bool {
	if p.peek().kind == k {
		p.advance()
		return true
	}
	return false
}

// parseAlt: alt → cat ( '|' cat )*
func (p *parser) parseAlt() (tree.Cursor, error) {
	left, err := p.parseCat()
	if err != nil {
		return tree.Cursor{}, err
	}
	for p.peek().kind == tokVBar {
		p.advance()
		left.RightAscent()
		left.SetValue(value.NewOperator(value.VerticalBar))
		right, err := p.parseCat()
		if err != nil {
			return tree.Cursor{}, err
		}
		left.SetRightChild(right)
	}
	return left, nil
}

// parseCat: cat → sig ( '.' sig )*
func (p *parser) parseCat() (tree.Cursor, error) {
	left, err := p.parseSig()
	if err != nil {
		return tree.Cursor{}, err
	}
	for p.peek().kind == tokConcat {
		p.advance()
		left.RightAscent()
		left.SetValue(value.NewOperator(value.Concatenation))
		right, err := p.parseSig()
		if err != nil {
			return tree.Cursor{}, err
		}
		left.SetRightChild(right)
	}
	return left, nil
}

// parseSig: sig → unary ( ':' unary )*
func (p *parser) parseSig() (tree.Cursor, error) {
	left, err := p.parseUnary()
	if err != nil {
		return tree.Cursor{}, err
	}
	for p.peek().kind == tokSigma {
		p.advance()
		left.RightAscent()
		left.SetValue(value.NewOperator(value.SigmaClosure))
		right, err := p.parseUnary()
		if err != nil {
			return tree.Cursor{}, err
		}
		left.SetRightChild(right)
	}
	return left, nil
}

// parseUnary: unary → atom ( '*' | '+' | '?' )*
func (p *parser) parseUnary() (tree.Cursor, error) {
	operand, err := p.parseAtom()
	if err != nil {
		return tree.Cursor{}, err
	}
	for {
		switch p.peek().kind {
		case tokKleene:
			p.advance()
			operand = p.wrapUnary(operand, value.KleeneClosure)
		case tokPositive:
			p.advance()
			operand = p.wrapUnary(operand, value.PositiveClosure)
		case tokOptional:
			p.advance()
			operand = p.wrapUnary(operand, value.Optional)
		default:
			return operand, nil
		}
	}
}

func (p *parser) wrapUnary(operand tree.Cursor, op value.Operator) tree.Cursor {
	n := tree.NewTreeIn(p.arena, value.NewOperator(op))
	n.SetLeftChild(operand)
	return n
}

// parseAtom: atom → '(' alt ')' | Symbol | ε
func (p *parser) parseAtom() (tree.Cursor, error) {
	tok := p.peek()
	switch tok.kind {
	case tokSymbol:
		p.advance()
		return tree.NewTreeIn(p.arena, value.NewSymbol(tok.sym)), nil
	case tokEpsilon:
		p.advance()
		return tree.NewTreeIn(p.arena, value.Epsilon()), nil
	case tokLParen:
		p.advance()
		inner, err := p.parseAlt()
		if err != nil {
			return tree.Cursor{}, err
		}
		if !p.consume(tokRParen) {
			return tree.Cursor{}, verr.NewSyntaxError(synErrUnclosedParen, tok.col)
		}
		return inner, nil
	case tokRParen:
		return tree.Cursor{}, verr.NewSyntaxError(synErrDanglingParen, tok.col)
	default:
		return tree.Cursor{}, verr.NewSyntaxError(synErrExpectedOperand, tok.col)
	}
}
