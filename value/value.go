// Package value implements the symbolic value container: a closed tagged
// union over a symbol, epsilon, operator, parenthesis, or non-terminal, used as the
// payload of every expression-tree node and as the key type for every
// partial function in this module.
package value

import (
	"fmt"

	verr "github.com/go-relang/relang/error"
)

// Symbol is the caller-supplied alphabet element. The spec leaves it as an
// opaque totally-ordered type; every example in the retrieval pack that
// builds automata over regex alphabets concretises it as a character, so
// this module does too.
type Symbol rune

// Operator enumerates the closed set of regex operators a tree node can
// carry. Declaration order here is also the tag's tie-break order within
// the Operator kind.
type Operator int

const (
	KleeneClosure Operator = iota
	PositiveClosure
	Optional
	SigmaClosure
	Concatenation
	VerticalBar
)

func (op Operator) String() string {
	switch op {
	case KleeneClosure:
		return "*"
	case PositiveClosure:
		return "+"
	case Optional:
		return "?"
	case SigmaClosure:
		return ":"
	case Concatenation:
		return "."
	case VerticalBar:
		return "|"
	default:
		return "?op"
	}
}

// IsUnary reports whether the operator takes a single operand (stored as
// the left child of its tree node, per spec.md §3).
func (op Operator) IsUnary() bool {
	switch op {
	case KleeneClosure, PositiveClosure, Optional:
		return true
	default:
		return false
	}
}

// Paren enumerates the two parenthesis kinds the tokeniser emits.
type Paren int

const (
	Left Paren = iota
	Right
)

func (p Paren) String() string {
	if p == Left {
		return "("
	}
	return ")"
}

// NonTerminal is a right-linear grammar non-terminal, also drawn from the
// symbolic-value container so that a grammar's N and T (package rlgrammar)
// can share the same ordered payload type Grammar → NFA and NFA → Grammar
// conversion already uses for states and symbols.
type NonTerminal string

// kind is the tag discriminant. Declaration order fixes the tag-index
// ordering spec.md §4.A requires.
type kind int

const (
	kindSymbol kind = iota
	kindEpsilon
	kindOperator
	kindParenthesis
	kindNonTerminal
)

// Value is the symbolic value container. It is a plain comparable struct so
// that it can be used directly as a map key by pfunc and as the payload of
// a tree node; equality and ordering only ever consult the fields belonging
// to the live tag.
type Value struct {
	k     kind
	sym   Symbol
	op    Operator
	paren Paren
	nt    NonTerminal
}

// NewSymbol constructs a symbolic value carrying a Symbol.
func NewSymbol(s Symbol) Value {
	return Value{k: kindSymbol, sym: s}
}

// Epsilon is the empty-word symbolic value.
func Epsilon() Value {
	return Value{k: kindEpsilon}
}

// NewOperator constructs a symbolic value carrying an Operator.
func NewOperator(op Operator) Value {
	return Value{k: kindOperator, op: op}
}

// NewParenthesis constructs a symbolic value carrying a Paren.
func NewParenthesis(p Paren) Value {
	return Value{k: kindParenthesis, paren: p}
}

// NewNonTerminal constructs a symbolic value carrying a NonTerminal.
func NewNonTerminal(nt NonTerminal) Value {
	return Value{k: kindNonTerminal, nt: nt}
}

func (v Value) IsSymbol() bool      { return v.k == kindSymbol }
func (v Value) IsEpsilon() bool     { return v.k == kindEpsilon }
func (v Value) IsOperator() bool    { return v.k == kindOperator }
func (v Value) IsParenthesis() bool { return v.k == kindParenthesis }
func (v Value) IsNonTerminal() bool { return v.k == kindNonTerminal }

// AsSymbol narrows the value to a Symbol, failing with WrongTag if the live
// tag is not kindSymbol.
func (v Value) AsSymbol() (Symbol, error) {
	if v.k != kindSymbol {
		return 0, &verr.CoreError{Cause: verr.WrongTag, Detail: "not a symbol"}
	}
	return v.sym, nil
}

// AsOperator narrows the value to an Operator, failing with WrongTag
// otherwise.
func (v Value) AsOperator() (Operator, error) {
	if v.k != kindOperator {
		return 0, &verr.CoreError{Cause: verr.WrongTag, Detail: "not an operator"}
	}
	return v.op, nil
}

// AsParenthesis narrows the value to a Paren, failing with WrongTag
// otherwise.
func (v Value) AsParenthesis() (Paren, error) {
	if v.k != kindParenthesis {
		return 0, &verr.CoreError{Cause: verr.WrongTag, Detail: "not a parenthesis"}
	}
	return v.paren, nil
}

// AsNonTerminal narrows the value to a NonTerminal, failing with WrongTag
// otherwise.
func (v Value) AsNonTerminal() (NonTerminal, error) {
	if v.k != kindNonTerminal {
		return "", &verr.CoreError{Cause: verr.WrongTag, Detail: "not a non-terminal"}
	}
	return v.nt, nil
}

// Equal reports whether two values carry the same tag and payload.
func (v Value) Equal(w Value) bool {
	return v.Compare(w) == 0
}

// Compare orders values by tag-index first, then by payload, giving a
// strict total order suitable for use as an ordered map key.
func (v Value) Compare(w Value) int {
	if v.k != w.k {
		if v.k < w.k {
			return -1
		}
		return 1
	}
	switch v.k {
	case kindSymbol:
		switch {
		case v.sym < w.sym:
			return -1
		case v.sym > w.sym:
			return 1
		default:
			return 0
		}
	case kindEpsilon:
		return 0
	case kindOperator:
		switch {
		case v.op < w.op:
			return -1
		case v.op > w.op:
			return 1
		default:
			return 0
		}
	case kindParenthesis:
		switch {
		case v.paren < w.paren:
			return -1
		case v.paren > w.paren:
			return 1
		default:
			return 0
		}
	case kindNonTerminal:
		switch {
		case v.nt < w.nt:
			return -1
		case v.nt > w.nt:
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}

// Less reports whether v sorts strictly before w.
func (v Value) Less(w Value) bool {
	return v.Compare(w) < 0
}

func (v Value) String() string {
	switch v.k {
	case kindSymbol:
		return fmt.Sprintf("%c", rune(v.sym))
	case kindEpsilon:
		return "ε"
	case kindOperator:
		return v.op.String()
	case kindParenthesis:
		return v.paren.String()
	case kindNonTerminal:
		return string(v.nt)
	default:
		return "?"
	}
}
