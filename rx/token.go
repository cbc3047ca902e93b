package rx

import "github.com/go-relang/relang/value"

type tokenKind int

const (
	tokSymbol tokenKind = iota
	tokEpsilon
	tokKleene
	tokPositive
	tokOptional
	tokSigma
	tokConcat
	tokVBar
	tokLParen
	tokRParen
	tokEOF
)

// token carries its source column so a SyntaxError can point back at the
// offending character.
type token struct {
	kind tokenKind
	sym  value.Symbol
	col  int
}
