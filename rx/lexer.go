package rx

import "github.com/go-relang/relang/value"

// tokenize walks the input and emits one token per character, per spec.md
// §4.E stage 1: `\` consumes the next character as a literal symbol (a
// trailing, unpaired `\` is dropped silently, producing no token); `.` is
// dropped outright since concatenation in this surface is always implicit
// and there is no wildcard operator; every other character, whitespace
// included, becomes either the operator/parenthesis/ε token it spells or,
// failing that, a literal symbol.
func tokenize(input []rune) []token {
	var toks []token
	for i := 0; i < len(input); i++ {
		c := input[i]
		col := i
		switch c {
		case '\\':
			if i+1 >= len(input) {
				continue
			}
			i++
			toks = append(toks, token{kind: tokSymbol, sym: value.Symbol(input[i]), col: col})
		case '.':
			continue
		case '*':
			toks = append(toks, token{kind: tokKleene, col: col})
		case '+':
			toks = append(toks, token{kind: tokPositive, col: col})
		case '?':
			toks = append(toks, token{kind: tokOptional, col: col})
		case ':':
			toks = append(toks, token{kind: tokSigma, col: col})
		case '|':
			toks = append(toks, token{kind: tokVBar, col: col})
		case '(':
			toks = append(toks, token{kind: tokLParen, col: col})
		case ')':
			toks = append(toks, token{kind: tokRParen, col: col})
		case '&':
			toks = append(toks, token{kind: tokEpsilon, col: col})
		default:
			toks = append(toks, token{kind: tokSymbol, sym: value.Symbol(c), col: col})
		}
	}
	toks = append(toks, token{kind: tokEOF, col: len(input)})
	return toks
}

// insertConcatenation runs stage 2 of §4.E: a Concatenation token is
// inserted between every adjacent pair x, y where y can start an operand
// (Symbol, ε, or an opening parenthesis) and x cannot be immediately
// followed by an implicit operand (a binary operator still awaiting its
// right side, or an opening parenthesis itself). Never inserted before the
// first token.
func insertConcatenation(toks []token) []token {
	if len(toks) == 0 {
		return toks
	}
	out := make([]token, 0, len(toks)*2)
	out = append(out, toks[0])
	for i := 1; i < len(toks); i++ {
		x := toks[i-1]
		y := toks[i]
		if startsOperand(y) && !awaitsOperand(x) {
			out = append(out, token{kind: tokConcat, col: y.col})
		}
		out = append(out, y)
	}
	return out
}

func startsOperand(t token) bool {
	switch t.kind {
	case tokSymbol, tokEpsilon, tokLParen:
		return true
	default:
		return false
	}
}

func awaitsOperand(t token) bool {
	switch t.kind {
	case tokVBar, tokSigma, tokConcat, tokLParen:
		return true
	default:
		return false
	}
}
