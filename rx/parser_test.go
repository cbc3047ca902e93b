package rx

import (
	"errors"
	"testing"

	verr "github.com/go-relang/relang/error"
	"github.com/go-relang/relang/tree"
	"github.com/go-relang/relang/value"
)

func TestTokenizeInsertsImplicitConcatenation(t *testing.T) {
	toks := insertConcatenation(tokenize([]rune("ab*c:d")))
	var kinds []tokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.kind)
	}
	want := []tokenKind{
		tokSymbol, tokConcat, tokSymbol, tokKleene, tokConcat, tokSymbol, tokSigma, tokSymbol, tokEOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("want %v tokens, got %v", len(want), len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token mismatch at %v; want %v, got %v", i, want, kinds)
		}
	}
}

func TestTokenizeDropsLiteralDot(t *testing.T) {
	toks := tokenize([]rune("a.b"))
	if len(toks) != 3 { // a, b, EOF
		t.Fatalf("want literal '.' dropped, got %v tokens", len(toks))
	}
}

func TestTokenizeEscapesNextCharacter(t *testing.T) {
	toks := tokenize([]rune(`a\*b`))
	if len(toks) != 4 { // a, *, b, EOF (escaped as a literal symbol, not the Kleene operator)
		t.Fatalf("want 4 tokens, got %v", len(toks))
	}
	if toks[1].kind != tokSymbol || toks[1].sym != '*' {
		t.Fatalf("want escaped '*' to be a literal symbol, got %v", toks[1])
	}
}

func TestTokenizeDropsTrailingBackslash(t *testing.T) {
	toks := tokenize([]rune(`a\`))
	if len(toks) != 2 { // a, EOF
		t.Fatalf("want trailing backslash dropped, got %v tokens", len(toks))
	}
}

func collectInfix(root tree.Cursor) []string {
	th := tree.Thread(root)
	var order []string
	for cur := th.First(); !cur.IsNull(); cur = th.Next(cur) {
		order = append(order, cur.Value().String())
	}
	return order
}

func TestParseAlternationRootPrecedesConcatenation(t *testing.T) {
	root, _, err := Parse("ab|c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op, err := root.Value().AsOperator()
	if err != nil || op != value.VerticalBar {
		t.Fatalf("want root '|', got %v", root.Value())
	}
	if !collectInfixEquals(root.LeftChild(), "a", ".", "b") {
		t.Fatalf("want left operand 'ab', got %v", collectInfix(root.LeftChild()))
	}
	if !root.RightChild().Value().Equal(value.NewSymbol('c')) {
		t.Fatalf("want right operand 'c', got %v", root.RightChild().Value())
	}
}

func collectInfixEquals(root tree.Cursor, want ...string) bool {
	got := collectInfix(root)
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// Under the explicit grammar of §4.E stage 3 (cat → sig ('.' sig)*, sig →
// unary (':' unary)*), concatenation is the looser of the two operators
// present, so it is the root whenever both appear without a grouping
// parenthesis: "ab*c:d" parses as (a.b*).(c:d), not as a sigma-closure
// whose left operand is the whole "ab*c" prefix.
func TestParseSigmaClosureBindsTighterThanConcatenation(t *testing.T) {
	root, _, err := Parse("ab*c:d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op, err := root.Value().AsOperator()
	if err != nil || op != value.Concatenation {
		t.Fatalf("want root '.', got %v", root.Value())
	}
	sigma, err := root.RightChild().Value().AsOperator()
	if err != nil || sigma != value.SigmaClosure {
		t.Fatalf("want right operand to be a sigma-closure, got %v", root.RightChild().Value())
	}
	if !root.RightChild().LeftChild().Value().Equal(value.NewSymbol('c')) {
		t.Fatalf("want sigma-closure left operand 'c', got %v", root.RightChild().LeftChild().Value())
	}
	if !root.RightChild().RightChild().Value().Equal(value.NewSymbol('d')) {
		t.Fatalf("want sigma-closure right operand 'd', got %v", root.RightChild().RightChild().Value())
	}
}

func TestParseOuterRedundantParenthesesAreInvariant(t *testing.T) {
	bare, _, err := Parse("ab|c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parenthesised, _, err := Parse("(ab|c)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !collectInfixEquals(parenthesised, collectInfix(bare)...) {
		t.Fatalf("want parenthesised parse to match bare parse; got %v vs %v", collectInfix(parenthesised), collectInfix(bare))
	}
}

func TestParseMultiplePostfixOperatorsSucceed(t *testing.T) {
	if _, _, err := Parse("aa+?*"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	bad := []string{"a(", "(a", "(|a)", ")a", "*a"}
	for _, pattern := range bad {
		t.Run(pattern, func(t *testing.T) {
			_, _, err := Parse(pattern)
			if !errors.Is(err, verr.SyntaxError) {
				t.Fatalf("pattern %q: want SyntaxError, got %v", pattern, err)
			}
		})
	}
}
