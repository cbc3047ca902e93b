package automaton

// AcceptanceList yields every word of length exactly n that m accepts,
// ordered with the leftmost symbol varying fastest (for Σ = {0,1}, n = 2:
// 00, 10, 01, 11), per spec.md §4.L. It is backed by an
// explicit lex-ordered tuple stepper rather than a generator: spec.md §9
// asks for the coroutine-like enumeration to be an explicit state machine,
// not a goroutine-and-channel generator, since there is nothing here that
// benefits from concurrency and a stepper is easier to reason about and to
// terminate.
func AcceptanceList(m *DFA, n int) [][]Symbol {
	alphabet := m.Sigma.Sorted()
	var words [][]Symbol
	if n == 0 {
		if m.F.Has(m.Q0) {
			words = append(words, []Symbol{})
		}
		return words
	}
	if len(alphabet) == 0 {
		return words
	}

	it := newTupleIterator(len(alphabet), n)
	for it.valid() {
		word := make([]Symbol, n)
		for i, idx := range it.indices {
			word[i] = alphabet[idx]
		}
		if m.Accepts(word) {
			words = append(words, word)
		}
		it.advance()
	}
	return words
}

// tupleIterator steps through every length-n tuple of indices into an
// alphabet of size base, in lexicographic order of the reversed tuple. The
// leftmost position (index 0) is the least significant: a carry out of a position advances
// the next position and wraps the current one back to zero, matching
// spec.md §4.L's "least-significant position is the leftmost symbol of
// the word" convention.
type tupleIterator struct {
	base    int
	indices []int
	done    bool
}

func newTupleIterator(base, n int) *tupleIterator {
	return &tupleIterator{base: base, indices: make([]int, n)}
}

func (it *tupleIterator) valid() bool {
	return !it.done
}

func (it *tupleIterator) advance() {
	for i := 0; i < len(it.indices); i++ {
		it.indices[i]++
		if it.indices[i] < it.base {
			return
		}
		it.indices[i] = 0
	}
	it.done = true
}
