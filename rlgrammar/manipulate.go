package rlgrammar

import "github.com/go-relang/relang/value"

// RemoveDead mirrors automaton's remove_dead on a right-linear grammar, per
// spec.md §4.L: marks productively-terminating non-terminals as good (a
// least fixed point starting from terminals — a production whose body is a
// bare terminal makes its head good immediately — and growing whenever some
// production expands entirely into good symbols), then discards every
// other non-terminal and every production mentioning one.
func RemoveDead(g *Grammar) *Grammar {
	good := map[value.Value]bool{}
	for changed := true; changed; {
		changed = false
		for _, p := range g.P {
			if good[p.Head] {
				continue
			}
			if p.isTerminal() || good[p.Body[1]] {
				good[p.Head] = true
				changed = true
			}
		}
	}

	out := &Grammar{S: g.S, T: cloneValues(g.T)}
	for _, nt := range g.N {
		if good[nt] {
			out.N = append(out.N, nt)
		}
	}
	for _, p := range g.P {
		if !good[p.Head] {
			continue
		}
		if !p.isTerminal() && !good[p.Body[1]] {
			continue
		}
		out.P = append(out.P, p)
	}
	return out
}

// RemoveUnreachable starts from S and propagates reachability through
// productions, discarding every non-terminal it never reaches and every
// production mentioning one, per spec.md §4.L.
func RemoveUnreachable(g *Grammar) *Grammar {
	reachable := map[value.Value]bool{g.S: true}
	queue := []value.Value{g.S}
	for len(queue) > 0 {
		nt := queue[0]
		queue = queue[1:]
		for _, p := range g.P {
			if !p.Head.Equal(nt) || p.isTerminal() {
				continue
			}
			b := p.Body[1]
			if !reachable[b] {
				reachable[b] = true
				queue = append(queue, b)
			}
		}
	}

	out := &Grammar{S: g.S, T: cloneValues(g.T)}
	for _, nt := range g.N {
		if reachable[nt] {
			out.N = append(out.N, nt)
		}
	}
	for _, p := range g.P {
		if !reachable[p.Head] {
			continue
		}
		if !p.isTerminal() && !reachable[p.Body[1]] {
			continue
		}
		out.P = append(out.P, p)
	}
	return out
}
