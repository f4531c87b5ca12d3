// Package automaton implements the immutable finite-automaton value and
// its reachability queries (components B and C): states, alphabet,
// initial/final states, and a transition relation, plus the generic BFS
// that both the determinizer and the minimizer build on.
package automaton

import (
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/kestrellang/flt/internal/symbol"
	"github.com/kestrellang/flt/internal/util"
)

// Transition is a single (source, symbol, destination) triple.
type Transition struct {
	Source string
	Symbol string
	Dest   string
}

// Automaton is an immutable finite automaton. Every operation that would
// logically "modify" an Automaton (Determinize, Minimize) instead returns
// a freshly built one; nothing here is ever mutated after New returns.
type Automaton struct {
	initial  string
	finals   util.StringSet
	alphabet util.StringSet
	states   util.StringSet
	trans    map[string]map[string]util.StringSet
}

// New builds an Automaton from an initial state, a set of final states, an
// alphabet, and the transition triples. States is derived as the union of
// every transition endpoint plus initial and finals; symbol.Epsilon is
// filtered out of the alphabet even if present in the argument, since an
// automaton's alphabet never contains it (epsilon moves are recorded in
// the transition relation under the reserved symbol, not the alphabet).
func New(initial string, finals []string, alphabet []string, transitions []Transition) Automaton {
	a := Automaton{
		initial:  initial,
		finals:   util.StringSetOf(finals),
		alphabet: util.StringSet{},
		states:   util.StringSet{},
		trans:    map[string]map[string]util.StringSet{},
	}
	if a.finals == nil {
		a.finals = util.StringSet{}
	}

	for _, sym := range alphabet {
		if sym != symbol.Epsilon {
			a.alphabet.Add(sym)
		}
	}

	a.states.Add(initial)
	for f := range a.finals {
		a.states.Add(f)
	}

	for _, t := range transitions {
		a.states.Add(t.Source)
		a.states.Add(t.Dest)

		bySym, ok := a.trans[t.Source]
		if !ok {
			bySym = map[string]util.StringSet{}
			a.trans[t.Source] = bySym
		}
		dests, ok := bySym[t.Symbol]
		if !ok {
			dests = util.StringSet{}
			bySym[t.Symbol] = dests
		}
		dests.Add(t.Dest)
	}

	return a
}

// Initial returns the automaton's start state.
func (a Automaton) Initial() string {
	return a.initial
}

// States returns every state label, sorted lexicographically.
func (a Automaton) States() []string {
	return sortedElements(a.states)
}

// Finals returns the final state labels, sorted lexicographically.
func (a Automaton) Finals() []string {
	return sortedElements(a.finals)
}

// Alphabet returns the input alphabet, sorted lexicographically. It never
// contains symbol.Epsilon.
func (a Automaton) Alphabet() []string {
	return sortedElements(a.alphabet)
}

// IsFinal reports whether q is one of the automaton's final states.
func (a Automaton) IsFinal(q string) bool {
	return a.finals.Has(q)
}

// Step returns the (possibly empty) set of destinations reachable from q
// on sym, sorted lexicographically. sym may be symbol.Epsilon even though
// Epsilon is never in Alphabet().
func (a Automaton) Step(q, sym string) []string {
	bySym, ok := a.trans[q]
	if !ok {
		return nil
	}
	dests, ok := bySym[sym]
	if !ok {
		return nil
	}
	return sortedElements(dests)
}

// IterTransitions yields every (source, symbol, destination) triple
// exactly once, in the canonical order required by the wire encoding:
// primary key source, secondary key symbol, tertiary key destination.
func (a Automaton) IterTransitions() []Transition {
	var out []Transition

	for _, src := range util.OrderedKeys(a.trans) {
		bySym := a.trans[src]
		for _, sym := range util.OrderedKeys(bySym) {
			for _, dst := range sortedElements(bySym[sym]) {
				out = append(out, Transition{Source: src, Symbol: sym, Dest: dst})
			}
		}
	}

	return out
}

// Reachable performs a BFS from q. If syms is non-empty, only transitions
// on those symbols are followed; otherwise every symbol in the automaton's
// alphabet is followed (symbol.Epsilon is never included in that default
// sweep — pass it explicitly to traverse epsilon moves). q is always
// included in the result.
func (a Automaton) Reachable(q string, syms ...string) []string {
	sweep := syms
	if len(sweep) == 0 {
		sweep = a.Alphabet()
	}

	visited := util.StringSet{}
	visited.Add(q)

	queue := arraylist.New()
	queue.Add(q)

	for !queue.Empty() {
		v, _ := queue.Get(0)
		queue.Remove(0)
		cur := v.(string)

		for _, sym := range sweep {
			for _, next := range a.Step(cur, sym) {
				if !visited.Has(next) {
					visited.Add(next)
					queue.Add(next)
				}
			}
		}
	}

	return sortedElements(visited)
}

// Productive returns every state from which some final state is reachable
// via the default (non-epsilon) sweep.
func (a Automaton) Productive() []string {
	productive := util.StringSet{}
	for _, q := range a.States() {
		for _, r := range a.Reachable(q) {
			if a.IsFinal(r) {
				productive.Add(q)
				break
			}
		}
	}
	return sortedElements(productive)
}

func sortedElements(s util.StringSet) []string {
	elems := s.Elements()
	sort.Strings(elems)
	return elems
}
