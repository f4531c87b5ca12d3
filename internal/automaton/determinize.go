package automaton

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	gtreeset "github.com/emirpasic/gods/sets/treeset"

	"github.com/kestrellang/flt/internal/symbol"
)

// Determinize converts an NFA (possibly with epsilon moves) to an
// equivalent DFA via the subset construction (component D). Every DFA
// state label is the canonical encoding of a subset of NFA states: the
// NFA state names sorted lexicographically and concatenated with no
// separator, so that set equality and label equality coincide.
func Determinize(nfa Automaton) Automaton {
	closures := map[string]*gtreeset.Set{}
	for _, q := range nfa.States() {
		closures[q] = epsilonClosure(nfa, q)
	}

	startSet := closures[nfa.Initial()]
	startLabel := subsetLabel(startSet)

	seen := map[string]bool{startLabel: true}
	subsets := map[string]*gtreeset.Set{startLabel: startSet}

	worklist := arraylist.New()
	worklist.Add(startLabel)

	var transitions []Transition
	finals := map[string]bool{}
	alphabet := nfa.Alphabet()

	for !worklist.Empty() {
		v, _ := worklist.Get(0)
		worklist.Remove(0)
		curLabel := v.(string)
		curSet := subsets[curLabel]

		if setContainsAny(curSet, nfa.Finals()) {
			finals[curLabel] = true
		}

		for _, a := range alphabet {
			dest := gtreeset.NewWithStringComparator()

			curSet.Each(func(_ int, item interface{}) {
				q := item.(string)
				for _, q2 := range nfa.Step(q, a) {
					dest.Add(closures[q2].Values()...)
				}
			})

			if dest.Empty() {
				continue
			}

			destLabel := subsetLabel(dest)
			transitions = append(transitions, Transition{Source: curLabel, Symbol: a, Dest: destLabel})

			if !seen[destLabel] {
				seen[destLabel] = true
				subsets[destLabel] = dest
				worklist.Add(destLabel)
			}
		}
	}

	finalSlice := make([]string, 0, len(finals))
	for f := range finals {
		finalSlice = append(finalSlice, f)
	}

	return New(startLabel, finalSlice, alphabet, transitions)
}

// epsilonClosure computes reachable(q, Epsilon) as an ordered set, used
// both to seed the subset construction and to close over a destination
// subset's epsilon moves.
func epsilonClosure(a Automaton, q string) *gtreeset.Set {
	s := gtreeset.NewWithStringComparator()
	s.Add(a.Reachable(q, symbol.Epsilon)...)
	return s
}

// subsetLabel encodes a set of NFA state names as the sorted, unseparated
// concatenation that identifies it as a DFA state.
func subsetLabel(s *gtreeset.Set) string {
	var sb strings.Builder
	s.Each(func(_ int, item interface{}) {
		sb.WriteString(item.(string))
	})
	return sb.String()
}

func setContainsAny(s *gtreeset.Set, candidates []string) bool {
	for _, c := range candidates {
		if s.Contains(c) {
			return true
		}
	}
	return false
}
