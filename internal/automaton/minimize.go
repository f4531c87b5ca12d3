package automaton

import (
	"sort"

	"github.com/cnf/structhash"
)

// partitionSignature is the per-state fingerprint partition refinement
// groups states by: for each alphabet symbol (in the fixed ordering
// alphabet), the index of the class its successor falls into, or -1 if
// the state has no transition on that symbol, plus whether the state is
// final. structhash.Hash turns it into a stable map key instead of
// hand-formatting the vector into a string.
type partitionSignature struct {
	Classes []int
	Final   bool
}

// Minimize converts a DFA into an equivalent DFA with the fewest states,
// via useless-state pruning followed by partition refinement (component
// E). The input is determinized first since the algorithm requires a
// deterministic starting point; determinizing an already-deterministic
// automaton is a no-op up to state relabeling.
func Minimize(dfa Automaton) Automaton {
	dfa = Determinize(dfa)

	reachable := toSet(dfa.Reachable(dfa.Initial()))
	productive := toSet(dfa.Productive())

	live := make([]string, 0, len(reachable))
	for q := range reachable {
		if productive[q] {
			live = append(live, q)
		}
	}
	sort.Strings(live)

	alphabet := dfa.Alphabet()

	partition := initialPartition(live, dfa)
	for {
		classOf := classIndex(partition)
		next := refine(partition, classOf, dfa, alphabet)
		if samePartition(partition, next) {
			break
		}
		partition = next
	}

	return buildQuotient(dfa, partition, alphabet, live)
}

func toSet(elems []string) map[string]bool {
	s := make(map[string]bool, len(elems))
	for _, e := range elems {
		s[e] = true
	}
	return s
}

// initialPartition starts with the two classes {finals, nonFinals} over
// the live (reachable and productive) states, dropping whichever class is
// empty.
func initialPartition(live []string, dfa Automaton) [][]string {
	var finals, nonFinals []string
	for _, q := range live {
		if dfa.IsFinal(q) {
			finals = append(finals, q)
		} else {
			nonFinals = append(nonFinals, q)
		}
	}

	var partition [][]string
	if len(finals) > 0 {
		partition = append(partition, finals)
	}
	if len(nonFinals) > 0 {
		partition = append(partition, nonFinals)
	}
	return partition
}

func classIndex(partition [][]string) map[string]int {
	idx := map[string]int{}
	for i, class := range partition {
		for _, q := range class {
			idx[q] = i
		}
	}
	return idx
}

// refine groups every state in partition by its partitionSignature under
// classOf, producing the next partition. Each resulting group is a subset
// of some prior class (never a merge across classes), so refinement is
// monotone and terminates.
func refine(partition [][]string, classOf map[string]int, dfa Automaton, alphabet []string) [][]string {
	var next [][]string

	for _, class := range partition {
		groups := map[string][]string{}
		order := []string{}

		for _, q := range class {
			sig := partitionSignature{Final: dfa.IsFinal(q)}
			for _, a := range alphabet {
				dests := dfa.Step(q, a)
				// dests[0] may name a pruned (reachable-but-dead) state,
				// which classOf has no entry for; that must read as -1,
				// not as the zero value of a missing map lookup.
				destClass, ok := -1, false
				if len(dests) > 0 {
					destClass, ok = classOf[dests[0]]
				}
				if !ok {
					sig.Classes = append(sig.Classes, -1)
					continue
				}
				sig.Classes = append(sig.Classes, destClass)
			}

			key, err := structhash.Hash(sig, 1)
			if err != nil {
				// structhash only fails on unsupported field kinds; our
				// signature is ints and a bool, so this never happens.
				panic(err)
			}

			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], q)
		}

		for _, key := range order {
			next = append(next, groups[key])
		}
	}

	return next
}

func samePartition(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	toSets := func(p [][]string) []map[string]bool {
		sets := make([]map[string]bool, len(p))
		for i, class := range p {
			sets[i] = toSet(class)
		}
		return sets
	}
	as, bs := toSets(a), toSets(b)

	for _, s1 := range as {
		found := false
		for _, s2 := range bs {
			if len(s1) == len(s2) && sameSet(s1, s2) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameSet(a, b map[string]bool) bool {
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// representative picks the lexicographically smallest member of a class.
func representative(class []string) string {
	rep := class[0]
	for _, q := range class[1:] {
		if q < rep {
			rep = q
		}
	}
	return rep
}

func buildQuotient(dfa Automaton, partition [][]string, alphabet []string, live []string) Automaton {
	repOf := map[string]string{}
	for _, class := range partition {
		rep := representative(class)
		for _, q := range class {
			repOf[q] = rep
		}
	}

	liveSet := toSet(live)

	var transitions []Transition
	seen := map[Transition]bool{}
	var finals []string
	finalSeen := map[string]bool{}

	for _, class := range partition {
		rep := representative(class)
		any := class[0]

		if dfa.IsFinal(any) && !finalSeen[rep] {
			finals = append(finals, rep)
			finalSeen[rep] = true
		}

		for _, a := range alphabet {
			dests := dfa.Step(any, a)
			if len(dests) == 0 {
				continue
			}
			dest := dests[0]
			if !liveSet[dest] {
				continue
			}
			t := Transition{Source: rep, Symbol: a, Dest: repOf[dest]}
			if !seen[t] {
				seen[t] = true
				transitions = append(transitions, t)
			}
		}
	}

	initial := repOf[dfa.Initial()]
	if initial == "" {
		// the initial state was itself pruned as useless: no reachable
		// final state exists, so the resulting language is empty.
		initial = dfa.Initial()
	}

	return New(initial, finals, alphabet, transitions)
}
