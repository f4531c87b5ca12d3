package grammar

import (
	"sort"

	"github.com/kestrellang/flt/internal/symbol"
	"github.com/kestrellang/flt/internal/util"
)

// Sets holds the FIRST and FOLLOW sets for every nonterminal of a
// Grammar, computed once at construction via monotone fixed-point
// iteration (component I). This sidesteps the cyclic-grammar recursion
// problem that a mutually-recursive grammar raises (e.g. A -> Bc, B ->
// Aa): growing every set simultaneously until nothing changes terminates
// regardless of cycles, unlike a per-call recursive search stack.
type Sets struct {
	g      *Grammar
	first  map[string]util.StringSet // per nonterminal
	follow map[string]util.StringSet // per nonterminal
}

// Analyze computes FIRST and FOLLOW for every nonterminal of g.
func Analyze(g *Grammar) *Sets {
	s := &Sets{
		g:      g,
		first:  map[string]util.StringSet{},
		follow: map[string]util.StringSet{},
	}
	for _, nt := range g.NonTerminals() {
		s.first[nt] = util.StringSet{}
		s.follow[nt] = util.StringSet{}
	}
	s.computeFirst()
	s.computeFollow()
	return s
}

func (s *Sets) computeFirst() {
	for {
		changed := false
		for _, nt := range s.g.NonTerminals() {
			before := len(s.first[nt])
			for _, body := range s.g.Bodies(nt) {
				bodySet, _ := s.firstOfSequence(body)
				s.first[nt].AddAll(bodySet)
			}
			if len(s.first[nt]) != before {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

func (s *Sets) computeFollow() {
	s.follow[s.g.Initial()].Add(symbol.EndOfInput)

	for {
		changed := false
		for _, rule := range s.g.Rules() {
			body := rule.Body
			if body.IsEpsilon() {
				continue
			}
			for i, X := range body {
				if symbol.IsTerminal(X) {
					continue
				}
				if s.follow[X] == nil {
					// X appears in a body but heads no rule of its own.
					s.follow[X] = util.StringSet{}
				}
				beta := body[i+1:]
				betaFirst, betaNullable := s.firstOfSequence(beta)

				before := len(s.follow[X])
				for a := range betaFirst {
					if a != symbol.Epsilon {
						s.follow[X].Add(a)
					}
				}
				if len(beta) == 0 || betaNullable {
					s.follow[X].AddAll(s.follow[rule.Head])
				}
				if len(s.follow[X]) != before {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
}

// firstOfSequence computes FIRST of a symbol sequence (a rule body, or a
// suffix of one), folding left to right: take FIRST(X) for each symbol X,
// union it in, and stop unless epsilon is in FIRST(X); the sequence is
// nullable iff every symbol was nullable (or the sequence is empty).
func (s *Sets) firstOfSequence(alpha []string) (util.StringSet, bool) {
	if len(alpha) == 0 || (len(alpha) == 1 && alpha[0] == symbol.Epsilon) {
		return util.StringSet{symbol.Epsilon: true}, true
	}

	result := util.StringSet{}
	nullable := true

	for _, X := range alpha {
		fx := s.firstOfSymbol(X)
		for a := range fx {
			if a != symbol.Epsilon {
				result.Add(a)
			}
		}
		if !fx.Has(symbol.Epsilon) {
			nullable = false
			break
		}
	}

	if nullable {
		result.Add(symbol.Epsilon)
	}

	return result, nullable
}

func (s *Sets) firstOfSymbol(X string) util.StringSet {
	if symbol.IsTerminal(X) {
		return util.StringSet{X: true}
	}
	return s.first[X]
}

// First returns FIRST(alpha) for an arbitrary symbol sequence.
func (s *Sets) First(alpha Production) util.StringSet {
	set, _ := s.firstOfSequence(alpha)
	return set.Copy()
}

// FirstOfNonTerminal returns the FIRST set computed for a single
// nonterminal.
func (s *Sets) FirstOfNonTerminal(nt string) util.StringSet {
	return s.first[nt].Copy()
}

// Follow returns FOLLOW(nt).
func (s *Sets) Follow(nt string) util.StringSet {
	return s.follow[nt].Copy()
}

// IsNullable reports whether nt can derive the empty string.
func (s *Sets) IsNullable(nt string) bool {
	return s.first[nt].Has(symbol.Epsilon)
}

// DetectLeftRecursion runs a DFS over nonterminals following the
// leftmost symbol of each body, continuing past a leftmost nonterminal X
// into its own bodies and, if FIRST(X) contains epsilon, past X into the
// next symbol of the same body (since that symbol becomes leftmost). It
// reports the first cycle found as the nonterminals visited from the
// cycle's start back to itself.
func (s *Sets) DetectLeftRecursion() (cycle []string, found bool) {
	stack := &util.Stack[string]{}

	var dfs func(nt string) []string
	dfs = func(nt string) []string {
		if stack.Contains(nt) {
			start := indexOf(stack.Items(), nt)
			path := append([]string{}, stack.Items()[start:]...)
			return append(path, nt)
		}

		stack.Push(nt)
		defer stack.Pop()

		for _, body := range s.g.Bodies(nt) {
			if body.IsEpsilon() {
				continue
			}
			for _, X := range body {
				if symbol.IsTerminal(X) {
					break
				}
				if cyc := dfs(X); cyc != nil {
					return cyc
				}
				if !s.IsNullable(X) {
					break
				}
			}
		}

		return nil
	}

	for _, nt := range s.g.NonTerminals() {
		if cyc := dfs(nt); cyc != nil {
			return cyc, true
		}
	}

	return nil, false
}

func indexOf(haystack []string, needle string) int {
	for i, v := range haystack {
		if v == needle {
			return i
		}
	}
	return -1
}

// Ambiguity reports a pair of bodies of the same nonterminal whose FIRST
// sets collide, making the grammar not left-factored (component I's
// pairwise FIRST-intersection check).
type Ambiguity struct {
	Head   string
	BodyA  Production
	BodyB  Production
	Shared []string // the shared FIRST symbols; empty if the collision is purely the both-nullable case
}

// DetectLeftAmbiguity reports, for every nonterminal, every pair of
// bodies whose FIRST sets overlap on a non-epsilon symbol or which are
// both nullable.
func (s *Sets) DetectLeftAmbiguity() []Ambiguity {
	var out []Ambiguity

	for _, nt := range s.g.NonTerminals() {
		bodies := s.g.Bodies(nt)
		for i := 0; i < len(bodies); i++ {
			fi, nullI := s.firstOfSequence(bodies[i])
			for j := i + 1; j < len(bodies); j++ {
				fj, nullJ := s.firstOfSequence(bodies[j])

				common := fi.Intersection(fj)
				common.Remove(symbol.Epsilon)
				shared := common.Elements()
				sort.Strings(shared)

				if len(shared) > 0 || (nullI && nullJ) {
					out = append(out, Ambiguity{
						Head:   nt,
						BodyA:  bodies[i],
						BodyB:  bodies[j],
						Shared: shared,
					})
				}
			}
		}
	}

	return out
}
