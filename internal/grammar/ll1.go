package grammar

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/kestrellang/flt/internal/flterr"
	"github.com/kestrellang/flt/internal/symbol"
	"github.com/kestrellang/flt/internal/util"
)

// LL1Table is the partial mapping M[nonterminal, terminal] -> rule-index
// (component J), where rule-index is the 1-based position of the rule in
// Grammar.Rules() insertion order.
type LL1Table struct {
	g     *Grammar
	cells util.Matrix2[string, string, int]
}

// BuildLL1Table computes the LL(1) parse table for g (component J).
// Per the error handling design, a left-recursive or left-ambiguous
// grammar is refused outright with a diagnostic naming the offending
// cycle or pair, since the table would otherwise be ill-defined; any
// collision that still reaches table construction (which the two checks
// above should already have caught) is reported the same way.
func BuildLL1Table(g *Grammar) (*LL1Table, error) {
	s := Analyze(g)

	if cycle, found := s.DetectLeftRecursion(); found {
		return nil, flterr.LeftRecursivef("%s", strings.Join(cycle, " => "))
	}

	if ambiguities := s.DetectLeftAmbiguity(); len(ambiguities) > 0 {
		a := ambiguities[0]
		return nil, flterr.LeftAmbiguousf(
			"%s: %q and %q share {%s}", a.Head, a.BodyA.String(), a.BodyB.String(), strings.Join(a.Shared, ","))
	}

	cells := util.NewMatrix2[string, string, int]()

	for i, rule := range g.Rules() {
		ruleNum := i + 1
		first := s.First(rule.Body)

		for a := range first {
			if a == symbol.Epsilon {
				continue
			}
			if existing := cells.Get(rule.Head, a); existing != nil && *existing != ruleNum {
				return nil, flterr.MalformedEncodingf(
					"grammar is not LL(1): [%s,%s] selects both rule %d and rule %d", rule.Head, a, *existing, ruleNum)
			}
			cells.Set(rule.Head, a, ruleNum)
		}

		if first[symbol.Epsilon] {
			for b := range s.Follow(rule.Head) {
				if existing := cells.Get(rule.Head, b); existing != nil && *existing != ruleNum {
					return nil, flterr.MalformedEncodingf(
						"grammar is not LL(1): [%s,%s] selects both rule %d and rule %d", rule.Head, b, *existing, ruleNum)
				}
				cells.Set(rule.Head, b, ruleNum)
			}
		}
	}

	return &LL1Table{g: g, cells: cells}, nil
}

// Get returns the rule index selected for (A, a), or 0 and false if the
// cell is empty.
func (t *LL1Table) Get(A, a string) (int, bool) {
	v := t.cells.Get(A, a)
	if v == nil {
		return 0, false
	}
	return *v, true
}

// NonTerminals returns every nonterminal of the grammar, in the grammar's
// nonterminal order, including any whose table row is empty.
func (t *LL1Table) NonTerminals() []string {
	return t.g.NonTerminals()
}

// Terminals returns every terminal used as a table column, sorted with
// letters and digits first and all other symbols (like "$") last, per
// the wire format's sort rule.
func (t *LL1Table) Terminals() []string {
	seen := map[string]bool{}
	for _, nt := range t.NonTerminals() {
		for a := range t.cells[nt] {
			seen[a] = true
		}
	}

	terms := make([]string, 0, len(seen))
	for a := range seen {
		terms = append(terms, a)
	}
	sort.Slice(terms, func(i, j int) bool {
		return lessTerminal(terms[i], terms[j])
	})
	return terms
}

func lessTerminal(a, b string) bool {
	aAlpha, bAlpha := isAlphanumeric(a), isAlphanumeric(b)
	if aAlpha != bAlpha {
		return aAlpha
	}
	return a < b
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// String renders the table as a bordered, fixed-width grid.
func (t *LL1Table) String() string {
	nts := t.NonTerminals()
	terms := t.Terminals()

	data := [][]string{}
	topRow := append([]string{""}, terms...)
	data = append(data, topRow)

	for _, A := range nts {
		row := []string{A}
		for _, a := range terms {
			if i, ok := t.Get(A, a); ok {
				row = append(row, strconv.Itoa(i))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{
			TableBorders: true,
		}).
		String()
}
