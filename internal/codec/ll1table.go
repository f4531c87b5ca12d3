package codec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kestrellang/flt/internal/grammar"
)

// SerializeLL1Table renders table as
// "{nonterminals};initial;{terminals};[A,a,i][A,b,j]...", entries sorted by
// (terminal, nonterminal) with non-alphanumeric terminals sorted after
// alphanumeric ones.
func SerializeLL1Table(g *grammar.Grammar, table *grammar.LL1Table) string {
	nts := table.NonTerminals()
	terms := table.Terminals()

	var sb strings.Builder
	sb.WriteString(rawBracedList(nts))
	sb.WriteByte(';')
	sb.WriteString(g.Initial())
	sb.WriteByte(';')
	sb.WriteString(rawBracedList(terms))

	type cell struct {
		nt, term string
		rule     int
	}
	var cells []cell
	for _, a := range terms {
		for _, A := range nts {
			if i, ok := table.Get(A, a); ok {
				cells = append(cells, cell{nt: A, term: a, rule: i})
			}
		}
	}
	sort.SliceStable(cells, func(i, j int) bool {
		if cells[i].term != cells[j].term {
			return lessLL1Terminal(cells[i].term, cells[j].term)
		}
		return cells[i].nt < cells[j].nt
	})

	for _, c := range cells {
		fmt.Fprintf(&sb, "[%s,%s,%d]", c.nt, c.term, c.rule)
	}

	return sb.String()
}

// rawBracedList joins elems as given, without sorting: table.NonTerminals()
// and table.Terminals() already return their canonical order (grammar
// appearance order for nonterminals, alpha-then-non-alphanumeric for
// terminals), and re-sorting nonterminals lexicographically here would
// break that.
func rawBracedList(elems []string) string {
	return "{" + strings.Join(elems, ",") + "}"
}

func lessLL1Terminal(a, b string) bool {
	aAlpha, bAlpha := isAlphaSymbol(a), isAlphaSymbol(b)
	if aAlpha != bAlpha {
		return aAlpha
	}
	return a < b
}
