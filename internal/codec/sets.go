package codec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kestrellang/flt/internal/grammar"
)

// SerializeSets renders s as "First(X) = {a,b,...}; Follow(X) = {a,b,...};
// ...", one First/Follow pair per nonterminal in the order nonterminals
// first appear in the grammar, set members sorted with letters and digits
// first and all other symbols (like "&" or "$") last.
func SerializeSets(g *grammar.Grammar, s *grammar.Sets) string {
	var parts []string
	for _, nt := range g.NonTerminals() {
		parts = append(parts, fmt.Sprintf("First(%s) = %s", nt, sortedBraced(s.FirstOfNonTerminal(nt))))
		parts = append(parts, fmt.Sprintf("Follow(%s) = %s", nt, sortedBraced(s.Follow(nt))))
	}

	return strings.Join(parts, "; ")
}

func sortedBraced(set map[string]bool) string {
	elems := make([]string, 0, len(set))
	for a := range set {
		elems = append(elems, a)
	}
	sort.Slice(elems, func(i, j int) bool {
		return lessSymbol(elems[i], elems[j])
	})
	return "{" + strings.Join(elems, ",") + "}"
}

// lessSymbol orders letters and digits before all other symbols (such as
// "&" and "$"), falling back to plain lexicographic order within each
// group, matching the LL(1) table's terminal ordering rule.
func lessSymbol(a, b string) bool {
	aAlpha, bAlpha := isAlphaSymbol(a), isAlphaSymbol(b)
	if aAlpha != bAlpha {
		return aAlpha
	}
	return a < b
}

func isAlphaSymbol(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
