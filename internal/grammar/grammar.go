// Package grammar implements the context-free grammar value and its
// FIRST/FOLLOW/left-recursion/left-factoring analyses and LL(1) table
// builder (components H, I, and J).
package grammar

import (
	"strings"

	"github.com/kestrellang/flt/internal/symbol"
	"github.com/kestrellang/flt/internal/util"
)

// Production is a body: a sequence of terminal/nonterminal symbols. An
// epsilon production is the single-element Production{symbol.Epsilon}.
type Production []string

// Epsilon is the canonical epsilon production.
var Epsilon = Production{symbol.Epsilon}

// IsEpsilon reports whether p is the epsilon production.
func (p Production) IsEpsilon() bool {
	return len(p) == 1 && p[0] == symbol.Epsilon
}

// Equal reports whether p and o contain the same symbols in the same
// order.
func (p Production) Equal(o Production) bool {
	return util.EqualSlices([]string(p), []string(o))
}

func (p Production) String() string {
	if p.IsEpsilon() {
		return symbol.Epsilon
	}
	return strings.Join(p, "")
}

// Rule is one numbered production of the grammar: a head nonterminal and
// one of its bodies.
type Rule struct {
	Head string
	Body Production
}

// Grammar is an ordered, immutable (after construction) collection of
// rules. The initial symbol is the head of the first rule added; rules
// keep their insertion order, which the LL(1) table numbers starting at
// 1 (component J depends on this order being stable).
type Grammar struct {
	initial   string
	rules     []Rule
	byHead    map[string][]int // index into rules, per head, in order
	ntOrder   []string         // nonterminals in order of first appearance
	seenHead  map[string]bool
	seenBody  map[string]map[string]bool // head -> body string -> present
}

// New returns an empty Grammar.
func New() *Grammar {
	return &Grammar{
		byHead:   map[string][]int{},
		seenHead: map[string]bool{},
		seenBody: map[string]map[string]bool{},
	}
}

// AddProduction appends body as a production of head. Duplicate bodies
// for the same head are silently deduplicated, as the data model
// requires. The first head ever added becomes the grammar's initial
// symbol.
func (g *Grammar) AddProduction(head string, body Production) {
	if !g.seenHead[head] {
		g.seenHead[head] = true
		g.ntOrder = append(g.ntOrder, head)
		if g.initial == "" {
			g.initial = head
		}
	}

	bodies, ok := g.seenBody[head]
	if !ok {
		bodies = map[string]bool{}
		g.seenBody[head] = bodies
	}
	key := body.String()
	if bodies[key] {
		return
	}
	bodies[key] = true

	idx := len(g.rules)
	g.rules = append(g.rules, Rule{Head: head, Body: body})
	g.byHead[head] = append(g.byHead[head], idx)
}

// Initial returns the start symbol: the head of the first rule added.
func (g *Grammar) Initial() string {
	return g.initial
}

// NonTerminals returns every nonterminal head, in the order it first
// appeared.
func (g *Grammar) NonTerminals() []string {
	out := make([]string, len(g.ntOrder))
	copy(out, g.ntOrder)
	return out
}

// Rules returns every (head, body) rule in insertion order; rule i
// (0-based here, 1-based in the wire format and in LL(1) table numbering)
// is Rules()[i].
func (g *Grammar) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	copy(out, g.rules)
	return out
}

// Bodies returns the productions of head, in the order they were added.
func (g *Grammar) Bodies(head string) []Production {
	idxs := g.byHead[head]
	out := make([]Production, len(idxs))
	for i, idx := range idxs {
		out[i] = g.rules[idx].Body
	}
	return out
}

// HasNonTerminal reports whether head has at least one rule.
func (g *Grammar) HasNonTerminal(head string) bool {
	return g.seenHead[head]
}
