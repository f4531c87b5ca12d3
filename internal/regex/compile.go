package regex

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kestrellang/flt/internal/automaton"
	"github.com/kestrellang/flt/internal/util"
)

// Naming selects how the DFA states synthesized by Compile are labeled.
type Naming int

const (
	// NamingDiscovery labels states q0, q1, ... in worklist discovery
	// order. This is the default, matching the wire format's examples.
	NamingDiscovery Naming = iota
	// NamingPositions labels states after their underlying firstpos/
	// followpos position sets, e.g. "{1,2,3}".
	NamingPositions
)

// Compile parses r and synthesizes a DFA directly from the annotated
// syntax tree via firstpos/lastpos/followpos (component G), without ever
// building an intermediate NFA. DFA state names are assigned q0, q1, ...
// in discovery order.
func Compile(r string) (automaton.Automaton, error) {
	return CompileNamed(r, NamingDiscovery)
}

// CompileNamed is Compile with an explicit state-naming scheme, selected
// by the optional presentation config (internal/config).
func CompileNamed(r string, naming Naming) (automaton.Automaton, error) {
	tree, err := Parse(r)
	if err != nil {
		return automaton.Automaton{}, err
	}
	return CompileTreeNamed(tree, naming), nil
}

// CompileTree runs the annotation + DFA-synthesis steps on an
// already-parsed tree (component G, steps 1-4), naming states by
// discovery order (q0, q1, ...).
func CompileTree(tree *Node) automaton.Automaton {
	return CompileTreeNamed(tree, NamingDiscovery)
}

// CompileTreeNamed is CompileTree with an explicit state-naming scheme.
func CompileTreeNamed(tree *Node, naming Naming) automaton.Automaton {
	wrapped := &Node{Kind: Cat, Left: tree, Right: &Node{Kind: Leaf, Value: reservedEndMarker}}

	followpos := map[int]util.KeySet[int]{}
	leafSymbol := map[int]string{}
	annotate(wrapped, newPositionCounter(), followpos, leafSymbol)

	endPos := wrapped.Right.Pos

	startPosns := sortedPositions(wrapped.Firstpos)
	seen := map[string][]int{}
	order := []string{}

	labelFor := func(posns []int) string {
		key := positionsKey(posns)
		if _, ok := seen[key]; !ok {
			seen[key] = posns
			order = append(order, key)
		}
		return key
	}

	startLabel := labelFor(startPosns)

	var transitions []automaton.Transition
	alphabetSet := util.StringSet{}
	var finals []string

	worklist := []string{startLabel}
	processed := map[string]bool{}

	for len(worklist) > 0 {
		label := worklist[0]
		worklist = worklist[1:]
		if processed[label] {
			continue
		}
		processed[label] = true

		posns := seen[label]

		if containsPos(posns, endPos) {
			finals = append(finals, label)
		}

		bySymbol := map[string][]int{}
		for _, p := range posns {
			sym := leafSymbol[p]
			if sym == reservedEndMarker {
				continue
			}
			bySymbol[sym] = append(bySymbol[sym], p)
		}

		for sym := range bySymbol {
			alphabetSet.Add(sym)
		}

		for _, sym := range util.OrderedKeys(bySymbol) {
			destSet := util.KeySet[int]{}
			for _, p := range bySymbol[sym] {
				destSet = destSet.Union(followpos[p])
			}
			destPosns := sortedPositions(destSet)
			if len(destPosns) == 0 {
				continue
			}
			destLabel := labelFor(destPosns)
			transitions = append(transitions, automaton.Transition{Source: label, Symbol: sym, Dest: destLabel})
			if !processed[destLabel] {
				worklist = append(worklist, destLabel)
			}
		}
	}

	// relabel discovery-order keys (sorted-position strings) per naming.
	names := map[string]string{}
	for i, key := range order {
		if naming == NamingPositions {
			names[key] = "{" + key + "}"
		} else {
			names[key] = stateName(i)
		}
	}

	renamed := make([]automaton.Transition, len(transitions))
	for i, t := range transitions {
		renamed[i] = automaton.Transition{Source: names[t.Source], Symbol: t.Symbol, Dest: names[t.Dest]}
	}
	renamedFinals := make([]string, len(finals))
	for i, f := range finals {
		renamedFinals[i] = names[f]
	}

	alphabet := util.OrderedKeys(alphabetSet)

	return automaton.New(names[startLabel], renamedFinals, alphabet, renamed)
}

type positionCounter struct {
	next int
}

func newPositionCounter() *positionCounter {
	return &positionCounter{next: 1}
}

func (c *positionCounter) take() int {
	p := c.next
	c.next++
	return p
}

// annotate implements the post-order traversal of component G, step 2,
// assigning leaf positions in left-to-right source order and populating
// followpos as a side effect.
func annotate(n *Node, counter *positionCounter, followpos map[int]util.KeySet[int], leafSymbol map[int]string) {
	switch n.Kind {
	case Leaf:
		if n.Value == "" {
			n.Nullable = true
			n.Firstpos = util.KeySet[int]{}
			n.Lastpos = util.KeySet[int]{}
			return
		}
		n.Pos = counter.take()
		n.Nullable = false
		n.Firstpos = util.KeySet[int]{n.Pos: true}
		n.Lastpos = util.KeySet[int]{n.Pos: true}
		leafSymbol[n.Pos] = n.Value

	case Star:
		annotate(n.Left, counter, followpos, leafSymbol)
		n.Nullable = true
		n.Firstpos = n.Left.Firstpos
		n.Lastpos = n.Left.Lastpos
		for p := range n.Left.Lastpos {
			addAllTo(followpos, p, n.Left.Firstpos)
		}

	case Or:
		annotate(n.Left, counter, followpos, leafSymbol)
		annotate(n.Right, counter, followpos, leafSymbol)
		n.Nullable = n.Left.Nullable || n.Right.Nullable
		n.Firstpos = n.Left.Firstpos.Union(n.Right.Firstpos)
		n.Lastpos = n.Left.Lastpos.Union(n.Right.Lastpos)

	case Cat:
		annotate(n.Left, counter, followpos, leafSymbol)
		annotate(n.Right, counter, followpos, leafSymbol)
		n.Nullable = n.Left.Nullable && n.Right.Nullable
		if n.Left.Nullable {
			n.Firstpos = n.Left.Firstpos.Union(n.Right.Firstpos)
		} else {
			n.Firstpos = n.Left.Firstpos
		}
		if n.Right.Nullable {
			n.Lastpos = n.Left.Lastpos.Union(n.Right.Lastpos)
		} else {
			n.Lastpos = n.Right.Lastpos
		}
		for p := range n.Left.Lastpos {
			addAllTo(followpos, p, n.Right.Firstpos)
		}
	}
}

func addAllTo(followpos map[int]util.KeySet[int], from int, positions util.KeySet[int]) {
	set, ok := followpos[from]
	if !ok {
		set = util.KeySet[int]{}
		followpos[from] = set
	}
	set.AddAll(positions)
}

func sortedPositions(s util.KeySet[int]) []int {
	out := make([]int, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

func positionsKey(posns []int) string {
	var sb strings.Builder
	for i, p := range posns {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	return sb.String()
}

func containsPos(posns []int, pos int) bool {
	for _, p := range posns {
		if p == pos {
			return true
		}
	}
	return false
}

func stateName(i int) string {
	return "q" + strconv.Itoa(i)
}
