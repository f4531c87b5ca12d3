// Package codec implements the parsers and serializers for the wire
// formats defined by the external interfaces: the single-line automaton,
// grammar, FIRST/FOLLOW, and LL(1) table encodings (component K).
package codec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kestrellang/flt/internal/automaton"
	"github.com/kestrellang/flt/internal/flterr"
	"github.com/kestrellang/flt/internal/grammar"
)

// ParseAutomaton parses the single-line encoding:
//
//	<#states>;<initial>;{finals};{alphabet};<src>,<sym>,<dst>;...
//
// Whitespace anywhere is stripped first. The #states field is informational
// only; parsing never trusts it over the derived state set. This is a
// best-effort, tolerant parser per the error handling design: malformed
// input is handled gracefully rather than rejected outright, except where
// the minimum structural shape (at least the four semicolon-delimited
// header fields) is entirely absent.
func ParseAutomaton(line string) (automaton.Automaton, error) {
	line = stripWhitespace(line)
	if line == "" {
		return automaton.Automaton{}, flterr.EmptyInput()
	}

	fields := strings.Split(line, ";")
	if len(fields) < 4 {
		return automaton.Automaton{}, flterr.MalformedEncodingf(
			"automaton encoding needs at least 4 fields, got %d", len(fields))
	}

	initial := fields[1]
	finals := parseBracedList(fields[2])
	alphabet := parseBracedList(fields[3])

	var transitions []automaton.Transition
	for _, field := range fields[4:] {
		if field == "" {
			continue
		}
		parts := strings.Split(field, ",")
		if len(parts) != 3 {
			continue
		}
		transitions = append(transitions, automaton.Transition{
			Source: parts[0],
			Symbol: parts[1],
			Dest:   parts[2],
		})
	}

	return automaton.New(initial, finals, alphabet, transitions), nil
}

// SerializeAutomaton renders a to the canonical single-line encoding:
// finals and alphabet sorted lexicographically, transitions in
// (source, symbol, destination) order.
func SerializeAutomaton(a automaton.Automaton) string {
	var sb strings.Builder

	sb.WriteString(strconv.Itoa(len(a.States())))
	sb.WriteByte(';')
	sb.WriteString(a.Initial())
	sb.WriteByte(';')
	sb.WriteString(bracedList(a.Finals()))
	sb.WriteByte(';')
	sb.WriteString(bracedList(a.Alphabet()))

	for _, t := range a.IterTransitions() {
		sb.WriteByte(';')
		fmt.Fprintf(&sb, "%s,%s,%s", t.Source, t.Symbol, t.Dest)
	}

	return sb.String()
}

// ParseGrammar parses the single-line encoding head=body;head=body;....
// The first rule's head is the start symbol; each body is a contiguous
// sequence of single-character symbols, with "&" meaning epsilon; empty
// segments between semicolons are ignored.
func ParseGrammar(line string) (*grammar.Grammar, error) {
	line = stripWhitespace(line)
	if line == "" {
		return nil, flterr.EmptyInput()
	}

	g := grammar.New()

	for _, segment := range strings.Split(line, ";") {
		if segment == "" {
			continue
		}
		parts := strings.SplitN(segment, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, flterr.MalformedEncodingf("malformed grammar rule %q", segment)
		}

		head := parts[0]
		bodyText := parts[1]

		var body grammar.Production
		if bodyText == grammar.Epsilon.String() {
			body = grammar.Epsilon
		} else {
			for _, r := range bodyText {
				body = append(body, string(r))
			}
		}

		g.AddProduction(head, body)
	}

	return g, nil
}

// SerializeGrammar renders g back to the head=body;... encoding, rules in
// insertion order.
func SerializeGrammar(g *grammar.Grammar) string {
	var parts []string
	for _, rule := range g.Rules() {
		parts = append(parts, rule.Head+"="+rule.Body.String())
	}
	return strings.Join(parts, ";")
}

func stripWhitespace(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// parseBracedList splits a "{a,b,c}" field into its elements. A missing or
// malformed brace is tolerated: the braces are simply trimmed if present.
func parseBracedList(field string) []string {
	field = strings.TrimPrefix(field, "{")
	field = strings.TrimSuffix(field, "}")
	if field == "" {
		return nil
	}
	return strings.Split(field, ",")
}

func bracedList(elems []string) string {
	sorted := make([]string, len(elems))
	copy(sorted, elems)
	sort.Strings(sorted)
	return "{" + strings.Join(sorted, ",") + "}"
}
