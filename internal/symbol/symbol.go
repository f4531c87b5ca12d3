// Package symbol holds the single shared notion of a grammar/automaton
// symbol used by every other core package: a one-character string, with
// the two distinguished markers epsilon and end-of-input.
package symbol

// Symbol is a single character used as an automaton alphabet member or a
// grammar terminal/nonterminal. It is always exactly one rune wide,
// including the reserved markers Epsilon ("&") and EndOfInput ("$").
type Symbol = string

const (
	// Epsilon denotes the empty string. A transition on Epsilon may be
	// taken without consuming input; a FIRST/FOLLOW set containing Epsilon
	// means the corresponding string can derive the empty string.
	Epsilon Symbol = "&"

	// EndOfInput is the sentinel appended to input for grammar analysis.
	// It only ever appears in FOLLOW sets and LL(1) table columns.
	EndOfInput Symbol = "$"
)

// IsTerminal reports whether sym is a terminal symbol: any symbol whose
// first character is not an uppercase letter, including Epsilon and
// EndOfInput.
func IsTerminal(sym Symbol) bool {
	if sym == "" {
		return true
	}
	c := sym[0]
	return !(c >= 'A' && c <= 'Z')
}

// IsNonTerminal reports whether sym is a nonterminal: a symbol beginning
// with an uppercase letter.
func IsNonTerminal(sym Symbol) bool {
	return !IsTerminal(sym)
}
