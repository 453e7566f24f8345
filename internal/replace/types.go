// Package replace implements the fuzzy text-replacement engine: a fixed,
// ordered chain of matching strategies ("replacers") that locate a
// caller-supplied search string inside file content and substitute it,
// tolerating the whitespace, indentation, escaping, and context drift an
// LLM-authored edit commonly introduces.
package replace

// Candidate is a substring of content that a replacer proposes as
// equivalent to the search string. It is always a verbatim slice of the
// content it was found in — never a reconstruction — because the
// orchestrator locates it by substring search and must find it
// byte-identically.
type Candidate struct {
	Text string
}

// Outcome classifies how a call to Replace concluded.
type Outcome int

const (
	// Committed means a candidate was found and substituted.
	Committed Outcome = iota
	// NoMatch means no replacer produced a candidate that occurs in content.
	NoMatch
	// AmbiguousOnly means candidates existed but every one was non-unique
	// under single-replace mode. Caller-visible behavior is identical to
	// NoMatch; the distinction exists for diagnostics only.
	AmbiguousOnly
)

func (o Outcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case AmbiguousOnly:
		return "ambiguous_only"
	default:
		return "no_match"
	}
}
