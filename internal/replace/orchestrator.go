package replace

import "strings"

// Replace locates find inside content by trying each replacer in chain,
// in order, and substitutes the first usable candidate with newText.
//
// A candidate is usable only if it occurs verbatim in content. Unless
// replaceAll is set, a candidate is also required to be unique: if it
// occurs more than once, it is rejected as ambiguous and the search
// continues with the next candidate, then the next replacer — it never
// falls back to "pick the first occurrence". A replacer that finds
// nothing usable simply defers to the next one; the chain stops at the
// first replacer to produce a winning candidate.
//
// replaceAll short-circuits the uniqueness check: the first usable
// candidate from the first replacer to produce one has every one of its
// occurrences replaced, and Replace returns immediately.
//
// find == "" never matches anything here; an empty search string is a
// caller-level concern (new-file creation), not a replacement.
func Replace(content, find, newText string, replaceAll bool) (string, Outcome) {
	result, _, outcome := ReplaceDetailed(content, find, newText, replaceAll)
	return result, outcome
}

// ReplaceDetailed behaves exactly like Replace but additionally reports
// the name of the replacer layer that produced the committed candidate,
// for diagnostics. layer is "" when outcome is not Committed.
func ReplaceDetailed(content, find, newText string, replaceAll bool) (result string, layer string, outcome Outcome) {
	if find == "" {
		return content, "", NoMatch
	}

	sawAmbiguous := false

	for _, r := range chain {
		for _, c := range r.fn(content, find) {
			if c.Text == "" {
				continue
			}
			first := strings.Index(content, c.Text)
			if first < 0 {
				continue
			}

			if replaceAll {
				return strings.ReplaceAll(content, c.Text, newText), r.name, Committed
			}

			last := strings.LastIndex(content, c.Text)
			if first == last {
				return content[:first] + newText + content[first+len(c.Text):], r.name, Committed
			}
			sawAmbiguous = true
		}
	}

	if sawAmbiguous {
		return content, "", AmbiguousOnly
	}
	return content, "", NoMatch
}
