package replace

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// splitLines splits on the single character '\n'. '\r\n' is never
// stripped here — callers supplying Windows line endings only match via
// normalizeWhitespace or unescapeText.
func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// dropTrailingEmptyLine drops a single trailing empty element, which is
// what a trailing "\n" in the original string produces after Split.
func dropTrailingEmptyLine(lines []string) []string {
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	return lines
}

// findLines returns find's lines with any trailing empty line dropped,
// mirroring how Layers 2, 3, and 8 treat a trailing newline in find as
// insignificant.
func findLines(find string) []string {
	return dropTrailingEmptyLine(splitLines(find))
}

func trimLine(s string) string {
	return strings.TrimSpace(s)
}

// normalizeWhitespace splits s on any run of whitespace and rejoins the
// tokens with single spaces, collapsing indentation differences and line
// folding alike.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// joinRange joins content's lines [start, end) with '\n', matching how
// they appear verbatim (no trailing newline is added after the last
// line in the window).
func joinRange(lines []string, start, end int) string {
	return strings.Join(lines[start:end], "\n")
}

// dedent strips from every non-blank line as many leading bytes as the
// smallest leading-whitespace byte count among the non-blank lines; the
// stripped bytes need not be the same characters on every line (a tab
// and a space each count as one). Blank lines are left untouched. If removing
// that many bytes from a particular line would split a multi-byte
// scalar value, that line is left-trimmed instead.
func dedent(lines []string) []string {
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := leadingWhitespaceBytes(line)
		if minIndent == -1 || n < minIndent {
			minIndent = n
		}
	}
	if minIndent <= 0 {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
			continue
		}
		if minIndent < len(line) && !utf8.RuneStart(line[minIndent]) {
			out[i] = strings.TrimLeft(line, " \t")
			continue
		}
		out[i] = line[minIndent:]
	}
	return out
}

func leadingWhitespaceBytes(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

// unescapeText resolves the backslash-escape alphabet {n, t, r, \, ', ",
// `, $, newline} into the corresponding literal character. A backslash
// followed by anything else is emitted verbatim.
func unescapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) {
			switch runes[i+1] {
			case 'n':
				b.WriteRune('\n')
				i++
				continue
			case 't':
				b.WriteRune('\t')
				i++
				continue
			case 'r':
				b.WriteRune('\r')
				i++
				continue
			case '\\':
				b.WriteRune('\\')
				i++
				continue
			case '\'':
				b.WriteRune('\'')
				i++
				continue
			case '"':
				b.WriteRune('"')
				i++
				continue
			case '`':
				b.WriteRune('`')
				i++
				continue
			case '$':
				b.WriteRune('$')
				i++
				continue
			case '\n':
				b.WriteRune('\n')
				i++
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// wordPattern builds a regular expression from the non-whitespace tokens
// of find, joined by \s+, each token escaped so its literal characters
// can't be misread as metacharacters.
func wordPattern(find string) *regexp.Regexp {
	tokens := strings.Fields(find)
	for i, t := range tokens {
		tokens[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(strings.Join(tokens, `\s+`))
}
