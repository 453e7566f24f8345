package replace

import "strings"

// replacerFunc maps (content, find) to the candidates a single strategy
// claims are equivalent to find. A replacer may return zero, one, or
// several candidates; every candidate it returns must be a verbatim
// substring of content (or the orchestrator will simply find it absent
// and skip it).
type replacerFunc func(content, find string) []Candidate

type namedReplacer struct {
	name string
	fn   replacerFunc
}

// chain is the fixed, ordered sequence of nine replacers. Order is load
// bearing: the first replacer to yield a usable candidate wins, so the
// strategies run cheapest-and-strictest first. Never reorder this slice
// at runtime — there is no registration mechanism, on purpose.
var chain = []namedReplacer{
	{"exact", exactReplacer},
	{"line_trimmed", lineTrimmedReplacer},
	{"block_anchor", blockAnchorReplacer},
	{"whitespace_normalized", whitespaceNormalizedReplacer},
	{"indentation_flexible", indentationFlexibleReplacer},
	{"escape_normalized", escapeNormalizedReplacer},
	{"trimmed_boundary", trimmedBoundaryReplacer},
	{"context_aware", contextAwareReplacer},
	{"multi_occurrence", multiOccurrenceReplacer},
}

// exactReplacer (Layer 1) always proposes find itself, unexamined.
func exactReplacer(content, find string) []Candidate {
	if find == "" {
		return nil
	}
	return []Candidate{{Text: find}}
}

// lineTrimmedReplacer (Layer 2) slides a window the length of find's
// lines across content's lines, matching after trimming each line, and
// emits the original window text for every full match.
func lineTrimmedReplacer(content, find string) []Candidate {
	fLines := findLines(find)
	n := len(fLines)
	if n == 0 {
		return nil
	}
	cLines := splitLines(content)

	var out []Candidate
	for i := 0; i+n <= len(cLines); i++ {
		match := true
		for j := 0; j < n; j++ {
			if trimLine(cLines[i+j]) != trimLine(fLines[j]) {
				match = false
				break
			}
		}
		if match {
			out = append(out, Candidate{Text: joinRange(cLines, i, i+n)})
		}
	}
	return out
}

// blockAnchorReplacer (Layer 3) anchors on find's first and last trimmed
// lines. A unique anchor pair is accepted outright; multiple pairs are
// disambiguated by mean interior-line similarity, accepted only at or
// above a 0.3 threshold.
func blockAnchorReplacer(content, find string) []Candidate {
	fLines := findLines(find)
	n := len(fLines)
	if n < 3 {
		return nil
	}
	first := trimLine(fLines[0])
	last := trimLine(fLines[n-1])
	cLines := splitLines(content)

	type region struct{ i, j int }
	var regions []region
	for i := 0; i < len(cLines); i++ {
		if trimLine(cLines[i]) != first {
			continue
		}
		for j := i + 2; j < len(cLines); j++ {
			if trimLine(cLines[j]) == last {
				regions = append(regions, region{i, j})
				break
			}
		}
	}
	if len(regions) == 0 {
		return nil
	}
	emit := func(r region) Candidate {
		return Candidate{Text: joinRange(cLines, r.i, r.j+1)}
	}
	if len(regions) == 1 {
		return []Candidate{emit(regions[0])}
	}

	bestIdx := -1
	bestMean := -1.0
	findInterior := n - 2
	for idx, r := range regions {
		interior := r.j - r.i - 1
		m := interior
		if findInterior < m {
			m = findInterior
		}
		sum, count := 0.0, 0
		for k := 0; k < m; k++ {
			a := trimLine(cLines[r.i+1+k])
			b := trimLine(fLines[1+k])
			if a == "" && b == "" {
				continue
			}
			sum += Similarity(a, b)
			count++
		}
		mean := 1.0
		if count > 0 {
			mean = sum / float64(count)
		}
		if mean > bestMean {
			bestMean = mean
			bestIdx = idx
		}
	}
	if bestIdx < 0 || bestMean < 0.3 {
		return nil
	}
	return []Candidate{emit(regions[bestIdx])}
}

// whitespaceNormalizedReplacer (Layer 4) collapses whitespace runs to a
// single space before comparing, with a regex fallback that locates the
// raw (un-normalized) run of tokens inside a single content line.
func whitespaceNormalizedReplacer(content, find string) []Candidate {
	cLines := splitLines(content)
	fNorm := normalizeWhitespace(find)

	var out []Candidate
	if fNorm != "" {
		for _, line := range cLines {
			if normalizeWhitespace(line) == fNorm {
				out = append(out, Candidate{Text: line})
				continue
			}
			if strings.Contains(normalizeWhitespace(line), fNorm) {
				if m := wordPattern(find).FindString(line); m != "" {
					out = append(out, Candidate{Text: m})
				}
			}
		}
	}

	fRaw := splitLines(find)
	if len(fRaw) > 1 {
		n := len(fRaw)
		for i := 0; i+n <= len(cLines); i++ {
			block := joinRange(cLines, i, i+n)
			if normalizeWhitespace(block) == fNorm {
				out = append(out, Candidate{Text: block})
			}
		}
	}
	return out
}

// indentationFlexibleReplacer (Layer 5) dedents both find and every
// aligned content window before comparing, tolerating a uniform
// indentation shift between the two.
func indentationFlexibleReplacer(content, find string) []Candidate {
	fLines := splitLines(find)
	n := len(fLines)
	if n == 0 {
		return nil
	}
	fDedented := dedent(fLines)
	cLines := splitLines(content)

	var out []Candidate
	for i := 0; i+n <= len(cLines); i++ {
		window := cLines[i : i+n]
		if linesEqual(dedent(window), fDedented) {
			out = append(out, Candidate{Text: joinRange(cLines, i, i+n)})
		}
	}
	return out
}

func linesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// escapeNormalizedReplacer (Layer 6) resolves find's backslash escapes
// and looks for the literal text they encode, directly and window by
// window.
func escapeNormalizedReplacer(content, find string) []Candidate {
	uf := unescapeText(find)
	var out []Candidate
	seen := make(map[string]bool)

	if uf != "" && strings.Contains(content, uf) {
		out = append(out, Candidate{Text: uf})
		seen[uf] = true
	}

	ufLines := splitLines(uf)
	n := len(ufLines)
	if n > 0 {
		cLines := splitLines(content)
		for i := 0; i+n <= len(cLines); i++ {
			block := joinRange(cLines, i, i+n)
			if seen[block] {
				continue
			}
			if unescapeText(block) == uf {
				out = append(out, Candidate{Text: block})
				seen[block] = true
			}
		}
	}
	return out
}

// trimmedBoundaryReplacer (Layer 7) strips leading/trailing whitespace
// from find as a whole and looks for that trimmed text, directly and
// window by window. It emits nothing when find is already trimmed, since
// there would be nothing left to gain over Layer 1.
func trimmedBoundaryReplacer(content, find string) []Candidate {
	t := strings.TrimSpace(find)
	if t == find {
		return nil
	}

	var out []Candidate
	seen := make(map[string]bool)
	if t != "" && strings.Contains(content, t) {
		out = append(out, Candidate{Text: t})
		seen[t] = true
	}

	fLines := splitLines(find)
	n := len(fLines)
	cLines := splitLines(content)
	for i := 0; i+n <= len(cLines); i++ {
		block := joinRange(cLines, i, i+n)
		if seen[block] {
			continue
		}
		if strings.TrimSpace(block) == t {
			out = append(out, Candidate{Text: block})
			seen[block] = true
		}
	}
	return out
}

// contextAwareReplacer (Layer 8) anchors on find's first and last
// trimmed lines like Layer 3, but scans content left to right and
// commits to the first anchor pair spanning exactly find's line count in
// which at least half of the interior lines are equal after trimming,
// emitting at most one candidate in total.
func contextAwareReplacer(content, find string) []Candidate {
	fLines := findLines(find)
	n := len(fLines)
	if n < 3 {
		return nil
	}
	cLines := splitLines(content)
	first := trimLine(fLines[0])
	last := trimLine(fLines[n-1])

	for i := 0; i < len(cLines); i++ {
		if trimLine(cLines[i]) != first {
			continue
		}
		j := -1
		for k := i + 2; k < len(cLines); k++ {
			if trimLine(cLines[k]) == last {
				j = k
				break
			}
		}
		if j == -1 {
			continue
		}
		if j-i+1 != n {
			continue
		}

		interior := j - i - 1
		findInterior := n - 2
		m := interior
		if findInterior < m {
			m = findInterior
		}
		matches, total := 0, 0
		for k := 0; k < m; k++ {
			a := trimLine(cLines[i+1+k])
			b := trimLine(fLines[1+k])
			if a == "" && b == "" {
				continue
			}
			total++
			if a == b {
				matches++
			}
		}
		frac := 1.0
		if total > 0 {
			frac = float64(matches) / float64(total)
		}
		if frac >= 0.5 {
			return []Candidate{{Text: joinRange(cLines, i, j+1)}}
		}
	}
	return nil
}

// multiOccurrenceReplacer (Layer 9) emits find once per non-overlapping
// occurrence, left to right. It is the vehicle replace_all relies on
// once every fuzzier layer has already been tried and failed.
func multiOccurrenceReplacer(content, find string) []Candidate {
	if find == "" {
		return nil
	}
	var out []Candidate
	pos := 0
	for {
		idx := strings.Index(content[pos:], find)
		if idx < 0 {
			break
		}
		out = append(out, Candidate{Text: find})
		pos += idx + len(find)
	}
	return out
}
