package replace

import "testing"

func TestReplaceExactMatch(t *testing.T) {
	content := "hello world"
	got, outcome := Replace(content, "world", "there", false)
	if outcome != Committed {
		t.Fatalf("outcome = %v, want Committed", outcome)
	}
	if want := "hello there"; got != want {
		t.Errorf("Replace() = %q, want %q", got, want)
	}
}

func TestReplaceFallsThroughToLineTrimmed(t *testing.T) {
	content := "func f() {\n    return 1\n}\n"
	find := "func f() {\nreturn 1\n}"
	got, outcome := Replace(content, find, "func f() {\n    return 2\n}", false)
	if outcome != Committed {
		t.Fatalf("outcome = %v, want Committed", outcome)
	}
	want := "func f() {\n    return 2\n}\n"
	if got != want {
		t.Errorf("Replace() = %q, want %q", got, want)
	}
}

func TestReplaceNoMatch(t *testing.T) {
	got, outcome := Replace("hello world", "goodbye", "x", false)
	if outcome != NoMatch {
		t.Fatalf("outcome = %v, want NoMatch", outcome)
	}
	if got != "hello world" {
		t.Errorf("Replace() mutated content on NoMatch: %q", got)
	}
}

func TestReplaceAmbiguousWithoutReplaceAll(t *testing.T) {
	content := "foo bar foo"
	got, outcome := Replace(content, "foo", "baz", false)
	if outcome != AmbiguousOnly {
		t.Fatalf("outcome = %v, want AmbiguousOnly", outcome)
	}
	if got != content {
		t.Errorf("Replace() mutated content on AmbiguousOnly: %q", got)
	}
}

func TestReplaceAllBypassesUniqueness(t *testing.T) {
	content := "foo bar foo baz foo"
	got, outcome := Replace(content, "foo", "X", true)
	if outcome != Committed {
		t.Fatalf("outcome = %v, want Committed", outcome)
	}
	want := "X bar X baz X"
	if got != want {
		t.Errorf("Replace() = %q, want %q", got, want)
	}
}

func TestReplaceEmptyFindNeverMatches(t *testing.T) {
	got, outcome := Replace("hello", "", "x", false)
	if outcome != NoMatch {
		t.Fatalf("outcome = %v, want NoMatch", outcome)
	}
	if got != "hello" {
		t.Errorf("Replace() = %q, want unchanged content", got)
	}
}

func TestReplaceUniqueCandidateAmongAmbiguousOnes(t *testing.T) {
	// "foo" alone would be ambiguous (it appears twice), but find is
	// "foo bar", which occurs exactly once, so Layer 1 commits it.
	content := "foo\nfoo bar\n"
	got, outcome := Replace(content, "foo bar", "baz", false)
	if outcome != Committed {
		t.Fatalf("outcome = %v, want Committed", outcome)
	}
	want := "foo\nbaz\n"
	if got != want {
		t.Errorf("Replace() = %q, want %q", got, want)
	}
}
