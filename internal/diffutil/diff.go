// Package diffutil renders unified diffs between a file's old and new
// content for inclusion in tool results.
package diffutil

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Context is the number of unchanged lines kept around each hunk.
const Context = 3

// Unified renders a unified diff of oldContent -> newContent, labeling
// both sides with path.
func Unified(oldContent, newContent, path string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldContent),
		B:        difflib.SplitLines(newContent),
		FromFile: path,
		ToFile:   path,
		Context:  Context,
	}
	return difflib.GetUnifiedDiffString(diff)
}
