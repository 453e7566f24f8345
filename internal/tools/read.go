package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/config"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/pathutil"
)

// ReadTool reads a file's content in cat -n style: each returned line is
// prefixed with its 1-based line number and truncated independently to a
// scalar-value budget, walking the cut point back to a rune boundary so it
// never splits a multi-byte character.
type ReadTool struct {
	cfg *config.Config
}

func NewReadTool(cfg *config.Config) *ReadTool {
	return &ReadTool{cfg: cfg}
}

func (t *ReadTool) Name() string { return "read" }

func (t *ReadTool) Description() string {
	return "Read a file with line numbers, in cat -n format. Supports offset and limit for large " +
		"files. Each line is truncated independently if it's very long; truncation never splits a " +
		"multi-byte character."
}

func (t *ReadTool) JSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": "File path, relative to the workspace root or absolute.",
			},
			"offset": map[string]any{
				"type":        "integer",
				"description": "Starting line number, 1-based. Default: 1.",
				"minimum":     1,
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum number of lines to return.",
				"minimum":     1,
			},
		},
		"required": []string{"path"},
	}
}

type readParams struct {
	Path   string `json:"path"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

func (t *ReadTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	var p readParams
	if err := json.Unmarshal(args, &p); err != nil {
		return nil, SemanticErrorf("invalid arguments: %v", err)
	}
	if p.Path == "" {
		return nil, SemanticError("path is required")
	}
	if p.Offset <= 0 {
		p.Offset = 1
	}
	if p.Limit <= 0 {
		p.Limit = t.cfg.Tools.Read.DefaultLimit
	}

	fullPath, err := pathutil.Resolve(t.cfg.Workspace.Root, p.Path)
	if err != nil {
		return nil, SemanticErrorf("%v", err)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, SemanticErrorf("%s does not exist", p.Path)
		}
		return nil, RuntimeErrorf("read file: %v", err)
	}

	if pathutil.LooksBinary(data) {
		return nil, RuntimeErrorf("%s looks like a binary file", p.Path)
	}

	lines := strings.Split(string(data), "\n")
	// A trailing newline produces one empty trailing element that isn't a
	// real line; drop it so line counts match the file's actual line count.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	totalLines := len(lines)

	start := p.Offset - 1
	if start > totalLines {
		start = totalLines
	}
	end := start + p.Limit
	if end > totalLines {
		end = totalLines
	}

	lineNumWidth := len(fmt.Sprintf("%d", end))
	var out strings.Builder
	for i, line := range lines[start:end] {
		lineNum := start + i + 1
		truncated, _ := truncateScalars(line, t.cfg.Tools.Read.MaxLineScalars)
		fmt.Fprintf(&out, "%*d\t%s\n", lineNumWidth, lineNum, truncated)
	}

	more := totalLines - end
	if more > 0 {
		fmt.Fprintf(&out, "\n... (%d more lines, %d total)\n", more, totalLines)
	}

	return map[string]any{
		"success": true,
		"path":    p.Path,
		"content": out.String(),
	}, nil
}

// truncateScalars cuts s to at most maxScalars Unicode scalar values,
// always at a rune boundary, reporting whether s was cut.
func truncateScalars(s string, maxScalars int) (string, bool) {
	if maxScalars <= 0 {
		return s, false
	}
	count := 0
	for i := range s {
		if count == maxScalars {
			return s[:i], true
		}
		count++
	}
	return s, false
}
