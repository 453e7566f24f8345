package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/config"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/pathutil"
)

// GrepTool searches files under a path for a regular expression,
// returning file:line:match triples. It is a plain line-by-line
// regexp.Regexp.Match sweep, not a tolerant matcher — the fuzzy-match chain in package
// replace is reserved for the edit tool.
type GrepTool struct {
	cfg *config.Config
}

func NewGrepTool(cfg *config.Config) *GrepTool {
	return &GrepTool{cfg: cfg}
}

func (t *GrepTool) Name() string { return "grep" }

func (t *GrepTool) Description() string {
	return "Search files under a path for a regular expression, returning matching lines with file and line number."
}

func (t *GrepTool) JSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"pattern": map[string]any{
				"type":        "string",
				"description": "RE2 regular expression to search for.",
			},
			"path": map[string]any{
				"type":        "string",
				"description": "File or directory to search, relative to the workspace root. Defaults to the workspace root.",
			},
		},
		"required": []string{"pattern"},
	}
}

type grepMatch struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Text string `json:"text"`
}

func (t *GrepTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	var p struct {
		Pattern string `json:"pattern"`
		Path    string `json:"path"`
	}
	if err := json.Unmarshal(args, &p); err != nil {
		return nil, SemanticErrorf("invalid arguments: %v", err)
	}
	if p.Pattern == "" {
		return nil, SemanticError("pattern is required")
	}
	if p.Path == "" {
		p.Path = "."
	}

	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		return nil, SemanticErrorf("invalid pattern: %v", err)
	}

	root, err := pathutil.Resolve(t.cfg.Workspace.Root, p.Path)
	if err != nil {
		return nil, SemanticErrorf("%v", err)
	}

	maxMatches := t.cfg.Tools.Grep.MaxMatches
	var matches []grepMatch
	truncated := false

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if truncated {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil || pathutil.LooksBinary(data) {
			return nil
		}

		rel, relErr := filepath.Rel(t.cfg.Workspace.Root, path)
		if relErr != nil {
			rel = path
		}

		line := 1
		start := 0
		for i, b := range data {
			if b != '\n' {
				continue
			}
			if re.Match(data[start:i]) {
				matches = append(matches, grepMatch{Path: rel, Line: line, Text: string(data[start:i])})
				if len(matches) >= maxMatches {
					truncated = true
					return filepath.SkipAll
				}
			}
			line++
			start = i + 1
		}
		if start < len(data) && re.Match(data[start:]) {
			matches = append(matches, grepMatch{Path: rel, Line: line, Text: string(data[start:])})
			if len(matches) >= maxMatches {
				truncated = true
			}
		}
		return nil
	})
	if walkErr != nil && walkErr != filepath.SkipAll {
		return nil, RuntimeErrorf("search: %v", walkErr)
	}

	result := map[string]any{
		"success": true,
		"matches": matches,
		"count":   len(matches),
	}
	if truncated {
		result["truncated"] = true
		result["message"] = fmt.Sprintf("results truncated to %d matches", maxMatches)
	}
	return result, nil
}
