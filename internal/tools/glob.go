package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/config"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/pathutil"
)

// GlobTool finds files under a path whose relative name matches a glob
// pattern. It walks the tree itself rather than calling out to the shell,
// following symlinks never and descending at most MaxWalkDepth directories
// to bound the walk against cyclic or very deep trees.
type GlobTool struct {
	cfg *config.Config
}

func NewGlobTool(cfg *config.Config) *GlobTool {
	return &GlobTool{cfg: cfg}
}

func (t *GlobTool) Name() string { return "glob" }

func (t *GlobTool) Description() string {
	return "Find files matching a glob pattern. * matches any run of characters, including across " +
		"path separators; {a,b} matches alternatives."
}

func (t *GlobTool) JSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"pattern": map[string]any{
				"type":        "string",
				"description": "Glob pattern, e.g. \"*.go\" or \"src/*.ts\".",
			},
			"path": map[string]any{
				"type":        "string",
				"description": "Directory to search in, relative to the workspace root. Defaults to the workspace root.",
			},
			"max_results": map[string]any{
				"type":        "integer",
				"description": "Maximum number of results.",
				"minimum":     1,
			},
		},
		"required": []string{"pattern"},
	}
}

type globParams struct {
	Pattern    string `json:"pattern"`
	Path       string `json:"path"`
	MaxResults int    `json:"max_results"`
}

func (t *GlobTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	var p globParams
	if err := json.Unmarshal(args, &p); err != nil {
		return nil, SemanticErrorf("invalid arguments: %v", err)
	}
	if p.Pattern == "" {
		return nil, SemanticError("pattern is required")
	}
	if p.Path == "" {
		p.Path = "."
	}
	if p.MaxResults <= 0 {
		p.MaxResults = t.cfg.Tools.Glob.MaxResults
	}

	// No separator argument: a single "*" is allowed to cross "/", matching
	// the globset literal_separator(false) behavior glob.rs searches with.
	matcher, err := glob.Compile(p.Pattern)
	if err != nil {
		return nil, SemanticErrorf("invalid glob pattern: %v", err)
	}

	root, err := pathutil.Resolve(t.cfg.Workspace.Root, p.Path)
	if err != nil {
		return nil, SemanticErrorf("%v", err)
	}

	var matches []string
	if err := globWalk(root, root, matcher, t.cfg.Tools.Glob.MaxWalkDepth, p.MaxResults, 0, &matches); err != nil {
		return nil, RuntimeErrorf("search: %v", err)
	}
	sort.Strings(matches)

	if len(matches) == 0 {
		return map[string]any{
			"success": true,
			"matches": []string{},
			"message": "No files matching pattern: " + p.Pattern,
		}, nil
	}

	return map[string]any{
		"success": true,
		"matches": matches,
	}, nil
}

// globWalk recursively collects files under dir whose path relative to root
// matches matcher, stopping once max results are found or depth is
// exceeded. It uses os.Lstat's file-type bits rather than os.Stat so
// symlinks are never followed.
func globWalk(root, dir string, matcher glob.Glob, maxDepth, max, depth int, matches *[]string) error {
	if len(*matches) >= max || depth > maxDepth {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if len(*matches) >= max {
			return nil
		}

		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}
		if len(name) > 0 && name[0] == '.' || name == "node_modules" || name == "target" {
			continue
		}

		path := filepath.Join(dir, name)
		info, lerr := os.Lstat(path)
		if lerr != nil {
			continue
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			// Symlinks are skipped entirely, matching the original walker.
			continue
		case info.IsDir():
			if err := globWalk(root, path, matcher, maxDepth, max, depth+1, matches); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				continue
			}
			if matcher.Match(rel) {
				*matches = append(*matches, rel)
			}
		}
	}
	return nil
}
