package tools

import (
	"context"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/config"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/pathutil"
)

// skippedDirs are never descended into while listing.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"__pycache__":  true,
}

// ListTool lists the files and directories under a path.
type ListTool struct {
	cfg *config.Config
}

func NewListTool(cfg *config.Config) *ListTool {
	return &ListTool{cfg: cfg}
}

func (t *ListTool) Name() string { return "list" }

func (t *ListTool) Description() string {
	return "List files and directories under a path in the workspace, recursively."
}

func (t *ListTool) JSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": "Directory path, relative to the workspace root or absolute. Defaults to the workspace root.",
			},
		},
	}
}

// listEntry is one file or directory under the listed path.
type listEntry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size"`
}

func (t *ListTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	var p struct {
		Path string `json:"path"`
	}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &p); err != nil {
			return nil, SemanticErrorf("invalid arguments: %v", err)
		}
	}
	if p.Path == "" {
		p.Path = "."
	}

	root, err := pathutil.Resolve(t.cfg.Workspace.Root, p.Path)
	if err != nil {
		return nil, SemanticErrorf("%v", err)
	}

	var entries []listEntry
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path == root {
			return nil
		}
		if d.IsDir() && skippedDirs[d.Name()] {
			return filepath.SkipDir
		}
		rel, relErr := filepath.Rel(t.cfg.Workspace.Root, path)
		if relErr != nil {
			return nil
		}

		var size int64
		info, infoErr := d.Info()
		if infoErr == nil {
			size = info.Size()
		}

		if d.IsDir() {
			entries = append(entries, listEntry{Name: rel + string(filepath.Separator), IsDir: true})
		} else {
			entries = append(entries, listEntry{Name: rel, IsDir: false, Size: size})
		}
		return nil
	})
	if walkErr != nil {
		return nil, RuntimeErrorf("list directory: %v", walkErr)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return map[string]any{
		"success": true,
		"path":    p.Path,
		"entries": entries,
	}, nil
}
