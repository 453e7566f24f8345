package tools

import (
	"context"
	"encoding/json"
	"os"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/config"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/diffutil"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/pathutil"
)

// WriteTool overwrites a file's entire content, creating it (and any
// missing parent directories) if it doesn't exist.
type WriteTool struct {
	cfg *config.Config
}

func NewWriteTool(cfg *config.Config) *WriteTool {
	return &WriteTool{cfg: cfg}
}

func (t *WriteTool) Name() string { return "write" }

func (t *WriteTool) Description() string {
	return "Write content to a file, replacing it entirely. Creates the file and any missing parent directories if needed."
}

func (t *WriteTool) JSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": "File path, relative to the workspace root or absolute.",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Full content to write.",
			},
		},
		"required": []string{"path", "content"},
	}
}

func (t *WriteTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	var p struct {
		Path    string `json:"path"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(args, &p); err != nil {
		return nil, SemanticErrorf("invalid arguments: %v", err)
	}
	if p.Path == "" {
		return nil, SemanticError("path is required")
	}

	fullPath, err := pathutil.Resolve(t.cfg.Workspace.Root, p.Path)
	if err != nil {
		return nil, SemanticErrorf("%v", err)
	}

	oldContent := ""
	if data, readErr := os.ReadFile(fullPath); readErr == nil {
		oldContent = string(data)
	}

	if err := pathutil.WriteFileAtomic(fullPath, p.Content); err != nil {
		return nil, RuntimeErrorf("write file: %v", err)
	}

	diff, err := diffutil.Unified(oldContent, p.Content, p.Path)
	if err != nil {
		return nil, RuntimeErrorf("render diff: %v", err)
	}

	return map[string]any{
		"success": true,
		"path":    p.Path,
		"diff":    diff,
	}, nil
}
