package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/config"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/diffutil"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/pathutil"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/replace"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/toollog"
)

// EditTool replaces a caller-supplied search string inside a file,
// tolerating the drift the fuzzy-match chain in package replace is built
// to absorb.
type EditTool struct {
	cfg *config.Config
	log *toollog.Logger
}

func NewEditTool(cfg *config.Config, log *toollog.Logger) *EditTool {
	return &EditTool{cfg: cfg, log: log}
}

func (t *EditTool) Name() string { return "edit" }

func (t *EditTool) Description() string {
	return "Edit a file by replacing exact or near-exact text. Tolerates minor whitespace, " +
		"indentation, and escaping drift between the given search text and the file's actual content. " +
		"Use an empty search string to create a new file."
}

func (t *EditTool) JSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"file_path": map[string]any{
				"type":        "string",
				"description": "File path, relative to the workspace root or absolute.",
			},
			"old_string": map[string]any{
				"type":        "string",
				"description": "Text to find. Must match the file's content closely enough for one of the fuzzy-match strategies to locate it. Empty string creates a new file.",
			},
			"new_string": map[string]any{
				"type":        "string",
				"description": "Replacement text. Empty string deletes the matched text.",
			},
			"replace_all": map[string]any{
				"type":        "boolean",
				"description": "Replace every occurrence instead of requiring the match to be unique.",
			},
		},
		"required": []string{"file_path", "old_string", "new_string"},
	}
}

type editParams struct {
	Path       string `json:"file_path"`
	OldString  string `json:"old_string"`
	NewString  string `json:"new_string"`
	ReplaceAll bool   `json:"replace_all"`
}

func (t *EditTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	start := time.Now()
	var p editParams
	if err := json.Unmarshal(args, &p); err != nil {
		return nil, SemanticErrorf("invalid arguments: %v", err)
	}
	if p.Path == "" {
		return nil, SemanticError("file_path is required")
	}

	fullPath, err := pathutil.Resolve(t.cfg.Workspace.Root, p.Path)
	if err != nil {
		return nil, SemanticErrorf("%v", err)
	}

	data, statErr := os.ReadFile(fullPath)
	isNewFile := os.IsNotExist(statErr)
	if statErr != nil && !isNewFile {
		return nil, RuntimeErrorf("read file: %v", statErr)
	}

	if isNewFile {
		if p.OldString != "" {
			return nil, SemanticErrorWithDetails(
				"file does not exist; use old_string: \"\" to create it",
				map[string]any{"path": p.Path},
			)
		}
		if err := pathutil.WriteFileAtomic(fullPath, p.NewString); err != nil {
			return nil, RuntimeErrorf("write file: %v", err)
		}
		diff, _ := diffutil.Unified("", p.NewString, p.Path)
		t.log.ToolCalled(t.Name(), time.Since(start), nil)
		return map[string]any{
			"success": true,
			"path":    p.Path,
			"created": true,
			"diff":    diff,
		}, nil
	}

	if pathutil.LooksBinary(data) {
		return nil, RuntimeErrorf("%s looks like a binary file", p.Path)
	}

	content := string(data)
	if p.OldString == "" {
		return nil, SemanticError("old_string must be non-empty when editing an existing file")
	}

	newContent, layer, outcome := replace.ReplaceDetailed(content, p.OldString, p.NewString, p.ReplaceAll)
	t.log.ReplaceAttempt(p.Path, layer, outcome.String())

	switch outcome {
	case replace.NoMatch, replace.AmbiguousOnly:
		return nil, RuntimeErrorWithDetails(
			fmt.Sprintf("Error: no match found for the provided old_string in %s", p.Path),
			map[string]any{"path": p.Path, "diagnostic_outcome": outcome.String()},
		)
	}

	if err := pathutil.WriteFileAtomic(fullPath, newContent); err != nil {
		return nil, RuntimeErrorf("write file: %v", err)
	}

	diff, err := diffutil.Unified(content, newContent, p.Path)
	if err != nil {
		return nil, RuntimeErrorf("render diff: %v", err)
	}
	t.log.ToolCalled(t.Name(), time.Since(start), nil)

	return map[string]any{
		"success":  true,
		"path":     p.Path,
		"diff":     diff,
		"replacer": layer,
		"message":  fmt.Sprintf("edit applied via %s match", layer),
	}, nil
}
