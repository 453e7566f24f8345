package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/config"
)

func TestWriteCreatesNewFile(t *testing.T) {
	dir := t.TempDir()
	tool := NewWriteTool(config.Default(dir))
	args, _ := json.Marshal(map[string]string{"path": "a.txt", "content": "hello\n"})
	res, err := tool.Call(context.Background(), args)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !res.(map[string]any)["success"].(bool) {
		t.Error("success = false, want true")
	}

	got, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello\n" {
		t.Errorf("file content = %q, want %q", got, "hello\n")
	}
}

func TestWriteCreatesMissingParentDirs(t *testing.T) {
	dir := t.TempDir()
	tool := NewWriteTool(config.Default(dir))
	args, _ := json.Marshal(map[string]string{"path": "sub/dir/a.txt", "content": "x"})
	if _, err := tool.Call(context.Background(), args); err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "sub", "dir", "a.txt")); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	tool := NewWriteTool(config.Default(dir))
	args, _ := json.Marshal(map[string]string{"path": "a.txt", "content": "new"})
	res, err := tool.Call(context.Background(), args)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	diff := res.(map[string]any)["diff"].(string)
	if diff == "" {
		t.Error("diff is empty, want a rendered unified diff of old vs new content")
	}

	got, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("file content = %q, want %q", got, "new")
	}
}

func TestWriteRequiresPath(t *testing.T) {
	dir := t.TempDir()
	tool := NewWriteTool(config.Default(dir))
	args, _ := json.Marshal(map[string]string{"path": "", "content": "x"})
	if _, err := tool.Call(context.Background(), args); err == nil {
		t.Error("Call() with empty path should error")
	}
}

func TestWriteRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	tool := NewWriteTool(config.Default(dir))
	args, _ := json.Marshal(map[string]string{"path": "../escape.txt", "content": "x"})
	if _, err := tool.Call(context.Background(), args); err == nil {
		t.Error("Call() with a path outside the workspace should error")
	}
}
