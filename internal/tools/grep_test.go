package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/config"
)

func TestGrepFindsMatches(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a\n\nfunc Foo() {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.go"), []byte("package b\n\nfunc Bar() {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tool := NewGrepTool(config.Default(dir))
	args, _ := json.Marshal(map[string]string{"pattern": `func \w+\(\)`})
	res, err := tool.Call(context.Background(), args)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	out := res.(map[string]any)
	if out["count"].(int) != 2 {
		t.Errorf("count = %v, want 2", out["count"])
	}
}

func TestGrepRequiresPattern(t *testing.T) {
	dir := t.TempDir()
	tool := NewGrepTool(config.Default(dir))
	args, _ := json.Marshal(map[string]string{"pattern": ""})
	if _, err := tool.Call(context.Background(), args); err == nil {
		t.Error("Call() with empty pattern should error")
	}
}

func TestGrepInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	tool := NewGrepTool(config.Default(dir))
	args, _ := json.Marshal(map[string]string{"pattern": "(["})
	if _, err := tool.Call(context.Background(), args); err == nil {
		t.Error("Call() with invalid regex should error")
	}
}

func TestGrepRespectsMaxMatches(t *testing.T) {
	dir := t.TempDir()
	content := ""
	for i := 0; i < 10; i++ {
		content += "match\n"
	}
	if err := os.WriteFile(filepath.Join(dir, "many.txt"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default(dir)
	cfg.Tools.Grep.MaxMatches = 3
	tool := NewGrepTool(cfg)
	args, _ := json.Marshal(map[string]string{"pattern": "match"})
	res, err := tool.Call(context.Background(), args)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	out := res.(map[string]any)
	if out["count"].(int) != 3 {
		t.Errorf("count = %v, want 3", out["count"])
	}
	if truncated, _ := out["truncated"].(bool); !truncated {
		t.Error("truncated = false, want true")
	}
}
