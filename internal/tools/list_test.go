package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/config"
)

func TestListReturnsNameIsDirAndSize(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	tool := NewListTool(config.Default(dir))
	res, err := tool.Call(context.Background(), nil)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	entries := res.(map[string]any)["entries"].([]listEntry)
	var sawFile, sawDir bool
	for _, e := range entries {
		switch e.Name {
		case "a.txt":
			sawFile = true
			if e.IsDir {
				t.Error("a.txt: IsDir = true, want false")
			}
			if e.Size != 5 {
				t.Errorf("a.txt: Size = %d, want 5", e.Size)
			}
		case "sub" + string(filepath.Separator):
			sawDir = true
			if !e.IsDir {
				t.Error("sub/: IsDir = false, want true")
			}
		}
	}
	if !sawFile {
		t.Error("entries missing a.txt")
	}
	if !sawDir {
		t.Error("entries missing sub/")
	}
}

func TestListSkipsDotGitAndNodeModules(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{".git", "node_modules"} {
		if err := os.MkdirAll(filepath.Join(dir, d, "inner"), 0755); err != nil {
			t.Fatal(err)
		}
	}

	tool := NewListTool(config.Default(dir))
	res, err := tool.Call(context.Background(), nil)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	entries := res.(map[string]any)["entries"].([]listEntry)
	for _, e := range entries {
		if e.Name == ".git"+string(filepath.Separator) || e.Name == "node_modules"+string(filepath.Separator) {
			t.Errorf("entries should not list skipped dir %q", e.Name)
		}
	}
}

func TestListDefaultsToWorkspaceRoot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tool := NewListTool(config.Default(dir))
	args, _ := json.Marshal(map[string]string{"path": ""})
	res, err := tool.Call(context.Background(), args)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if res.(map[string]any)["path"] != "." {
		t.Errorf("path = %v, want \".\"", res.(map[string]any)["path"])
	}
}

func TestListRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	tool := NewListTool(config.Default(dir))
	args, _ := json.Marshal(map[string]string{"path": "../../etc"})
	if _, err := tool.Call(context.Background(), args); err == nil {
		t.Error("Call() with a path outside the workspace should error")
	}
}
