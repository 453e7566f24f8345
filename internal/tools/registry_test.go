package tools

import (
	"context"
	"encoding/json"
	"testing"
)

type fakeTool struct{ name string }

func (f fakeTool) Name() string                 { return f.name }
func (f fakeTool) Description() string          { return "fake tool for registry tests" }
func (f fakeTool) JSONSchema() map[string]any   { return map[string]any{"type": "object"} }
func (f fakeTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	return "ok", nil
}

func TestRegistryEnableAndGet(t *testing.T) {
	r := NewRegistry()
	r.Enable(fakeTool{name: "edit"})

	got := r.Get("edit")
	if got == nil {
		t.Fatal("Get() = nil, want the enabled tool")
	}
	if got.Name() != "edit" {
		t.Errorf("Name() = %q, want %q", got.Name(), "edit")
	}
}

func TestRegistryGetNonExistent(t *testing.T) {
	r := NewRegistry()
	if r.Get("nonexistent") != nil {
		t.Error("Get() of an unregistered tool should return nil")
	}
}

func TestRegistryDisable(t *testing.T) {
	r := NewRegistry()
	r.Enable(fakeTool{name: "read"})
	r.Disable("read")
	if r.IsEnabled("read") {
		t.Error("IsEnabled() = true after Disable()")
	}
}

func TestRegistryAllSortedByName(t *testing.T) {
	r := NewRegistry()
	r.Enable(fakeTool{name: "write"})
	r.Enable(fakeTool{name: "edit"})
	r.Enable(fakeTool{name: "list"})

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d tools, want 3", len(all))
	}
	want := []string{"edit", "list", "write"}
	for i, w := range want {
		if all[i].Name() != w {
			t.Errorf("All()[%d].Name() = %q, want %q", i, all[i].Name(), w)
		}
	}
}
