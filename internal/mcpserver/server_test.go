package mcpserver

import (
	"errors"
	"testing"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/tools"
)

func TestToolErrorMessageUnwrapsToolError(t *testing.T) {
	err := tools.SemanticError("path is required")
	if got := toolErrorMessage(err); got != "path is required" {
		t.Errorf("toolErrorMessage() = %q, want %q", got, "path is required")
	}
}

func TestToolErrorMessagePassesThroughPlainErrors(t *testing.T) {
	err := errors.New("boom")
	if got := toolErrorMessage(err); got != "boom" {
		t.Errorf("toolErrorMessage() = %q, want %q", got, "boom")
	}
}
