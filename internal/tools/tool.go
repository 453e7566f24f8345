// Package tools implements the MCP-exposed operations: edit, read,
// write, list, grep, glob, and bash.
package tools

import (
	"context"
	"encoding/json"
)

// Tool is the interface every MCP-exposed operation implements.
type Tool interface {
	// Name is the tool identifier the client calls (e.g. "edit", "read").
	Name() string

	// Description is shown to the client/model choosing among tools.
	Description() string

	// JSONSchema is the tool's input schema, in JSON Schema form.
	JSONSchema() map[string]any

	// Call executes the tool against its arguments, given as raw JSON.
	Call(ctx context.Context, args json.RawMessage) (any, error)
}
