package tools

import (
	"encoding/json"
	"fmt"
)

// ToolErrorType classifies why a tool call failed, for logging and for
// the structured data returned alongside the error message. An MCP
// server has no agent loop of its own to backtrack — the calling LLM
// client decides what to do with an error — so the classification here
// is diagnostic, not control flow.
type ToolErrorType int

const (
	// ErrorRuntime: the tool executed but the operation itself failed
	// (read or write failed, permission denied, command failed, no match).
	ErrorRuntime ToolErrorType = iota
	// ErrorSemantic: the caller misused the tool (bad arguments, a path
	// outside the workspace, reading a file that does not exist).
	ErrorSemantic
)

func (t ToolErrorType) String() string {
	if t == ErrorSemantic {
		return "semantic"
	}
	return "runtime"
}

// ToolError is the error type every tool in this package returns.
type ToolError struct {
	Type    ToolErrorType
	Message string
	Details map[string]any
}

func (e *ToolError) Error() string {
	return e.Message
}

// ToJSON renders the error as the structured payload a CallToolResult
// carries back to the client.
func (e *ToolError) ToJSON() map[string]any {
	result := map[string]any{
		"success": false,
		"error":   e.Message,
		"type":    e.Type.String(),
	}
	for k, v := range e.Details {
		result[k] = v
	}
	return result
}

// RuntimeError creates a runtime (operation-failed) error.
func RuntimeError(msg string) *ToolError {
	return &ToolError{Type: ErrorRuntime, Message: msg}
}

// RuntimeErrorf creates a formatted runtime error.
func RuntimeErrorf(format string, args ...any) *ToolError {
	return &ToolError{Type: ErrorRuntime, Message: fmt.Sprintf(format, args...)}
}

// RuntimeErrorWithDetails creates a runtime error carrying structured details.
func RuntimeErrorWithDetails(msg string, details map[string]any) *ToolError {
	return &ToolError{Type: ErrorRuntime, Message: msg, Details: details}
}

// SemanticError creates a semantic (caller-misuse) error.
func SemanticError(msg string) *ToolError {
	return &ToolError{Type: ErrorSemantic, Message: msg}
}

// SemanticErrorf creates a formatted semantic error.
func SemanticErrorf(format string, args ...any) *ToolError {
	return &ToolError{Type: ErrorSemantic, Message: fmt.Sprintf(format, args...)}
}

// SemanticErrorWithDetails creates a semantic error carrying structured details.
func SemanticErrorWithDetails(msg string, details map[string]any) *ToolError {
	return &ToolError{Type: ErrorSemantic, Message: msg, Details: details}
}

// WrapAsRuntime wraps any error as a runtime ToolError, preserving the
// original classification if it already is one.
func WrapAsRuntime(err error) *ToolError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*ToolError); ok {
		return te
	}
	return RuntimeError(err.Error())
}

// WrapAsSemantic wraps any error as a semantic ToolError, preserving the
// original classification if it already is one.
func WrapAsSemantic(err error) *ToolError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*ToolError); ok {
		return te
	}
	return SemanticError(err.Error())
}

// JSONError is implemented by errors that can render structured JSON.
type JSONError interface {
	error
	ToJSON() map[string]any
}

// FormatError renders err as pretty JSON if it implements JSONError,
// otherwise as a plain "Error: ..." string.
func FormatError(err error) string {
	if jsonErr, ok := err.(JSONError); ok {
		if b, marshalErr := json.MarshalIndent(jsonErr.ToJSON(), "", "  "); marshalErr == nil {
			return string(b)
		}
	}
	return fmt.Sprintf("Error: %v", err)
}
