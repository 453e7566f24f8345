// Package mcpserver wires the tool registry to the MCP stdio transport:
// it declares each enabled tool's JSON schema to the client and
// translates every Tool.Call into the mcp.CallToolResult shape the
// protocol expects, per spec.md §6's "Exit/result mapping".
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/tools"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/toollog"
)

const (
	serverName    = "fuzzy-edit-mcp"
	serverVersion = "0.1.0"
)

// Server adapts a tools.Registry onto an MCP server over stdio.
type Server struct {
	mcp *server.MCPServer
	log *toollog.Logger
}

// New builds a Server exposing every tool currently enabled in registry.
func New(registry *tools.Registry, log *toollog.Logger) *Server {
	s := &Server{
		mcp: server.NewMCPServer(serverName, serverVersion),
		log: log,
	}
	for _, t := range registry.All() {
		s.register(t)
	}
	return s
}

func (s *Server) register(t tools.Tool) {
	schema, err := json.Marshal(t.JSONSchema())
	if err != nil {
		// A tool's own schema literal failing to marshal is a bug in
		// that tool, not a runtime condition; there is nothing a caller
		// can do about it, so it is not worth surfacing as a request
		// failure. Skip registering the tool and log it.
		s.log.RPCError(t.Name(), fmt.Errorf("marshal schema: %w", err))
		return
	}

	mcpTool := mcp.NewToolWithRawSchema(t.Name(), t.Description(), schema)
	s.mcp.AddTool(mcpTool, s.handlerFor(t))
}

func (s *Server) handlerFor(t tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argBytes, err := json.Marshal(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		result, callErr := t.Call(ctx, argBytes)
		if callErr != nil {
			return mcp.NewToolResultError(toolErrorMessage(callErr)), nil
		}

		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}

// toolErrorMessage unwraps a tools.ToolError to its caller-facing
// message; any other error is rendered plainly.
func toolErrorMessage(err error) string {
	if te, ok := err.(*tools.ToolError); ok {
		return te.Message
	}
	return err.Error()
}

// Serve runs the server over stdin/stdout, enforcing maxLineBytes per
// request line, until ctx is canceled or the stream closes.
func (s *Server) Serve(ctx context.Context, maxLineBytes int) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(stdlog.New(io.Discard, "", 0))

	in := newLineLimitReader(os.Stdin, maxLineBytes)
	var out io.Writer = os.Stdout
	return stdio.Listen(ctx, in, out)
}
