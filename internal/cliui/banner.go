// Package cliui prints startup and diagnostic messages for a human
// operator watching the process. Everything here writes to stderr only
// — stdout is reserved for the JSON-RPC stream the MCP client reads.
package cliui

import (
	"os"

	"github.com/fatih/color"
)

var (
	bannerColor = color.New(color.FgYellow, color.Faint)
	infoColor   = color.New(color.FgWhite, color.Faint)
	warnColor   = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
)

// Banner prints a one-line startup summary to stderr.
func Banner(workspaceRoot string, sandboxed bool, toolCount int) {
	mode := "open"
	if sandboxed {
		mode = "sandboxed"
	}
	bannerColor.Fprintf(os.Stderr, "fuzzy-edit-mcp: workspace %s (%s), %d tools registered\n",
		workspaceRoot, mode, toolCount)
}

// Info prints a dim diagnostic line to stderr.
func Info(format string, args ...any) {
	infoColor.Fprintf(os.Stderr, format+"\n", args...)
}

// Warn prints a yellow diagnostic line to stderr.
func Warn(format string, args ...any) {
	warnColor.Fprintf(os.Stderr, format+"\n", args...)
}

// Error prints a red diagnostic line to stderr.
func Error(format string, args ...any) {
	errorColor.Fprintf(os.Stderr, format+"\n", args...)
}
