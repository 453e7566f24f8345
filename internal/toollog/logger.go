// Package toollog provides structured logging for the MCP server. All
// output goes to a file (or is dropped entirely) — stdout carries the
// JSON-RPC stream and must never receive a stray log line.
package toollog

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap logger configured for this server's needs.
type Logger struct {
	zap *zap.Logger
}

// New creates a Logger that writes JSON-encoded records to logPath. An
// empty logPath disables logging entirely (a no-op logger is returned).
// development switches the encoder to zap's human-readable development
// config instead of the compact production one.
func New(logPath string, development bool) (*Logger, error) {
	if logPath == "" {
		return &Logger{zap: zap.NewNop()}, nil
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	var encCfg zapcore.EncoderConfig
	if development {
		encCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encCfg = zap.NewProductionEncoderConfig()
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(f),
		zapcore.InfoLevel,
	)
	return &Logger{zap: zap.New(core)}, nil
}

// Close flushes any buffered log entries.
func (l *Logger) Close() error {
	return l.zap.Sync()
}

// ToolCalled records one tool invocation: which tool, how long it took,
// and whether it ended in a Runtime error.
func (l *Logger) ToolCalled(name string, duration time.Duration, err error) {
	if err != nil {
		l.zap.Info("tool call",
			zap.String("tool", name),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return
	}
	l.zap.Info("tool call",
		zap.String("tool", name),
		zap.Duration("duration", duration),
	)
}

// ReplaceAttempt records which replacer layer in the fuzzy-match chain
// produced the committed edit, or that none did.
func (l *Logger) ReplaceAttempt(path string, layer string, outcome string) {
	l.zap.Info("replace attempt",
		zap.String("path", path),
		zap.String("layer", layer),
		zap.String("outcome", outcome),
	)
}

// RPCError records a malformed or failed JSON-RPC request.
func (l *Logger) RPCError(method string, err error) {
	l.zap.Warn("rpc error",
		zap.String("method", method),
		zap.Error(err),
	)
}

// ServerStarted records the workspace and transport the server came up
// with.
func (l *Logger) ServerStarted(workspaceRoot string, sandboxed bool) {
	l.zap.Info("server started",
		zap.String("workspace_root", workspaceRoot),
		zap.Bool("sandboxed", sandboxed),
	)
}
