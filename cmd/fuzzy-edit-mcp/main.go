// Command fuzzy-edit-mcp serves the fuzzy text-replacement engine and its
// surrounding tool surface (edit, read, write, list, grep, glob, bash) as
// an MCP server over line-delimited JSON-RPC 2.0 on stdio.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/cliui"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/config"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/mcpserver"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/tools"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/toollog"
	"github.com/fuzzyedit/fuzzy-edit-mcp/internal/workspace"
)

func main() {
	workspaceFlag := flag.String("workspace", ".", "workspace root all file operations are confined to")
	sandboxed := flag.Bool("sandboxed", false, "disable the bash tool entirely")
	configPath := flag.String("config", "", "optional YAML config file")
	logPath := flag.String("log", "fuzzy-edit-mcp.log", "log file path (empty disables logging)")
	flag.Parse()

	if err := run(*workspaceFlag, *sandboxed, *configPath, *logPath); err != nil {
		cliui.Error("fuzzy-edit-mcp: %v", err)
		os.Exit(1)
	}
}

func run(workspaceRoot string, sandboxed bool, configPath, logPath string) error {
	absRoot, err := filepath.Abs(workspaceRoot)
	if err != nil {
		return fmt.Errorf("resolve workspace root: %w", err)
	}

	cfg, err := loadConfig(configPath, absRoot)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if sandboxed {
		cfg.Workspace.Sandboxed = true
	}
	if logPath != "" {
		cfg.Log.Path = logPath
	}

	log, err := toollog.New(cfg.Log.Path, cfg.Log.Development)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer log.Close()

	lock, err := workspace.AcquireLock(cfg.Workspace.Root)
	if err != nil {
		return err
	}
	defer lock.Release()

	registry := buildRegistry(cfg, log)
	log.ServerStarted(cfg.Workspace.Root, cfg.Workspace.Sandboxed)
	cliui.Banner(cfg.Workspace.Root, cfg.Workspace.Sandboxed, len(registry.All()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	srv := mcpserver.New(registry, log)
	if err := srv.Serve(ctx, cfg.RPC.MaxLineBytes); err != nil && ctx.Err() == nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func loadConfig(configPath, workspaceRoot string) (*config.Config, error) {
	if configPath == "" {
		return config.Default(workspaceRoot), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Workspace.Root == "" {
		cfg.Workspace.Root = workspaceRoot
	}
	return cfg, nil
}

func buildRegistry(cfg *config.Config, log *toollog.Logger) *tools.Registry {
	registry := tools.NewRegistry()
	registry.Enable(tools.NewEditTool(cfg, log))
	registry.Enable(tools.NewReadTool(cfg))
	registry.Enable(tools.NewWriteTool(cfg))
	registry.Enable(tools.NewListTool(cfg))
	registry.Enable(tools.NewGrepTool(cfg))
	registry.Enable(tools.NewGlobTool(cfg))
	if !cfg.Workspace.Sandboxed {
		registry.Enable(tools.NewBashTool(cfg))
	}
	return registry
}
