// Package config loads the server's YAML configuration file and applies
// defaults for anything left unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the server's full runtime configuration.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Tools     ToolsConfig     `yaml:"tools"`
	Log       LogConfig       `yaml:"log"`
	RPC       RPCConfig       `yaml:"rpc"`
}

// WorkspaceConfig controls where file operations are rooted and how
// strictly they're confined there.
type WorkspaceConfig struct {
	Root      string `yaml:"root"`
	Sandboxed bool   `yaml:"sandboxed"` // when true, the bash tool is disabled entirely
}

// ToolsConfig holds per-tool limits.
type ToolsConfig struct {
	Read  ReadToolConfig  `yaml:"read"`
	Edit  EditToolConfig  `yaml:"edit"`
	Grep  GrepToolConfig  `yaml:"grep"`
	Glob  GlobToolConfig  `yaml:"glob"`
	Shell ShellToolConfig `yaml:"shell"`
}

// ReadToolConfig configures the read tool.
type ReadToolConfig struct {
	MaxFileSizeKB  int `yaml:"max_file_size_kb"`
	MaxLineScalars int `yaml:"max_line_scalars"` // per-line truncation limit, in Unicode scalar values
	DefaultLimit   int `yaml:"default_limit"`    // default number of lines returned when the caller omits limit
}

// EditToolConfig configures the edit tool.
type EditToolConfig struct {
	MaxFileSizeKB int `yaml:"max_file_size_kb"`
}

// GrepToolConfig configures the grep tool.
type GrepToolConfig struct {
	MaxMatches int `yaml:"max_matches"`
}

// GlobToolConfig configures the glob tool.
type GlobToolConfig struct {
	MaxResults   int `yaml:"max_results"`
	MaxWalkDepth int `yaml:"max_walk_depth"`
}

// ShellToolConfig configures the bash tool.
type ShellToolConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig controls where structured logs go.
type LogConfig struct {
	Path        string `yaml:"path"`
	Development bool   `yaml:"development"`
}

// RPCConfig bounds the JSON-RPC transport.
type RPCConfig struct {
	MaxLineBytes int `yaml:"max_line_bytes"`
}

const (
	defaultMaxFileSizeKB  = 256
	defaultMaxLineScalars = 2000
	defaultReadLimit      = 2000
	defaultMaxMatches     = 500
	defaultMaxGlobResults = 500
	defaultMaxWalkDepth   = 50
	defaultShellTimeout   = 30 * time.Second
	defaultMaxLineBytes   = 10 << 20 // 10 MiB
)

// Load reads and parses the YAML file at path, then fills in any field
// left at its zero value with the server's defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if cfg.Workspace.Root != "" {
		abs, err := filepath.Abs(cfg.Workspace.Root)
		if err != nil {
			return nil, fmt.Errorf("resolve workspace root: %w", err)
		}
		cfg.Workspace.Root = abs
	}
	return &cfg, nil
}

// Default returns a Config rooted at root with every default applied,
// for callers that run without a config file.
func Default(root string) *Config {
	cfg := &Config{Workspace: WorkspaceConfig{Root: root}}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Tools.Read.MaxFileSizeKB == 0 {
		cfg.Tools.Read.MaxFileSizeKB = defaultMaxFileSizeKB
	}
	if cfg.Tools.Read.MaxLineScalars == 0 {
		cfg.Tools.Read.MaxLineScalars = defaultMaxLineScalars
	}
	if cfg.Tools.Read.DefaultLimit == 0 {
		cfg.Tools.Read.DefaultLimit = defaultReadLimit
	}
	if cfg.Tools.Edit.MaxFileSizeKB == 0 {
		cfg.Tools.Edit.MaxFileSizeKB = defaultMaxFileSizeKB
	}
	if cfg.Tools.Grep.MaxMatches == 0 {
		cfg.Tools.Grep.MaxMatches = defaultMaxMatches
	}
	if cfg.Tools.Glob.MaxResults == 0 {
		cfg.Tools.Glob.MaxResults = defaultMaxGlobResults
	}
	if cfg.Tools.Glob.MaxWalkDepth == 0 {
		cfg.Tools.Glob.MaxWalkDepth = defaultMaxWalkDepth
	}
	if cfg.Tools.Shell.Timeout == 0 {
		cfg.Tools.Shell.Timeout = defaultShellTimeout
	}
	if cfg.RPC.MaxLineBytes == 0 {
		cfg.RPC.MaxLineBytes = defaultMaxLineBytes
	}
}
