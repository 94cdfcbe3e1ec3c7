package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/clx/internal/history"
)

// Config holds the clx configuration.
type Config struct {
	CLBin         string            `toml:"cl_bin"`
	QBin          string            `toml:"q_bin"`
	DiffTool      string            `toml:"diff_tool"`
	InfoBatchSize int               `toml:"info_batch_size"`
	HistoryLimit  int               `toml:"history_limit"`
	Aliases       map[string]string `toml:"aliases"`
}

// Defaults for the wrapped tools and batching.
const (
	DefaultCLBin         = "cl"
	DefaultQBin          = "q"
	DefaultDiffTool      = "vimdiff"
	DefaultInfoBatchSize = 64
	DefaultHistoryLimit  = 100
)

// Default returns the default configuration.
func Default() Config {
	return Config{
		CLBin:         DefaultCLBin,
		QBin:          DefaultQBin,
		DiffTool:      DefaultDiffTool,
		InfoBatchSize: DefaultInfoBatchSize,
		HistoryLimit:  DefaultHistoryLimit,
		Aliases: map[string]string{
			"localhost": "http://localhost:2800",
			"main":      "https://codalab.org/bundleservice",
		},
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "clx", "config.toml"), nil
}

// HistoryPath returns the rerun history file location.
func (c Config) HistoryPath() string {
	return history.DefaultPath()
}

// Load reads config from ~/.config/clx/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return applyEnv(Default()), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path, applying env overrides.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(Default()), nil
		}
		return applyEnv(Default()), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return applyEnv(Default()), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return applyEnv(Default()), err
	}

	return applyEnv(cfg), nil
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg Config) Config {
	if v := os.Getenv("CLX_CL_BIN"); v != "" {
		cfg.CLBin = v
	}
	if v := os.Getenv("CLX_DIFF_TOOL"); v != "" {
		cfg.DiffTool = v
	}
	return cfg
}

func (c Config) validate() error {
	if c.InfoBatchSize <= 0 {
		return fmt.Errorf("info_batch_size must be positive, got %d", c.InfoBatchSize)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit)
	}
	if c.CLBin == "" {
		return fmt.Errorf("cl_bin must not be empty")
	}
	return nil
}

// DefaultTOML is the commented config template written by `clx config init`.
const DefaultTOML = `# clx configuration

# Wrapped command-line tools.
# cl_bin = "cl"
# q_bin = "q"

# Interactive diff tool for 'clx diff'.
# diff_tool = "vimdiff"

# Bundle specs per 'cl info' invocation.
# info_batch_size = 64

# Max entries kept in the rerun history.
# history_limit = 100

# Server aliases, usable as spec prefixes: main::0xabc
[aliases]
localhost = "http://localhost:2800"
main = "https://codalab.org/bundleservice"
`

// WriteDefault writes the default config template to path.
// Fails if the file exists unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(DefaultTOML), 0o644)
}
