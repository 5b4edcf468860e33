package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/rugvedmhatre/Vector-Simulator/vm"
)

// Config represents the simulator configuration.
type Config struct {
	// Execution settings
	Execution struct {
		MaxCycles       uint64 `toml:"max_cycles"`
		DivByZero       string `toml:"div_by_zero"`        // "skip" or "abort"
		ShiftMaskAmount bool   `toml:"shift_mask_amount"`
	} `toml:"execution"`

	// Display settings
	Display struct {
		ColumnWidth int `toml:"column_width"`
	} `toml:"display"`
}

// DefaultConfig returns a configuration with the spec-recommended defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Execution.MaxCycles = vm.DefaultMaxCycles
	cfg.Execution.DivByZero = "skip"
	cfg.Execution.ShiftMaskAmount = true

	cfg.Display.ColumnWidth = vm.DefaultColumnWidth

	return cfg
}

// Policy translates the loaded configuration into a vm.Policy, reporting an
// error if div_by_zero names anything other than "skip"/"abort".
func (c *Config) Policy() (vm.Policy, error) {
	var policy vm.DivByZeroPolicy
	switch c.Execution.DivByZero {
	case "skip", "":
		policy = vm.DivSkip
	case "abort":
		policy = vm.DivAbort
	default:
		return vm.Policy{}, fmt.Errorf("config: div_by_zero must be \"skip\" or \"abort\", got %q", c.Execution.DivByZero)
	}
	return vm.Policy{
		DivByZero:       policy,
		MaskShiftAmount: c.Execution.ShiftMaskAmount,
		MaxCycles:       c.Execution.MaxCycles,
	}, nil
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\vecsim\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "vecsim")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/vecsim/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "vecsim")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file is
// not an error: the defaults are returned unchanged.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
