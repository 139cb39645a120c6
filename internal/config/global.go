package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFileName is the default name for the deployments file
	DefaultConfigFileName = "deployments.yaml"

	// GlobalConfigDir is the directory for global stacklint configuration
	GlobalConfigDir = ".stacklint"

	// GlobalConfigFile is the global configuration file name
	GlobalConfigFile = "config.yaml"

	// EnvConfigFile is the environment variable for a custom deployments file path
	EnvConfigFile = "STACKLINT_CONFIG"

	// EnvStacklintHome is the environment variable for the stacklint home directory
	EnvStacklintHome = "STACKLINT_HOME"
)

// GlobalConfig represents the global stacklint configuration
// stored at ~/.stacklint/config.yaml
type GlobalConfig struct {
	// DefaultConfigFile is the default deployments file name to search for
	DefaultConfigFile string `yaml:"default_config_file,omitempty"`

	// Format is the default report format ("text" or "json")
	Format string `yaml:"format,omitempty"`

	// Strict treats warnings as failures for the exit code
	Strict bool `yaml:"strict,omitempty"`

	// Checks enables optional validation checks
	Checks ChecksConfig `yaml:"checks,omitempty"`
}

// ChecksConfig holds toggles for optional validation checks
type ChecksConfig struct {
	// ModulePaths probes module directories for existence
	ModulePaths bool `yaml:"module_paths,omitempty"`

	// HookExec warns when a hook script is not executable
	HookExec bool `yaml:"hook_exec,omitempty"`
}

// GetStacklintHome returns the stacklint home directory
// Priority: STACKLINT_HOME env var > ~/.stacklint
func GetStacklintHome() (string, error) {
	if home := os.Getenv(EnvStacklintHome); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(userHome, GlobalConfigDir), nil
}

// GetGlobalConfigPath returns the path to the global config file
func GetGlobalConfigPath() (string, error) {
	home, err := GetStacklintHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalConfigFile), nil
}

// LoadGlobalConfig loads the global configuration
// Returns default config if file doesn't exist
func LoadGlobalConfig() (*GlobalConfig, error) {
	configPath, err := GetGlobalConfigPath()
	if err != nil {
		return DefaultGlobalConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultGlobalConfig(), nil
		}
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}

	var config GlobalConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse global config: %w", err)
	}

	config.applyDefaults()

	return &config, nil
}

// SaveGlobalConfig saves the global configuration
func SaveGlobalConfig(config *GlobalConfig) error {
	home, err := GetStacklintHome()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(home, GlobalConfigFile)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultGlobalConfig returns the default global configuration
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DefaultConfigFile: DefaultConfigFileName,
		Format:            "text",
	}
}

// applyDefaults applies default values to unset fields
func (c *GlobalConfig) applyDefaults() {
	defaults := DefaultGlobalConfig()

	if c.DefaultConfigFile == "" {
		c.DefaultConfigFile = defaults.DefaultConfigFile
	}
	if c.Format == "" {
		c.Format = defaults.Format
	}
}

// InitGlobalConfig initializes the global config directory and file
func InitGlobalConfig() error {
	configPath, err := GetGlobalConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil // Already exists
	}

	return SaveGlobalConfig(DefaultGlobalConfig())
}

// GlobalConfigExists checks if global config file exists
func GlobalConfigExists() bool {
	configPath, err := GetGlobalConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(configPath)
	return err == nil
}

// ForceInitGlobalConfig initializes the global config, overwriting if exists
func ForceInitGlobalConfig() error {
	return SaveGlobalConfig(DefaultGlobalConfig())
}
