package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigResolver resolves the deployments file from multiple sources
// Priority order (highest to lowest):
// 1. CLI flag (--config) or positional argument
// 2. Environment variable (STACKLINT_CONFIG)
// 3. Local file in current directory (deployments.yaml, deploy.yaml)
// 4. Parent directory traversal
// 5. Global fallback: ~/.stacklint/deployments.yaml
type ConfigResolver struct {
	// CLIConfigPath is set via --config flag or positional argument
	CLIConfigPath string

	// GlobalConfig is the loaded global configuration
	GlobalConfig *GlobalConfig
}

// configFileNames are the filenames to look for in order of preference
var configFileNames = []string{
	"deployments.yaml",
	"deployments.yml",
	"deploy.yaml",
	"deploy.yml",
}

// NewConfigResolver creates a new config resolver
func NewConfigResolver(cliConfigPath string) (*ConfigResolver, error) {
	globalConfig, err := LoadGlobalConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load global config: %w", err)
	}

	return &ConfigResolver{
		CLIConfigPath: cliConfigPath,
		GlobalConfig:  globalConfig,
	}, nil
}

// searchNames returns the filenames to search for, with the configured
// default first when it is not already in the list
func (r *ConfigResolver) searchNames() []string {
	names := configFileNames
	if r.GlobalConfig == nil || r.GlobalConfig.DefaultConfigFile == "" {
		return names
	}
	for _, n := range names {
		if n == r.GlobalConfig.DefaultConfigFile {
			return names
		}
	}
	return append([]string{r.GlobalConfig.DefaultConfigFile}, names...)
}

// ResolveConfigFile resolves the path to the deployments file
// Returns the resolved path and the directory it lives in
func (r *ConfigResolver) ResolveConfigFile() (configPath string, configRoot string, err error) {
	// 1. CLI flag or positional argument has highest priority
	if r.CLIConfigPath != "" {
		absPath, err := filepath.Abs(r.CLIConfigPath)
		if err != nil {
			return "", "", fmt.Errorf("failed to resolve config path: %w", err)
		}

		if _, err := os.Stat(absPath); err != nil {
			return "", "", fmt.Errorf("config file not found: %s", absPath)
		}

		return absPath, filepath.Dir(absPath), nil
	}

	// 2. Environment variable
	if envPath := os.Getenv(EnvConfigFile); envPath != "" {
		absPath, err := filepath.Abs(envPath)
		if err != nil {
			return "", "", fmt.Errorf("failed to resolve STACKLINT_CONFIG path: %w", err)
		}

		if _, err := os.Stat(absPath); err != nil {
			return "", "", fmt.Errorf("config file from STACKLINT_CONFIG not found: %s", absPath)
		}

		return absPath, filepath.Dir(absPath), nil
	}

	// 3. Search current directory and parent directories
	if path, root, found := r.searchLocalFiles(); found {
		return path, root, nil
	}

	// 4. Global fallback: ~/.stacklint/deployments.yaml (or STACKLINT_HOME)
	home, err := GetStacklintHome()
	if err != nil {
		return "", "", fmt.Errorf("failed to get stacklint home directory: %w", err)
	}

	defaultPath := filepath.Join(home, DefaultConfigFileName)

	if _, err := os.Stat(defaultPath); err != nil {
		return "", "", fmt.Errorf("deployments file not found\n\nSearched:\n  - Current directory and parents for: %v\n  - Global fallback at: %s\n\nTo get started:\n  1. Run 'stacklint init' to create deployments.yaml\n  2. Or set STACKLINT_CONFIG environment variable\n  3. Or pass a file path to the command", r.searchNames(), defaultPath)
	}

	return defaultPath, home, nil
}

// searchLocalFiles searches for deployments files in current and parent directories
func (r *ConfigResolver) searchLocalFiles() (path string, root string, found bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", false
	}

	names := r.searchNames()

	dir := cwd
	for {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, dir, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", "", false
}
