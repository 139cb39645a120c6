package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse parses a deployments document from raw text. YAML is a superset
// of JSON, so JSON documents parse as well.
func Parse(data []byte) (*DeploymentConfig, error) {
	var config DeploymentConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &config, nil
}

// LoadDeploymentConfig loads a deployments.yaml file from the given path
func LoadDeploymentConfig(path string) (*DeploymentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}
