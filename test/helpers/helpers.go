package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stacklint/stacklint/internal/config"
)

// CreateTempDir creates a temporary directory for tests
func CreateTempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "stacklint-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}

// WriteConfigFile writes content to a deployments file in dir and returns its path
func WriteConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// WriteHookScript creates an executable hook script relative to dir
func WriteHookScript(t *testing.T, dir, relPath string) string {
	t.Helper()
	path := filepath.Join(dir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create hook directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("failed to write hook script: %v", err)
	}
	return path
}

// CreateTestConfig builds an in-memory deployment config with a single module
func CreateTestConfig(modulePath string, preDeployHooks ...string) *config.DeploymentConfig {
	refs := make([]config.HookRef, len(preDeployHooks))
	for i, h := range preDeployHooks {
		refs[i] = config.HookRef{Path: h}
	}

	return &config.DeploymentConfig{
		Deployments: []config.Deployment{
			{
				Modules: []config.Module{
					{Path: modulePath, PreDeploy: refs},
				},
			},
		},
	}
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if expected != actual {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
}

// AssertContains fails the test if slice does not contain item
func AssertContains(t *testing.T, slice []string, item string) {
	t.Helper()
	for _, s := range slice {
		if s == item {
			return
		}
	}
	t.Fatalf("slice %v does not contain %s", slice, item)
}
