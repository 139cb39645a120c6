package skills

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSkillPaths(t *testing.T) {
	tests := []struct {
		assistant AIAssistant
		contains  string
	}{
		{Claude, ".claude/skills/using-stacklint"},
		{Cursor, ".cursor/skills-cursor/using-stacklint"},
	}

	for _, tt := range tests {
		path, err := SkillPaths(tt.assistant)
		if err != nil {
			t.Errorf("SkillPaths(%v) returned error: %v", tt.assistant, err)
			continue
		}
		if !filepath.IsAbs(path) {
			t.Errorf("SkillPaths(%v) returned non-absolute path: %s", tt.assistant, path)
		}
		if !strings.Contains(path, tt.contains) {
			t.Errorf("SkillPaths(%v) = %s, expected to contain %s", tt.assistant, path, tt.contains)
		}
	}
}

func TestSkillPathsUnknownAssistant(t *testing.T) {
	unknownAssistant := AIAssistant(999)
	_, err := SkillPaths(unknownAssistant)
	if err == nil {
		t.Error("SkillPaths() with unknown assistant should return error")
	}
	if !strings.Contains(err.Error(), "unknown assistant type") {
		t.Errorf("expected 'unknown assistant type' error, got: %v", err)
	}
}

func TestAssistantName(t *testing.T) {
	tests := []struct {
		assistant AIAssistant
		expected  string
	}{
		{Claude, "Claude Code"},
		{Cursor, "Cursor"},
	}

	for _, tt := range tests {
		name := AssistantName(tt.assistant)
		if name != tt.expected {
			t.Errorf("AssistantName(%v) = %s, expected %s", tt.assistant, name, tt.expected)
		}
	}
}

func TestAssistantNameUnknown(t *testing.T) {
	unknownAssistant := AIAssistant(999)
	name := AssistantName(unknownAssistant)
	if name != "Unknown" {
		t.Errorf("AssistantName(unknown) = %s, expected 'Unknown'", name)
	}
}

func TestInstallAndUninstall(t *testing.T) {
	// Create a temp directory to simulate home
	tmpDir := t.TempDir()

	// Save original home and restore after test
	origHome := os.Getenv("HOME")
	defer os.Setenv("HOME", origHome)
	os.Setenv("HOME", tmpDir)

	err := Install(Claude)
	if err != nil {
		t.Fatalf("Install(Claude) returned error: %v", err)
	}

	// Verify file was created
	expectedPath := filepath.Join(tmpDir, ".claude", "skills", "using-stacklint", "SKILL.md")
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("Install(Claude) did not create SKILL.md at %s", expectedPath)
	}

	// Verify content
	content, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read installed SKILL.md: %v", err)
	}
	if string(content) != StacklintSkillContent {
		t.Error("installed SKILL.md content does not match StacklintSkillContent")
	}

	if !IsInstalled(Claude) {
		t.Error("IsInstalled(Claude) returned false after Install")
	}

	err = Uninstall(Claude)
	if err != nil {
		t.Fatalf("Uninstall(Claude) returned error: %v", err)
	}

	if _, err := os.Stat(expectedPath); !os.IsNotExist(err) {
		t.Error("Uninstall(Claude) did not remove SKILL.md")
	}

	if IsInstalled(Claude) {
		t.Error("IsInstalled(Claude) returned true after Uninstall")
	}
}

func TestUninstallWhenNotInstalled(t *testing.T) {
	tmpDir := t.TempDir()

	origHome := os.Getenv("HOME")
	defer os.Setenv("HOME", origHome)
	os.Setenv("HOME", tmpDir)

	// Uninstall when not installed should not error
	err := Uninstall(Claude)
	if err != nil {
		t.Errorf("Uninstall(Claude) when not installed returned error: %v", err)
	}
}

func TestIsInstalledNotInstalled(t *testing.T) {
	tmpDir := t.TempDir()

	origHome := os.Getenv("HOME")
	defer os.Setenv("HOME", origHome)
	os.Setenv("HOME", tmpDir)

	if IsInstalled(Claude) {
		t.Error("IsInstalled(Claude) returned true when not installed")
	}
	if IsInstalled(Cursor) {
		t.Error("IsInstalled(Cursor) returned true when not installed")
	}
}

func TestAllAssistants(t *testing.T) {
	assistants := AllAssistants()
	if len(assistants) != 2 {
		t.Errorf("AllAssistants() returned %d assistants, expected 2", len(assistants))
	}

	hasClaude := false
	hasCursor := false
	for _, a := range assistants {
		if a == Claude {
			hasClaude = true
		}
		if a == Cursor {
			hasCursor = true
		}
	}

	if !hasClaude {
		t.Error("AllAssistants() missing Claude")
	}
	if !hasCursor {
		t.Error("AllAssistants() missing Cursor")
	}
}

func TestStacklintSkillContent(t *testing.T) {
	// Verify the skill content has expected sections
	if !strings.Contains(StacklintSkillContent, "name: using-stacklint") {
		t.Error("StacklintSkillContent missing frontmatter name")
	}
	if !strings.Contains(StacklintSkillContent, "stacklint validate") {
		t.Error("StacklintSkillContent missing 'stacklint validate' command")
	}
	if !strings.Contains(StacklintSkillContent, "stacklint hooks") {
		t.Error("StacklintSkillContent missing 'stacklint hooks' command")
	}
	if !strings.Contains(StacklintSkillContent, "stacklint init") {
		t.Error("StacklintSkillContent missing 'stacklint init' command")
	}
	if !strings.Contains(StacklintSkillContent, "stacklint config show") {
		t.Error("StacklintSkillContent missing 'stacklint config show' command")
	}
	if !strings.Contains(StacklintSkillContent, "allowed-tools:") {
		t.Error("StacklintSkillContent missing frontmatter allowed-tools")
	}
	if !strings.Contains(StacklintSkillContent, "Bash(stacklint *)") {
		t.Error("StacklintSkillContent missing Bash tool permission")
	}
}

func TestInstallForBothAssistants(t *testing.T) {
	tmpDir := t.TempDir()

	origHome := os.Getenv("HOME")
	defer os.Setenv("HOME", origHome)
	os.Setenv("HOME", tmpDir)

	for _, assistant := range AllAssistants() {
		err := Install(assistant)
		if err != nil {
			t.Errorf("Install(%v) returned error: %v", assistant, err)
			continue
		}

		if !IsInstalled(assistant) {
			t.Errorf("IsInstalled(%v) returned false after Install", assistant)
		}
	}

	claudePath := filepath.Join(tmpDir, ".claude", "skills", "using-stacklint", "SKILL.md")
	cursorPath := filepath.Join(tmpDir, ".cursor", "skills-cursor", "using-stacklint", "SKILL.md")

	if _, err := os.Stat(claudePath); os.IsNotExist(err) {
		t.Errorf("Claude SKILL.md not found at %s", claudePath)
	}
	if _, err := os.Stat(cursorPath); os.IsNotExist(err) {
		t.Errorf("Cursor SKILL.md not found at %s", cursorPath)
	}
}

func TestInstallIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	origHome := os.Getenv("HOME")
	defer os.Setenv("HOME", origHome)
	os.Setenv("HOME", tmpDir)

	// Install twice should not error
	err := Install(Claude)
	if err != nil {
		t.Fatalf("First Install(Claude) returned error: %v", err)
	}

	err = Install(Claude)
	if err != nil {
		t.Errorf("Second Install(Claude) returned error: %v", err)
	}

	if !IsInstalled(Claude) {
		t.Error("IsInstalled(Claude) returned false after double Install")
	}
}
