package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	content := `
[auth]
username = "student@example.com"
password = "hunter2"

[messages]
page = 2
limit = 500

[output]
directory = "downloads"
`

	file := filepath.Join(t.TempDir(), "librus.toml")
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadConfig(file)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !cfg.AuthEnabled {
		t.Error("AuthEnabled should be true with a complete auth block")
	}

	if cfg.Auth.Username != "student@example.com" {
		t.Errorf("unexpected username: %v", cfg.Auth.Username)
	}

	if cfg.Messages.Page != 2 {
		t.Errorf("unexpected page: %v", cfg.Messages.Page)
	}

	if cfg.Messages.Limit != MaxLimit {
		t.Errorf("limit should be capped to %v, got %v", MaxLimit, cfg.Messages.Limit)
	}

	if cfg.Output.Directory != "downloads" {
		t.Errorf("unexpected output directory: %v", cfg.Output.Directory)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "librus.toml")
	if err := os.WriteFile(file, []byte(""), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadConfig(file)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.AuthEnabled {
		t.Error("AuthEnabled should be false without an auth block")
	}

	if cfg.Messages.Page != DefaultPage || cfg.Messages.Limit != DefaultLimit {
		t.Errorf("unexpected paging defaults: page %v, limit %v", cfg.Messages.Page, cfg.Messages.Limit)
	}

	if cfg.Output.Directory != DefaultOutputDir {
		t.Errorf("unexpected output directory: %v", cfg.Output.Directory)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig() should fail on a missing file")
	}
}

func TestIsValidUsername(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		username string
		expected bool
	}{
		{"Plain", "student", true},
		{"Mail", "student@example.com", true},
		{"Empty", "", false},
		{"Space", "stu dent", false},
		{"Tab", "stu\tdent", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if actual := isValidUsername(tc.username); actual != tc.expected {
				t.Errorf("isValidUsername(%q) = %v, expected %v", tc.username, actual, tc.expected)
			}
		})
	}
}
