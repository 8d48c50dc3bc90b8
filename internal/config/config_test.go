package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// Tests fail if defaults change unexpectedly.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default BatchSize is 8", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != 8 {
			t.Errorf("expected BatchSize to be 8, got %d", cfg.BatchSize)
		}
	})

	t.Run("default ListenAddress is loopback", func(t *testing.T) {
		t.Parallel()
		if cfg.ListenAddress != "127.0.0.1:8787" {
			t.Errorf("expected ListenAddress to be '127.0.0.1:8787', got '%s'", cfg.ListenAddress)
		}
	})

	t.Run("default MaxBodySize is 4 KiB", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxBodySize != 4096 {
			t.Errorf("expected MaxBodySize to be 4096, got %d", cfg.MaxBodySize)
		}
	})

	t.Run("default ReadTimeout is 10 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("expected ReadTimeout to be 10s, got %v", cfg.ReadTimeout)
		}
	})

	t.Run("history is off and estimate is on", func(t *testing.T) {
		t.Parallel()
		if cfg.SaveToDB {
			t.Error("expected SaveToDB to be false")
		}
		if !cfg.Estimate {
			t.Error("expected Estimate to be true")
		}
	})

	t.Run("settings are never nil", func(t *testing.T) {
		t.Parallel()
		if cfg.Settings == nil {
			t.Error("expected non-nil Settings")
		}
	})

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected default config to be valid, got %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		modify   func(*Config)
		expected error
	}{
		{"stdin and list conflict", func(c *Config) { c.ReadStdin = true; c.ListFile = "list.txt" }, ErrConflictingInputs},
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }, ErrInvalidBatchSize},
		{"negative batch size", func(c *Config) { c.BatchSize = -1 }, ErrInvalidBatchSize},
		{"json and markdown conflict", func(c *Config) { c.JSONReport = true; c.MarkdownReport = true }, ErrConflictingReportFormats},
		{"zero count", func(c *Config) { c.Count = 0 }, ErrInvalidCount},
		{"count above maximum", func(c *Config) { c.Count = MaxCount + 1 }, ErrInvalidCount},
		{"listen address without port", func(c *Config) { c.ListenAddress = "localhost" }, ErrInvalidListenAddress},
		{"zero max connections", func(c *Config) { c.MaxConnections = 0 }, ErrInvalidMaxConnections},
		{"zero max body size", func(c *Config) { c.MaxBodySize = 0 }, ErrInvalidMaxBodySize},
		{"zero read timeout", func(c *Config) { c.ReadTimeout = 0 }, ErrInvalidTimeout},
		{"zero history limit", func(c *Config) { c.HistoryLimit = 0 }, ErrInvalidHistoryLimit},
		{"maximum count is valid", func(c *Config) { c.Count = MaxCount }, nil},
		{"ipv6 listen address is valid", func(c *Config) { c.ListenAddress = "[::1]:8787" }, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tc.modify(cfg)
			err := cfg.Validate()
			if tc.expected == nil {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

// TestConfigApplyFile tests applying file settings to a Config.
func TestConfigApplyFile(t *testing.T) {
	t.Parallel()

	t.Run("history settings are applied", func(t *testing.T) {
		t.Parallel()

		enabled := true
		cfg := NewConfig()
		cfg.ApplyFile(&File{History: HistoryFile{Enabled: &enabled, Dir: "/tmp/pwmeter"}})

		if !cfg.SaveToDB {
			t.Error("expected SaveToDB to be true")
		}
		if cfg.DBDir != "/tmp/pwmeter" {
			t.Errorf("expected DBDir to be overridden, got %q", cfg.DBDir)
		}
	})

	t.Run("unset history keeps defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFile(&File{})

		if cfg.SaveToDB {
			t.Error("expected SaveToDB to stay false")
		}
		if cfg.DBDir != XDGDataDir() {
			t.Errorf("expected default DBDir, got %q", cfg.DBDir)
		}
	})

	t.Run("nil file yields empty settings", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFile(nil)
		if cfg.Settings == nil {
			t.Error("expected non-nil Settings")
		}
	})
}

// TestFileGeneratorWords tests word normalization.
func TestFileGeneratorWords(t *testing.T) {
	t.Parallel()

	cf := &File{Generator: GeneratorFile{
		Adjectives: []string{"sleepy", "  ", "WILD"},
		Nouns:      []string{"badger", "sea otter"},
	}}

	adjectives, nouns := cf.GeneratorWords()
	if !slices.Equal(adjectives, []string{"Sleepy", "Wild"}) {
		t.Errorf("unexpected adjectives %q", adjectives)
	}
	if !slices.Equal(nouns, []string{"Badger", "Sea Otter"}) {
		t.Errorf("unexpected nouns %q", nouns)
	}

	var empty *File
	if a, n := empty.GeneratorWords(); a != nil || n != nil {
		t.Error("expected nil words from nil file")
	}
	if empty.ExtraCommonPasswords() != nil {
		t.Error("expected nil common passwords from nil file")
	}
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.pwmeter")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".pwmeter")
		content := `common_passwords:
  - hunter2
  - Correct-Horse
generator:
  adjectives: [sleepy]
  nouns: [badger, otter]
history:
  enabled: false
  dir: /var/lib/pwmeter
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !slices.Equal(cfg.CommonPasswords, []string{"hunter2", "Correct-Horse"}) {
			t.Errorf("unexpected common passwords %q", cfg.CommonPasswords)
		}
		if len(cfg.Generator.Nouns) != 2 {
			t.Errorf("expected 2 nouns, got %d", len(cfg.Generator.Nouns))
		}
		if cfg.History.Enabled == nil || *cfg.History.Enabled {
			t.Error("expected history.enabled to be false")
		}
		if cfg.History.Dir != "/var/lib/pwmeter" {
			t.Errorf("unexpected history dir %q", cfg.History.Dir)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".pwmeter")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("common_passwords: []"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestLoad tests the Load function.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("explicit missing path is an error", func(t *testing.T) {
		t.Parallel()

		_, err := Load("/nonexistent/path/.pwmeter")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("explicit path is loaded", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "pwmeter.yaml")
		if err := os.WriteFile(configPath, []byte("common_passwords: [hunter2]\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := Load(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(cf.ExtraCommonPasswords(), []string{"hunter2"}) {
			t.Errorf("unexpected common passwords %q", cf.CommonPasswords)
		}
	})

	t.Run("parse errors are wrapped with the path", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "broken.yaml")
		if err := os.WriteFile(configPath, []byte("common_passwords: {"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := Load(configPath); err == nil {
			t.Error("expected error for broken file")
		}
	})
}

// TestXDGDirs tests XDG directory functions.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	if dir := XDGDataDir(); filepath.Base(dir) != AppName {
		t.Errorf("expected XDG data dir to end in %q, got %q", AppName, dir)
	}
	if dir := XDGConfigDir(); filepath.Base(dir) != AppName {
		t.Errorf("expected XDG config dir to end in %q, got %q", AppName, dir)
	}
}
