package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/go-cmp/cmp"

	bserrors "github.com/matzehuels/bitsquat/pkg/errors"
	"github.com/matzehuels/bitsquat/pkg/integrations/npm"
	"github.com/matzehuels/bitsquat/pkg/squat"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// setConfigHome points the XDG config directory at dir for one test.
func setConfigHome(t *testing.T, dir string) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Registry != npm.DefaultRegistry {
		t.Errorf("Registry = %q, want %q", cfg.Registry, npm.DefaultRegistry)
	}
	if cfg.Concurrency != squat.DefaultConcurrency {
		t.Errorf("Concurrency = %d, want %d", cfg.Concurrency, squat.DefaultConcurrency)
	}
	if cfg.Timeout.Duration != squat.DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, squat.DefaultTimeout)
	}
	if !strings.HasPrefix(cfg.UserAgent, appName+"/") {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	dir := t.TempDir()
	setConfigHome(t, dir)

	got := defaultConfigPath()
	if want := filepath.Join(dir, appName, configFile); got != want {
		t.Errorf("defaultConfigPath() = %q, want %q", got, want)
	}
}

func TestLoadConfig_MissingDefaultFile(t *testing.T) {
	setConfigHome(t, t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_DefaultFile(t *testing.T) {
	dir := t.TempDir()
	setConfigHome(t, dir)
	writeFile(t, filepath.Join(dir, appName, configFile), `
registry = "https://npm.example.com"
concurrency = 3
timeout = "2s"
`)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	want := defaultConfig()
	want.Registry = "https://npm.example.com"
	want.Concurrency = 3
	want.Timeout = duration{2 * time.Second}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	setConfigHome(t, t.TempDir())
	dir := t.TempDir()

	tests := []struct {
		name     string
		content  string // empty means the file is not created
		wantCode bserrors.Code
	}{
		{"explicit missing file", "", bserrors.ErrCodeFileNotFound},
		{"malformed", "concurrency = \n", bserrors.ErrCodeInvalidConfig},
		{"bad duration", `timeout = "soon"`, bserrors.ErrCodeInvalidConfig},
		{"unknown key", `cache_dir = "/tmp"`, bserrors.ErrCodeInvalidConfig},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i))+".toml")
			if tt.content != "" {
				writeFile(t, path, tt.content)
			}
			_, err := loadConfig(path)
			if err == nil {
				t.Fatal("loadConfig() expected error")
			}
			if got := bserrors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestLoadConfig_DefersValidation(t *testing.T) {
	setConfigHome(t, t.TempDir())
	path := writeFile(t, filepath.Join(t.TempDir(), "config.toml"), "concurrency = 0\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if err := (scanOpts{concurrency: 4}).apply(cfg).validate(); err != nil {
		t.Errorf("flag override should make config valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   bserrors.Code
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad registry", func(c *Config) { c.Registry = "ftp://example.com" }, bserrors.ErrCodeInvalidConfig},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, bserrors.ErrCodeInvalidInput},
		{"negative workers", func(c *Config) { c.Workers = -1 }, bserrors.ErrCodeInvalidInput},
		{"negative timeout", func(c *Config) { c.Timeout = duration{-time.Second} }, bserrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(&cfg)
			if got := bserrors.GetCode(cfg.validate()); got != tt.want {
				t.Errorf("validate() code = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScanOptsApply(t *testing.T) {
	base := defaultConfig()

	got := scanOpts{}.apply(base)
	if diff := cmp.Diff(base, got); diff != "" {
		t.Errorf("unset flags changed config (-want +got):\n%s", diff)
	}

	got = scanOpts{
		registry:    "http://127.0.0.1:4873",
		concurrency: 2,
		workers:     1,
		timeout:     time.Second,
	}.apply(base)
	want := base
	want.Registry = "http://127.0.0.1:4873"
	want.Concurrency = 2
	want.Workers = 1
	want.Timeout = duration{time.Second}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flag overlay mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigString(t *testing.T) {
	s := defaultConfig().String()
	for _, want := range []string{`registry = "` + npm.DefaultRegistry + `"`, `timeout = "10s"`} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
