package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bitsquat/pkg/buildinfo"
	bserrors "github.com/matzehuels/bitsquat/pkg/errors"
	"github.com/matzehuels/bitsquat/pkg/integrations/npm"
	"github.com/matzehuels/bitsquat/pkg/squat"
)

// Config holds settings read from config.toml. Command-line flags override
// any value set here.
//
//	registry    = "https://registry.npmjs.org"
//	user_agent  = "bitsquat"
//	concurrency = 8
//	workers     = 4
//	timeout     = "10s"
type Config struct {
	Registry    string   `toml:"registry"`
	UserAgent   string   `toml:"user_agent"`
	Concurrency int      `toml:"concurrency"`
	Workers     int      `toml:"workers"`
	Timeout     duration `toml:"timeout"`
}

// duration decodes TOML strings such as "10s" or "1m30s".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// defaultConfig returns the settings used when no config file exists.
func defaultConfig() Config {
	return Config{
		Registry:    npm.DefaultRegistry,
		UserAgent:   buildinfo.UserAgent(appName),
		Concurrency: squat.DefaultConcurrency,
		Timeout:     duration{squat.DefaultTimeout},
	}
}

// defaultConfigPath returns ~/.config/bitsquat/config.toml (or the XDG equivalent).
func defaultConfigPath() string {
	return filepath.Join(configDir(), configFile)
}

// loadConfig reads path on top of the defaults. An empty path selects the
// default location, where a missing file is not an error. An explicitly
// named file must exist. Unknown keys are rejected. Values are not
// validated here; flags may still override them.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, bserrors.Wrap(bserrors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, bserrors.Wrap(bserrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, bserrors.New(bserrors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// validate checks settings that would otherwise fail deep inside a scan.
func (c Config) validate() error {
	if err := bserrors.ValidateURL(c.Registry); err != nil {
		return bserrors.Wrap(bserrors.ErrCodeInvalidConfig, err, "registry")
	}
	if err := bserrors.ValidatePositive("concurrency", c.Concurrency); err != nil {
		return err
	}
	if c.Workers < 0 {
		return bserrors.New(bserrors.ErrCodeInvalidInput, "workers cannot be negative, got %d", c.Workers)
	}
	if c.Timeout.Duration <= 0 {
		return bserrors.New(bserrors.ErrCodeInvalidInput, "timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// String renders the effective configuration as TOML.
func (c Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		type plain Config
		return fmt.Sprintf("%+v", plain(c))
	}
	return b.String()
}
