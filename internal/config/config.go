package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level client/tool configuration.
type Config struct {
	// Endpoint is the EWS service URL, e.g. "https://mail.example.com/EWS/Exchange.asmx".
	Endpoint string `yaml:"endpoint" json:"endpoint"`

	// Timezone is the IANA key used as the default zone for values built
	// by this client (e.g. "Europe/Copenhagen").
	Timezone string `yaml:"timezone" json:"timezone"`

	// GeneratorURL overrides the upstream CLDR windowsZones document URL.
	// Empty means the built-in default.
	GeneratorURL string `yaml:"generator_url" json:"generator_url"`

	// CacheDir is where the generator keeps its conditional-GET cache.
	CacheDir string `yaml:"cache_dir" json:"cache_dir"`

	// SnapshotPath is where tzgen writes the regenerated mapping snapshot.
	SnapshotPath string `yaml:"snapshot_path" json:"snapshot_path"`

	// RefreshCron is a cron-style schedule (e.g. "0 6 * * 1") used by
	// tzgen's watch mode to re-check the upstream map for drift.
	RefreshCron string `yaml:"refresh" json:"refresh"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timezone:     "UTC",
		CacheDir:     "./var/tzgen-cache",
		SnapshotPath: "winzone/cldr_winzone.json",
		RefreshCron:  "0 6 * * 1",
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.CacheDir == "" {
		c.CacheDir = "./var/tzgen-cache"
	}
	if c.SnapshotPath == "" {
		c.SnapshotPath = "winzone/cldr_winzone.json"
	}
	if c.RefreshCron == "" {
		c.RefreshCron = "0 6 * * 1"
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists (0700).
//   - Marshals cfg to YAML.
//   - Writes atomically via a temp file + rename.
//   - Ensures final file permissions are 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// Atomic write: write to temp file in same directory then rename.
	tmp, err := os.CreateTemp(dir, ".ewscal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	return nil
}

// Save is a convenience method on Config that delegates to the package-level
// Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
