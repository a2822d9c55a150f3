package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/printforge/marrow/pkg/skeletal"
)

// Config holds file-configurable defaults for the CLI. Flags always win
// over config values.
type Config struct {
	// SnapDist is the default collapse tolerance in microns.
	SnapDist int64 `toml:"snap_dist"`

	// Format is the default render output format: svg, png, or dot.
	Format string `toml:"format"`

	// Detailed labels rendered nodes with their boundary distance.
	Detailed bool `toml:"detailed"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		SnapDist: skeletal.DefaultSnapDist,
		Format:   "svg",
	}
}

// LoadConfig reads a TOML config file on top of the defaults. With an empty
// path it falls back to marrow.toml in the XDG config directory and then in
// the working directory; a missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// defaultConfigPath returns the first candidate config path, or "" when no
// candidate exists.
func defaultConfigPath() string {
	candidates := []string{"marrow.toml"}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		candidates = append([]string{filepath.Join(configHome, appName, "marrow.toml")}, candidates...)
	} else if home, err := os.UserHomeDir(); err == nil {
		candidates = append([]string{filepath.Join(home, ".config", appName, "marrow.toml")}, candidates...)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
