// Package config loads the optional gridplan configuration file.
//
// The file lives at ~/.config/gridplan/config.toml (XDG_CONFIG_HOME is
// honored) and tunes the editor's presentation, never its semantics:
//
//	[grid]
//	cell_width = 3   # terminal columns per grid cell (1-6)
//	cell_height = 1  # terminal rows per grid cell (1-2)
//
//	[editor]
//	autosave = false    # write the file on every committed change
//	drag_threshold = 5  # pixels of travel before a press becomes a drag
//
// A missing file yields the defaults. A malformed or out-of-range file is a
// structured error; callers typically warn and fall back to defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/gridplan/pkg/errors"
)

// appName is the directory name under the user config root.
const appName = "gridplan"

// Config is the full application configuration.
type Config struct {
	Grid   GridConfig   `toml:"grid"`
	Editor EditorConfig `toml:"editor"`
}

// GridConfig controls how many terminal cells draw one grid cell.
type GridConfig struct {
	CellWidth  int `toml:"cell_width" validate:"min=1,max=6"`
	CellHeight int `toml:"cell_height" validate:"min=1,max=2"`
}

// EditorConfig tunes editor interaction.
type EditorConfig struct {
	Autosave      bool `toml:"autosave"`
	DragThreshold int  `toml:"drag_threshold" validate:"min=1,max=50"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid:   GridConfig{CellWidth: 3, CellHeight: 1},
		Editor: EditorConfig{Autosave: false, DragThreshold: 5},
	}
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path, applying defaults for anything the
// file omits. A missing file is not an error and yields [Default]. A file
// that fails to parse or violates a range constraint is reported with
// ErrCodeInvalidConfig.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Default(), errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid values in %s", path)
	}
	return cfg, nil
}
