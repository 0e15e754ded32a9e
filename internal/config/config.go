// Package config loads the editor settings once at startup.
//
// Settings come from, in increasing priority: built-in defaults, the user
// file ~/.config/meow/config.toml, the project file .config/config.toml (or
// an explicit path given on the command line), and MEOW_* environment
// variables. Files ending in .yaml or .yml are parsed as YAML, everything
// else as TOML. The result is immutable for the rest of the session.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/meow/internal/config/loader"
)

// Default values.
const (
	DefaultTabSize = 4
	DefaultTheme   = "default"
	MaxTabSize     = 32
)

// Settings is the complete editor configuration.
type Settings struct {
	Editor EditorSettings `toml:"editor" yaml:"editor"`

	// Theme holds inline color overrides applied on top of the named theme.
	Theme ThemeFile `toml:"theme" yaml:"theme"`
}

// EditorSettings are the behavioral settings.
type EditorSettings struct {
	TabSize      int    `toml:"tab_size" yaml:"tab_size"`
	LineNumbers  bool   `toml:"line_numbers" yaml:"line_numbers"`
	MouseSupport bool   `toml:"mouse_support" yaml:"mouse_support"`
	Theme        string `toml:"theme" yaml:"theme"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Editor: EditorSettings{
			TabSize:      DefaultTabSize,
			LineNumbers:  true,
			MouseSupport: true,
			Theme:        DefaultTheme,
		},
	}
}

// EnvMapping maps environment variables to setting paths.
var EnvMapping = map[string]string{
	"MEOW_TAB_SIZE":      "editor.tab_size",
	"MEOW_LINE_NUMBERS":  "editor.line_numbers",
	"MEOW_MOUSE_SUPPORT": "editor.mouse_support",
	"MEOW_THEME":         "editor.theme",
}

// Options controls where Load looks for settings.
type Options struct {
	// FS reads files; nil means the OS file system.
	FS loader.FileSystem

	// Home is the user's home directory; "" means os.UserHomeDir.
	Home string

	// WorkDir is the base of the project .config directory; "" means ".".
	WorkDir string

	// Path, when set, replaces the project config file.
	Path string

	// LookupEnv reads environment variables; nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

func (o Options) withDefaults() Options {
	if o.FS == nil {
		o.FS = loader.DefaultFS()
	}
	if o.Home == "" {
		o.Home, _ = os.UserHomeDir()
	}
	if o.WorkDir == "" {
		o.WorkDir = "."
	}
	if o.LookupEnv == nil {
		o.LookupEnv = os.LookupEnv
	}
	return o
}

// Sources returns the config files Load reads, lowest priority first.
func (o Options) Sources() []string {
	o = o.withDefaults()
	var paths []string
	if o.Home != "" {
		paths = append(paths, filepath.Join(o.Home, ".config", "meow", "config.toml"))
	}
	if o.Path != "" {
		paths = append(paths, o.Path)
	} else {
		paths = append(paths, filepath.Join(o.WorkDir, ".config", "config.toml"))
	}
	return paths
}

// Load reads and validates the settings. On any error it returns the
// defaults together with the error, so startup can continue.
func Load(opts Options) (*Settings, error) {
	opts = opts.withDefaults()

	merged := make(map[string]any)
	for _, path := range opts.Sources() {
		m, err := loader.ForPath(opts.FS, path).Load()
		if err != nil {
			return Default(), err
		}
		merged = loader.DeepMerge(merged, m)
	}
	env, err := loader.NewEnvLoader(EnvMapping).WithLookup(opts.LookupEnv).Load()
	if err != nil {
		return Default(), err
	}
	merged = loader.DeepMerge(merged, env)

	s, err := decode(merged)
	if err != nil {
		return Default(), err
	}
	if err := s.Validate(); err != nil {
		return Default(), err
	}
	return s, nil
}

// decode lays the merged map over the defaults. The map is re-encoded as
// TOML so that values from every source go through one set of type rules.
func decode(merged map[string]any) (*Settings, error) {
	s := Default()
	if len(merged) == 0 {
		return s, nil
	}
	data, err := toml.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encoding merged config: %w", err)
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, &ValidationError{Path: "config", Message: err.Error()}
	}
	return s, nil
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if s.Editor.TabSize < 1 || s.Editor.TabSize > MaxTabSize {
		return &ValidationError{
			Path:    "editor.tab_size",
			Message: fmt.Sprintf("must be between 1 and %d", MaxTabSize),
			Value:   s.Editor.TabSize,
		}
	}
	if s.Editor.Theme == "" {
		return &ValidationError{Path: "editor.theme", Message: "must not be empty", Value: ""}
	}
	return nil
}
