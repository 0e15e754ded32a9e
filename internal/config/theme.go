package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ThemeFile is a set of hex color overrides. Empty fields leave the
// underlying theme unchanged.
type ThemeFile struct {
	Background  string `toml:"background" yaml:"background"`
	Foreground  string `toml:"foreground" yaml:"foreground"`
	Cursor      string `toml:"cursor" yaml:"cursor"`
	SelectionBg string `toml:"selection_bg" yaml:"selection_bg"`
	Keyword     string `toml:"keyword" yaml:"keyword"`
	Type        string `toml:"type" yaml:"type"`
	Comment     string `toml:"comment" yaml:"comment"`
}

// IsZero returns true if no color is set.
func (t ThemeFile) IsZero() bool {
	return t == ThemeFile{}
}

// Overlay returns t with every non-empty field of o applied on top.
func (t ThemeFile) Overlay(o ThemeFile) ThemeFile {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return ThemeFile{
		Background:  pick(t.Background, o.Background),
		Foreground:  pick(t.Foreground, o.Foreground),
		Cursor:      pick(t.Cursor, o.Cursor),
		SelectionBg: pick(t.SelectionBg, o.SelectionBg),
		Keyword:     pick(t.Keyword, o.Keyword),
		Type:        pick(t.Type, o.Type),
		Comment:     pick(t.Comment, o.Comment),
	}
}

// ThemePaths returns the candidate files for theme name, in lookup order.
// The user directory is consulted first and wins when both exist.
func (o Options) ThemePaths(name string) []string {
	o = o.withDefaults()
	file := name + ".toml"
	var paths []string
	if o.Home != "" {
		paths = append(paths, filepath.Join(o.Home, ".config", "meow", "themes", file))
	}
	return append(paths, filepath.Join(o.WorkDir, ".config", "themes", file))
}

// LoadTheme reads the theme file for name. It returns nil, nil for the
// default theme or when no file exists. A file that exists but cannot be
// read is an error.
func LoadTheme(opts Options, name string) (*ThemeFile, error) {
	if name == "" || name == DefaultTheme {
		return nil, nil
	}
	opts = opts.withDefaults()

	for _, path := range opts.ThemePaths(name) {
		data, err := opts.FS.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
		var tf ThemeFile
		if err := toml.Unmarshal(data, &tf); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
		return &tf, nil
	}
	return nil, nil
}

// ResolveTheme combines the named theme file with the inline [theme]
// section of the settings, inline values winning.
func ResolveTheme(opts Options, s *Settings) (*ThemeFile, error) {
	tf, err := LoadTheme(opts, s.Editor.Theme)
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", s.Editor.Theme, err)
	}
	if tf == nil {
		if s.Theme.IsZero() {
			return nil, nil
		}
		tf = &ThemeFile{}
	}
	merged := tf.Overlay(s.Theme)
	return &merged, nil
}
