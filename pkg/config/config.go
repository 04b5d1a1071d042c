// Package config loads the optional binder.yaml settings file.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/binder/pkg/errors"
)

// FileName is the settings file looked up by LoadOptional.
const FileName = "binder.yaml"

// Defaults applied by Resolve.
const (
	DefaultWarnLen = 1024
	DefaultWidth   = 640
	DefaultHeight  = 480
	DefaultTheme   = "light"
)

// Config mirrors binder.yaml.
type Config struct {
	Verbose     bool         `yaml:"verbose,omitempty"`
	CheckThread *bool        `yaml:"check_thread,omitempty"`
	Queue       QueueConfig  `yaml:"queue,omitempty"`
	Render      RenderConfig `yaml:"render,omitempty"`
}

// QueueConfig contains event queue settings.
type QueueConfig struct {
	// WarnLen is the backlog length above which hosts log a warning.
	WarnLen int `yaml:"warn_len,omitempty"`
}

// RenderConfig contains snapshot and terminal rendering settings.
type RenderConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Theme  string `yaml:"theme,omitempty"`
}

// Settings contains resolved configuration values.
type Settings struct {
	Path        string
	Verbose     bool
	CheckThread bool
	WarnLen     int
	Width       int
	Height      int
	Theme       string
}

// Themes lists the accepted render.theme values.
var Themes = []string{"light", "dark"}

// Load reads the settings file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadOptional reads binder.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes settings from data. Unknown keys are rejected.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, &errors.BindError{
			Op:   "config.Parse",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to parse %s: %w", path, err),
		}
	}
	return &cfg, nil
}

// Resolve loads the settings file and applies defaults. An empty path
// looks for binder.yaml in dir; a non-empty path must exist.
func Resolve(dir, path string) (*Settings, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
	} else {
		path = filepath.Join(dir, FileName)
		cfg, err = LoadOptional(dir)
	}
	if err != nil {
		return nil, err
	}
	s := cfg.Settings()
	s.Path = path
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Settings returns cfg with defaults applied.
func (c *Config) Settings() *Settings {
	s := &Settings{
		Verbose:     c.Verbose,
		CheckThread: true,
		WarnLen:     c.Queue.WarnLen,
		Width:       c.Render.Width,
		Height:      c.Render.Height,
		Theme:       strings.ToLower(strings.TrimSpace(c.Render.Theme)),
	}
	if c.CheckThread != nil {
		s.CheckThread = *c.CheckThread
	}
	if s.WarnLen == 0 {
		s.WarnLen = DefaultWarnLen
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	return s
}

// Validate checks resolved values.
func (s *Settings) Validate() error {
	invalid := func(format string, args ...any) error {
		return &errors.BindError{
			Op:   "config.Validate",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf(format, args...),
		}
	}
	if s.WarnLen < 0 {
		return invalid("queue.warn_len must not be negative (got %d)", s.WarnLen)
	}
	if s.Width < 0 || s.Height < 0 {
		return invalid("render size must be positive (got %dx%d)", s.Width, s.Height)
	}
	for _, t := range Themes {
		if s.Theme == t {
			return nil
		}
	}
	return invalid("render.theme must be one of %s (got %q)", strings.Join(Themes, ", "), s.Theme)
}
