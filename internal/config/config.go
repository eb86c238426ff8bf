package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/panesplit/internal/keyboard"
	"github.com/five82/panesplit/internal/pane"
)

// Config is the splitter layout the demo host starts with.
type Config struct {
	Direction      pane.Direction
	KeyboardStep   float64
	ItemMinSize    *float64
	ItemMaxSize    *float64
	Disabled       bool
	Sizes          []float64
	LogFile        string
	RefreshSeconds int
	Panes          []PaneConfig
}

// PaneConfig declares one pane and, optionally, a file whose tail it shows.
type PaneConfig struct {
	Key         string   `toml:"key"`
	Title       string   `toml:"title"`
	DefaultSize *float64 `toml:"default_size"`
	MinSize     *float64 `toml:"min_size"`
	MaxSize     *float64 `toml:"max_size"`
	File        string   `toml:"file"`
}

const (
	defaultConfigPath     = "~/.config/panesplit/layout.toml"
	defaultLogFile        = "~/.local/share/panesplit/panesplit.log"
	defaultRefreshSeconds = 2
)

// Default returns the layout used when no config file exists: two equal
// panes side by side.
func Default() Config {
	return Config{
		Direction:      pane.Horizontal,
		KeyboardStep:   keyboard.DefaultStep,
		LogFile:        mustExpand(defaultLogFile),
		RefreshSeconds: defaultRefreshSeconds,
		Panes: []PaneConfig{
			{Key: "left", Title: "Left"},
			{Key: "right", Title: "Right"},
		},
	}
}

// Load locates and parses the layout config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Direction      string       `toml:"direction"`
		KeyboardStep   float64      `toml:"keyboard_step"`
		ItemMinSize    *float64     `toml:"item_min_size"`
		ItemMaxSize    *float64     `toml:"item_max_size"`
		Disabled       bool         `toml:"disabled"`
		Sizes          []float64    `toml:"sizes"`
		LogFile        string       `toml:"log_file"`
		RefreshSeconds int          `toml:"refresh_seconds"`
		Panes          []PaneConfig `toml:"pane"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	cfg.Direction, err = pane.ParseDirection(raw.Direction)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if raw.KeyboardStep != 0 {
		cfg.KeyboardStep = keyboard.NormalizeStep(raw.KeyboardStep)
	}
	cfg.ItemMinSize = raw.ItemMinSize
	cfg.ItemMaxSize = raw.ItemMaxSize
	cfg.Disabled = raw.Disabled
	cfg.Sizes = raw.Sizes

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshSeconds = raw.RefreshSeconds
	}

	if len(raw.Panes) > 0 {
		cfg.Panes = make([]PaneConfig, 0, len(raw.Panes))
		for i, p := range raw.Panes {
			p.Key = strings.TrimSpace(p.Key)
			if p.Key == "" {
				p.Key = fmt.Sprintf("pane-%d", i+1)
			}
			p.Title = strings.TrimSpace(p.Title)
			if p.Title == "" {
				p.Title = p.Key
			}
			if file := strings.TrimSpace(p.File); file != "" {
				p.File = mustExpand(file)
			}
			cfg.Panes = append(cfg.Panes, p)
		}
	}

	return cfg, nil
}

// PaneSet returns the engine's view of the configured panes.
func (c Config) PaneSet() []pane.Pane {
	out := make([]pane.Pane, len(c.Panes))
	for i, p := range c.Panes {
		out[i] = pane.Pane{
			Key:         p.Key,
			DefaultSize: p.DefaultSize,
			MinSize:     p.MinSize,
			MaxSize:     p.MaxSize,
		}
	}
	return out
}

// Files maps pane keys to the files they display.
func (c Config) Files() map[string]string {
	out := make(map[string]string)
	for _, p := range c.Panes {
		if p.File != "" {
			out[p.Key] = p.File
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
