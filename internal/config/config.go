package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/spread/internal/viewer"
)

// Config holds the initial view preferences and the log location.
type Config struct {
	ViewMode         viewer.ViewMode
	FirstPageAsCover bool
	ZoomMode         viewer.ZoomMode
	CustomZoom       float64
	PageGap          int
	LogDir           string
}

const (
	defaultConfigPath = "~/.config/spread/config.toml"
	defaultLogDir     = "~/.local/state/spread"
	logFileName       = "spread.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	s := viewer.DefaultState()
	return Config{
		ViewMode:         s.ViewMode,
		FirstPageAsCover: s.FirstPageAsCover,
		ZoomMode:         s.ZoomMode,
		CustomZoom:       s.CustomZoom,
		PageGap:          s.PageGap,
		LogDir:           mustExpand(defaultLogDir),
	}
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields Default.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ViewMode         string   `toml:"view_mode"`
		FirstPageAsCover *bool    `toml:"first_page_as_cover"`
		ZoomMode         string   `toml:"zoom_mode"`
		CustomZoom       *float64 `toml:"custom_zoom"`
		PageGap          *int     `toml:"page_gap"`
		LogDir           string   `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if s := strings.TrimSpace(raw.ViewMode); s != "" {
		cfg.ViewMode, err = viewer.ParseViewMode(s)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: view_mode: %w", err)
		}
	}
	if s := strings.TrimSpace(raw.ZoomMode); s != "" {
		cfg.ZoomMode, err = viewer.ParseZoomMode(s)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: zoom_mode: %w", err)
		}
	}
	if raw.FirstPageAsCover != nil {
		cfg.FirstPageAsCover = *raw.FirstPageAsCover
	}
	if raw.CustomZoom != nil {
		cfg.CustomZoom = *raw.CustomZoom
	}
	if raw.PageGap != nil {
		cfg.PageGap = *raw.PageGap
	}

	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}

	return cfg, nil
}

// LogPath returns the path of the application log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return filepath.Join(mustExpand(defaultLogDir), logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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
