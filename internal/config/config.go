package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Keyboard modes.
const (
	KeyboardAuto     = "auto"
	KeyboardOnScreen = "onscreen"
	KeyboardNative   = "native"
)

// Board layouts.
const (
	LayoutGrid  = "grid"
	LayoutStrip = "strip"
)

// Config captures FamilyBoard's runtime settings.
type Config struct {
	Keyboard    string
	BoardLayout string
	LogFile     string
	LogLevel    string
}

const (
	defaultConfigPath = "~/.config/familyboard/config.toml"
	defaultLogFile    = "~/.local/state/familyboard/familyboard.log"
	defaultLogLevel   = "info"
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Keyboard:    KeyboardAuto,
		BoardLayout: LayoutGrid,
		LogFile:     mustExpand(defaultLogFile),
		LogLevel:    defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
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
		Keyboard    string `toml:"keyboard"`
		BoardLayout string `toml:"board_layout"`
		LogFile     string `toml:"log_file"`
		LogLevel    string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Keyboard = NormalizeKeyboard(raw.Keyboard)
	cfg.BoardLayout = NormalizeLayout(raw.BoardLayout)

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	return cfg, nil
}

// NormalizeKeyboard returns a known keyboard mode, defaulting to auto.
func NormalizeKeyboard(mode string) string {
	switch m := strings.ToLower(strings.TrimSpace(mode)); m {
	case KeyboardOnScreen, KeyboardNative:
		return m
	default:
		return KeyboardAuto
	}
}

// NormalizeLayout returns a known board layout, defaulting to grid.
func NormalizeLayout(layout string) string {
	if strings.ToLower(strings.TrimSpace(layout)) == LayoutStrip {
		return LayoutStrip
	}
	return LayoutGrid
}

// ExpandPath resolves "~" and returns an absolute path.
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
