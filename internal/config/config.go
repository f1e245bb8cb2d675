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

// App names one of the two lists shelf can open on.
type App string

const (
	AppFilms  App = "films"
	AppPeople App = "people"
)

// ParseApp validates an app name. Blank input yields AppFilms.
func ParseApp(s string) (App, error) {
	switch App(strings.ToLower(strings.TrimSpace(s))) {
	case "", AppFilms:
		return AppFilms, nil
	case AppPeople:
		return AppPeople, nil
	default:
		return "", fmt.Errorf("unknown app %q (want films or people)", s)
	}
}

// Config captures shelf's startup settings.
type Config struct {
	SeedPath string
	LogPath  string
	StartApp App
}

const (
	defaultConfigPath = "~/.config/shelf/config.toml"
	defaultLogPath    = "~/.local/state/shelf/shelf.log"
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{LogPath: mustExpand(defaultLogPath), StartApp: AppFilms}

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
		SeedPath string `toml:"seed_path"`
		LogPath  string `toml:"log_path"`
		StartApp string `toml:"start_app"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if seed := strings.TrimSpace(raw.SeedPath); seed != "" {
		cfg.SeedPath = mustExpand(seed)
	}
	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}
	app, err := ParseApp(raw.StartApp)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.StartApp = app

	return cfg, nil
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
