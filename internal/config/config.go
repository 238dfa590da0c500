package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appDirName      = "noted"
	defaultDataFile = "notes.json"
	defaultLogFile  = "noted.log"
)

type Config struct {
	DataPath     string `yaml:"data_path"`
	Backend      string `yaml:"backend"`
	LogPath      string `yaml:"log_path"`
	LogLevel     string `yaml:"log_level"`
	EditorWidth  int    `yaml:"editor_width"`
	PreviewStyle string `yaml:"preview_style"`
}

// Default places data under the per-user config directory, falling back to
// the working directory when none is available. LogPath is left empty so it
// can follow wherever DataPath ends up.
func Default() Config {
	dir := "."
	if base, err := os.UserConfigDir(); err == nil && base != "" {
		dir = filepath.Join(base, appDirName)
	}
	return Config{
		DataPath:     filepath.Join(dir, defaultDataFile),
		Backend:      "json",
		LogLevel:     "info",
		EditorWidth:  60,
		PreviewStyle: "dark",
	}
}

// WithLogBesideData fills an unset LogPath with noted.log in the directory
// holding the data file.
func (c Config) WithLogBesideData() Config {
	if strings.TrimSpace(c.LogPath) == "" {
		c.LogPath = filepath.Join(filepath.Dir(c.DataPath), defaultLogFile)
	}
	return c
}

func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "noted.yaml"
	}
	return filepath.Join(base, appDirName, "config.yaml")
}

// LoadFile overlays a YAML file onto base. A missing file is not an error.
func LoadFile(path string, base Config) (Config, error) {
	cfg := base
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return merge(cfg, file), nil
}

func FromEnv(base Config) Config {
	return merge(base, Config{
		DataPath:     strings.TrimSpace(os.Getenv("NOTED_DATA")),
		Backend:      strings.TrimSpace(os.Getenv("NOTED_BACKEND")),
		LogPath:      strings.TrimSpace(os.Getenv("NOTED_LOG")),
		LogLevel:     strings.TrimSpace(os.Getenv("NOTED_LOG_LEVEL")),
		EditorWidth:  getEnvInt("NOTED_EDITOR_WIDTH"),
		PreviewStyle: strings.TrimSpace(os.Getenv("NOTED_PREVIEW_STYLE")),
	})
}

// merge copies every non-zero field of over onto base.
func merge(base, over Config) Config {
	if over.DataPath != "" {
		base.DataPath = over.DataPath
	}
	if over.Backend != "" {
		base.Backend = over.Backend
	}
	if over.LogPath != "" {
		base.LogPath = over.LogPath
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	if over.EditorWidth > 0 {
		base.EditorWidth = over.EditorWidth
	}
	if over.PreviewStyle != "" {
		base.PreviewStyle = over.PreviewStyle
	}
	return base
}

func getEnvInt(name string) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}
