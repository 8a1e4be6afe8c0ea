package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Deal     DealConfig     `toml:"deal"`
	UI       UIConfig       `toml:"ui"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LoggingConfig struct {
	Level   string        `toml:"level"` // debug | info | warn | error
	DevFile DevFileConfig `toml:"dev_file"`
}

type DevFileConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type DealConfig struct {
	Count     int      `toml:"count"`
	MinHeight int      `toml:"min_height"`
	MaxHeight int      `toml:"max_height"`
	Palette   []string `toml:"palette"`
}

type UIConfig struct {
	ConfirmQuit bool `toml:"confirm_quit"`
}

func defaultPalette() []string {
	return []string{
		"#ff7eb6",
		"#82cfff",
		"#42be65",
		"#ffab91",
		"#be95ff",
		"#f1c21b",
	}
}

func Default(dbPath string) Config {
	return Config{
		Database: DatabaseConfig{
			Path: dbPath,
		},
		Logging: LoggingConfig{
			Level: "info",
			DevFile: DevFileConfig{
				Enabled: false,
				Dir:     "",
			},
		},
		Deal: DealConfig{
			Count:     4,
			MinHeight: 80,
			MaxHeight: 180,
			Palette:   defaultPalette(),
		},
		UI: UIConfig{
			ConfirmQuit: false,
		},
	}
}

func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	c.Database.Path = strings.TrimSpace(c.Database.Path)
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}

	switch strings.TrimSpace(strings.ToLower(c.Logging.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	if c.Logging.DevFile.Enabled && strings.TrimSpace(c.Logging.DevFile.Dir) == "" {
		return errors.New("logging.dev_file.dir is required when dev file logging is enabled")
	}

	if c.Deal.Count <= 0 {
		return errors.New("deal.count must be > 0")
	}
	if c.Deal.MinHeight <= 0 {
		return errors.New("deal.min_height must be > 0")
	}
	if c.Deal.MaxHeight < c.Deal.MinHeight {
		return errors.New("deal.max_height must be >= deal.min_height")
	}
	for i, color := range c.Deal.Palette {
		color = strings.TrimSpace(color)
		if !strings.HasPrefix(color, "#") || len(color) != 7 {
			return fmt.Errorf("deal.palette[%d] is not a #rrggbb color: %q", i, color)
		}
	}

	return nil
}

func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
