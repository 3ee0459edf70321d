package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from PENCIL_* environment variables.
type Config struct {
	Width    int    `envconfig:"WIDTH" default:"640"`
	Height   int    `envconfig:"HEIGHT" default:"480"`
	Title    string `envconfig:"TITLE" default:"pencil"`
	Fill     string `envconfig:"FILL" default:"#1e1b2d"`
	Cursor   string `envconfig:"CURSOR" default:"default"`
	FPS      int    `envconfig:"FPS" default:"30"`
	Addr     string `envconfig:"ADDR" default:":8080"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Script is an optional test script replayed by the demo.
	Script        string `envconfig:"SCRIPT"`
	ScreenshotDir string `envconfig:"SCREENSHOT_DIR" default:"screenshots"`

	// AllowedOrigins is a comma-separated list of websocket origin patterns.
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"localhost:*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("pencil", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: invalid fps %d", c.FPS)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. Debug forces slog.LevelDebug.
func (c *Config) Level() (slog.Level, error) {
	if c.Debug {
		return slog.LevelDebug, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return l, nil
}

// Origins splits AllowedOrigins.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
