package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config holds the command's settings after merging flags, environment
// variables (GRIDVIEW_*) and the optional config file, in that precedence.
type config struct {
	Width      int           `mapstructure:"width"`
	Height     int           `mapstructure:"height"`
	GridWidth  int           `mapstructure:"grid-width"`
	GridHeight int           `mapstructure:"grid-height"`
	Resources  string        `mapstructure:"resources"`
	FontSize   float64       `mapstructure:"font-size"`
	GridLines  bool          `mapstructure:"grid-lines"`
	GridColor  string        `mapstructure:"grid-color"`
	HideLayers []int         `mapstructure:"hide-layers"`
	OutDir     string        `mapstructure:"out-dir"`
	Jobs       int           `mapstructure:"jobs"`
	LogLevel   string        `mapstructure:"log-level"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("gridview", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gridview [flags] frame.json...\n\n")
		fs.PrintDefaults()
	}
	fs.String("config", "", "YAML config file")
	fs.Int("width", 500, "surface width in pixels")
	fs.Int("height", 500, "surface height in pixels")
	fs.Int("grid-width", 10, "grid width in cells")
	fs.Int("grid-height", 10, "grid height in cells")
	fs.String("resources", "local", "directory image shapes are loaded from")
	fs.Float64("font-size", 10, "inscribed text size in points")
	fs.Bool("grid-lines", false, "draw the grid overlay")
	fs.String("grid-color", "#eee", "grid overlay color")
	fs.IntSlice("hide-layers", nil, "layers to leave out")
	fs.String("out-dir", ".", "directory PNG previews are written to")
	fs.Int("jobs", 4, "frames rendered in parallel")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.Duration("timeout", 30*time.Second, "time allowed for image resources per frame")
	return fs
}

// loadConfig parses args and merges them with the environment and the
// config file. It returns the remaining positional arguments.
func loadConfig(args []string) (*config, []string, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	vp := viper.New()
	vp.SetEnvPrefix("GRIDVIEW")
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()
	if err := vp.BindPFlags(fs); err != nil {
		return nil, nil, err
	}
	if path := vp.GetString("config"); path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg config
	if err := vp.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	return &cfg, fs.Args(), nil
}

func (c *config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("surface size must be positive, got %dx%d", c.Width, c.Height)
	case c.GridWidth <= 0 || c.GridHeight <= 0:
		return fmt.Errorf("grid size must be positive, got %dx%d", c.GridWidth, c.GridHeight)
	case c.Jobs < 1:
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}

func (c *config) level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
