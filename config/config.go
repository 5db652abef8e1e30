// Package config loads pixelpath settings from a TOML file.
//
// Every field has a default, so an empty or missing section keeps the
// built-in behaviour: a 21×21 bilinear grid searched with the heap frontier.
//
// Example file:
//
//	[grid]
//	width = 21
//	height = 21
//	resample = "catmull-rom"
//
//	[search]
//	frontier = "scan"
//	inf_edge_threshold = 1.5
//
//	[log]
//	level = "debug"
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/pixelpath/dijkstra"
	"github.com/katalvlaran/pixelpath/imageio"
)

// ErrInvalidConfig indicates a field with an unusable value.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config aggregates all settings.
type Config struct {
	Grid   GridConfig   `toml:"grid"`
	Search SearchConfig `toml:"search"`
	Log    LogConfig    `toml:"log"`
}

// GridConfig controls how images are sampled into grids.
type GridConfig struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Resample string `toml:"resample"`
}

// SearchConfig controls the shortest-path search. A nil distance cap or
// edge threshold means "unset"; max_distance = 0 is a real cap.
type SearchConfig struct {
	Frontier         string   `toml:"frontier"`
	MaxDistance      *float64 `toml:"max_distance"`
	InfEdgeThreshold *float64 `toml:"inf_edge_threshold"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:    imageio.DefaultSize,
			Height:   imageio.DefaultSize,
			Resample: imageio.BiLinear.String(),
		},
		Search: SearchConfig{Frontier: dijkstra.FrontierHeap.String()},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result.
// Keys unknown to Config are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Grid.Width <= 0 {
		return fmt.Errorf("%w: grid.width=%d", ErrInvalidConfig, c.Grid.Width)
	}
	if c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid.height=%d", ErrInvalidConfig, c.Grid.Height)
	}
	if _, err := imageio.ParseResampler(c.Grid.Resample); err != nil {
		return fmt.Errorf("%w: grid.resample: %v", ErrInvalidConfig, err)
	}
	if _, err := dijkstra.ParseFrontier(c.Search.Frontier); err != nil {
		return fmt.Errorf("%w: search.frontier: %v", ErrInvalidConfig, err)
	}
	if m := c.Search.MaxDistance; m != nil && (*m < 0 || math.IsNaN(*m)) {
		return fmt.Errorf("%w: search.max_distance=%v", ErrInvalidConfig, *m)
	}
	if th := c.Search.InfEdgeThreshold; th != nil && (*th <= 0 || math.IsNaN(*th)) {
		return fmt.Errorf("%w: search.inf_edge_threshold=%v", ErrInvalidConfig, *th)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level=%q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// Resampler returns the configured resampler. Call Validate first.
func (c Config) Resampler() imageio.Resampler {
	r, _ := imageio.ParseResampler(c.Grid.Resample)
	return r
}

// SearchOptions converts the search section into dijkstra options.
// Call Validate first.
func (c Config) SearchOptions() []dijkstra.Option {
	f, _ := dijkstra.ParseFrontier(c.Search.Frontier)
	opts := []dijkstra.Option{dijkstra.WithFrontier(f)}
	if c.Search.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*c.Search.MaxDistance))
	}
	if c.Search.InfEdgeThreshold != nil {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(*c.Search.InfEdgeThreshold))
	}
	return opts
}
