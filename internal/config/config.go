package config

import (
	"bytes"
	"os"

	"chromaspiral/app"
	"chromaspiral/chroma"
	"chromaspiral/hal"
	"chromaspiral/quarkgl"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the top-level spiral.yml configuration.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Window   WindowConfig   `yaml:"window"`
	Headless HeadlessConfig `yaml:"headless"`
	Render   RenderConfig   `yaml:"render"`
	Colors   ColorsConfig   `yaml:"colors"`
}

// ViewportConfig fixes the render size. Zero in either field makes the
// viewport follow the window.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TPS       int    `yaml:"tps"`
	Resizable bool   `yaml:"resizable"`
}

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz            int    `yaml:"hz"`
	Ticks         uint64 `yaml:"ticks"`
	SurfaceWidth  int    `yaml:"surface_width"`
	SurfaceHeight int    `yaml:"surface_height"`
	DrawEvery     int    `yaml:"draw_every"`
}

// RenderConfig tunes the software renderer.
type RenderConfig struct {
	Workers    int    `yaml:"workers"` // 0 = one per CPU
	ClearColor string `yaml:"clear_color"`
	HUD        bool   `yaml:"hud"`
}

// ColorsConfig selects the unknown-note policy and palette overrides.
type ColorsConfig struct {
	Strict  bool              `yaml:"strict"`
	Palette map[string]string `yaml:"palette,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{Width: app.DefaultWidth, Height: app.DefaultHeight},
		Window: WindowConfig{
			Title:  "chromaspiral",
			Width:  app.DefaultWidth,
			Height: app.DefaultHeight,
			TPS:    60,
		},
		Headless: HeadlessConfig{
			Hz:            60,
			SurfaceWidth:  app.DefaultWidth,
			SurfaceHeight: app.DefaultHeight,
			DrawEvery:     1,
		},
		Render: RenderConfig{ClearColor: "#000000", HUD: true},
		Colors: ColorsConfig{Strict: true},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks ranges and color syntax.
func (c *Config) Validate() error {
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return errors.Errorf("viewport size must not be negative, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS < 0 {
		return errors.Errorf("window tps must not be negative, got %d", c.Window.TPS)
	}
	if c.Headless.Hz <= 0 {
		return errors.Errorf("headless hz must be positive, got %d", c.Headless.Hz)
	}
	if c.Headless.SurfaceWidth <= 0 || c.Headless.SurfaceHeight <= 0 {
		return errors.Errorf("headless surface must be positive, got %dx%d", c.Headless.SurfaceWidth, c.Headless.SurfaceHeight)
	}
	if c.Headless.DrawEvery < 0 {
		return errors.Errorf("headless draw_every must not be negative, got %d", c.Headless.DrawEvery)
	}
	if c.Render.Workers < 0 {
		return errors.Errorf("render workers must not be negative, got %d", c.Render.Workers)
	}
	if _, err := quarkgl.ParseHex(c.Render.ClearColor); err != nil {
		return errors.Wrap(err, "render clear_color")
	}
	if _, err := c.ColorTable(); err != nil {
		return err
	}
	return nil
}

// ColorTable builds the note palette described by c.
func (c *Config) ColorTable() (*chroma.ColorTable, error) {
	colors, err := chroma.DefaultColorTable().WithOverrides(c.Colors.Palette)
	if err != nil {
		return nil, errors.Wrap(err, "colors")
	}
	if !c.Colors.Strict {
		colors = colors.Lenient()
	}
	return colors, nil
}

// App returns the app configuration.
func (c *Config) App() (app.Config, error) {
	colors, err := c.ColorTable()
	if err != nil {
		return app.Config{}, err
	}
	clearColor, err := quarkgl.ParseHex(c.Render.ClearColor)
	if err != nil {
		return app.Config{}, errors.Wrap(err, "render clear_color")
	}
	return app.Config{
		Width:      c.Viewport.Width,
		Height:     c.Viewport.Height,
		Colors:     colors,
		Workers:    c.Render.Workers,
		ClearColor: clearColor,
		HUD:        c.Render.HUD,
	}, nil
}

// HAL returns the window and headless runner configurations.
func (c *Config) HAL() (hal.WindowConfig, hal.HeadlessConfig) {
	return hal.WindowConfig{
			Title:     c.Window.Title,
			Width:     c.Window.Width,
			Height:    c.Window.Height,
			TPS:       c.Window.TPS,
			Resizable: c.Window.Resizable,
		}, hal.HeadlessConfig{
			Hz:            c.Headless.Hz,
			Ticks:         c.Headless.Ticks,
			SurfaceWidth:  c.Headless.SurfaceWidth,
			SurfaceHeight: c.Headless.SurfaceHeight,
			DrawEvery:     c.Headless.DrawEvery,
		}
}
