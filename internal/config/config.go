// Package config loads the sandbox YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxSize is the largest configuration file Load accepts.
const MaxSize = 1024 * 1024

// Surface policy names accepted in surface_policy.
const (
	PolicyAuto       = "auto"
	PolicyPersistent = "persistent"
	PolicyTransient  = "transient"
)

// Shader source modes accepted in shaders.
const (
	ShadersWGSL  = "wgsl"
	ShadersSPIRV = "spirv"
)

var (
	// ErrNotRegular is returned when the config path is a directory or device.
	ErrNotRegular = errors.New("config: not a regular file")

	// ErrTooLarge is returned for files over MaxSize.
	ErrTooLarge = errors.New("config: file too large")

	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid")
)

// Config is the application configuration. Zero-valued fields in a file
// keep their defaults.
type Config struct {
	Title         string     `yaml:"title"`
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	Scene         string     `yaml:"scene"`
	Backend       string     `yaml:"backend"`
	Texture       string     `yaml:"texture"`
	ClearColor    [4]float64 `yaml:"clear_color"`
	SurfacePolicy string     `yaml:"surface_policy"`
	LogLevel      string     `yaml:"log_level"`
	Shaders       string     `yaml:"shaders"`
}

// Default returns the built-in configuration: a 640x480 "learn wgpu"
// window showing the triangle scene on black.
func Default() Config {
	return Config{
		Title:         "learn wgpu",
		Width:         640,
		Height:        480,
		Scene:         "triangle",
		Texture:       "assets/texture.png",
		ClearColor:    [4]float64{0, 0, 0, 1},
		SurfacePolicy: PolicyAuto,
		LogLevel:      "info",
		Shaders:       ShadersWGSL,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	info, err := os.Stat(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if !info.Mode().IsRegular() {
		return cfg, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	if info.Size() > MaxSize {
		return cfg, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(c)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Scene == "" {
		return fmt.Errorf("%w: empty scene", ErrInvalid)
	}
	switch c.SurfacePolicy {
	case PolicyAuto, PolicyPersistent, PolicyTransient:
	default:
		return fmt.Errorf("%w: surface_policy %q", ErrInvalid, c.SurfacePolicy)
	}
	switch c.Shaders {
	case ShadersWGSL, ShadersSPIRV:
	default:
		return fmt.Errorf("%w: shaders %q", ErrInvalid, c.Shaders)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clear_color[%d] = %v", ErrInvalid, i, v)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}
