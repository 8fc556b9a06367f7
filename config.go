package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	errUnknownConfigFormat = errors.New("unknown config format")
	errInvalidConfig       = errors.New("invalid config")
)

type keyBindings struct {
	X string `yaml:"x" toml:"x"`
	Y string `yaml:"y" toml:"y"`
	Z string `yaml:"z" toml:"z"`
}

type config struct {
	Canvas     string `yaml:"canvas" toml:"canvas"`
	LogElement string `yaml:"log_element" toml:"log_element"`
	LogLevel   string `yaml:"log_level" toml:"log_level"`

	FPS int `yaml:"fps" toml:"fps"`
	// Animation step per frame in degrees.
	AnimationStep float64 `yaml:"animation_step" toml:"animation_step"`

	Keys       keyBindings `yaml:"keys" toml:"keys"`
	ClearColor []float32   `yaml:"clear_color" toml:"clear_color"`

	Text       []string  `yaml:"text" toml:"text"`
	TextOffset []float32 `yaml:"text_offset" toml:"text_offset"`
	Font       string    `yaml:"font" toml:"font"`
	FontSize   int       `yaml:"font_size" toml:"font_size"`
}

func defaultConfig() *config {
	return &config{
		Canvas:        "mapCanvas",
		LogElement:    "log",
		LogLevel:      "info",
		FPS:           60,
		AnimationStep: 1,
		Keys: keyBindings{
			X: "KeyX",
			Y: "KeyY",
			Z: "KeyZ",
		},
		ClearColor: []float32{0, 0, 0, 1},
		Text: []string{
			"Use the X, Y and Z keys to select axes of rotation while moving the mouse up or down.",
			"Click to animate.",
		},
		TextOffset: []float32{16, 16},
		Font:       "sans-serif",
		FontSize:   12,
	}
}

// loadConfig decodes YAML or TOML depending on the extension of name.
// Fields missing in data keep their default values.
func loadConfig(name string, data []byte) (*config, error) {
	c := defaultConfig()
	switch ext := path.Ext(name); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownConfigFormat, ext)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *config) validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", errInvalidConfig, c.FPS)
	case c.AnimationStep <= 0:
		return fmt.Errorf("%w: animation_step must be positive, got %g", errInvalidConfig, c.AnimationStep)
	case len(c.ClearColor) != 4:
		return fmt.Errorf("%w: clear_color must have 4 elements, got %d", errInvalidConfig, len(c.ClearColor))
	case len(c.TextOffset) != 2:
		return fmt.Errorf("%w: text_offset must have 2 elements, got %d", errInvalidConfig, len(c.TextOffset))
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font_size must be positive, got %d", errInvalidConfig, c.FontSize)
	}
	keys := map[string]bool{}
	for _, k := range []string{c.Keys.X, c.Keys.Y, c.Keys.Z} {
		if k == "" {
			return fmt.Errorf("%w: empty key binding", errInvalidConfig)
		}
		if keys[k] {
			return fmt.Errorf("%w: key %s is bound twice", errInvalidConfig, k)
		}
		keys[k] = true
	}
	return nil
}

// axisOfKey returns the rotation axis bound to the keyboard event code.
func (c *config) axisOfKey(code string) (axis, bool) {
	switch code {
	case c.Keys.X:
		return axisX, true
	case c.Keys.Y:
		return axisY, true
	case c.Keys.Z:
		return axisZ, true
	}
	return 0, false
}
