package retro3d

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is a TOML-loadable description of a Renderer's startup
// parameters (§10).
type Config struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	HFovDegrees float64 `toml:"h_fov_degrees"`
	Debug       bool    `toml:"debug"`
}

// LoadConfig reads and parses a TOML config file at path (§10).
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("retro3d: load config: %w", err)
	}
	return cfg, nil
}

// Renderer builds a Renderer from the config's viewport and field of
// view (§10).
func (c Config) Renderer() (*Renderer, error) {
	r, err := NewRenderer(c.Width, c.Height, c.HFovDegrees)
	if err != nil {
		return nil, err
	}
	r.State().Debug = c.Debug
	return r, nil
}
