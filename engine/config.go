package engine

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/underwell/parameter"
)

// Minimum world size fitting the fixed level layout
const (
	MinWorldWidth  = 480
	MinWorldHeight = 320
)

// Config holds runtime settings, simulation tuning stays in parameter
type Config struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Seed drives the world RNG, zero picks a time-based seed
	Seed int64 `toml:"seed"`

	FrameInterval time.Duration `toml:"frame_interval"`
	MaxCatchUp    int           `toml:"max_catch_up"`

	// ScoreFile is the high-score store path, empty disables persistence
	ScoreFile string `toml:"score_file"`

	Audio bool `toml:"audio"`
	Debug bool `toml:"debug"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() Config {
	return Config{
		Width:         parameter.DefaultWorldWidth,
		Height:        parameter.DefaultWorldHeight,
		FrameInterval: parameter.FrameUpdateInterval,
		MaxCatchUp:    parameter.MaxCatchUpTicks,
		ScoreFile:     "underwell_score.toml",
		Audio:         true,
	}
}

// LoadConfig reads a TOML file over the defaults
// Keys absent from the file keep their default values
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges that would break the level layout or the loop
func (c Config) Validate() error {
	if c.Width < MinWorldWidth || c.Height < MinWorldHeight {
		return errors.Errorf("world size %.0fx%.0f below minimum %dx%d", c.Width, c.Height, MinWorldWidth, MinWorldHeight)
	}
	if c.FrameInterval <= 0 {
		return errors.Errorf("frame interval must be positive, got %s", c.FrameInterval)
	}
	if c.MaxCatchUp < 1 {
		return errors.Errorf("max catch-up must be at least 1, got %d", c.MaxCatchUp)
	}
	return nil
}
