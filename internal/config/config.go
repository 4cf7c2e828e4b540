// Package config provides configuration constants, the user settings
// file, and resolution of raw settings into the scalar options the
// layout core consumes.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/hypergrid/hypergrid/internal/anim"
	"github.com/hypergrid/hypergrid/internal/tile"
	"github.com/pelletier/go-toml/v2"
)

// Config is the user-facing configuration file.
type Config struct {
	Animation  AnimationSettings  `toml:"animation"`
	Layout     LayoutSettings     `toml:"layout"`
	Appearance AppearanceSettings `toml:"appearance"`
}

// AnimationSettings configures durations and easing curves. The
// per-kind values fall back to the defaults: a duration of 0 or less
// means "use duration_ms", and a bezier quadruple of all zeros means
// "use bezier". A top-level duration_ms of 0 disables that animation
// kind entirely (sets snap instead of animate).
type AnimationSettings struct {
	DurationMs     int `toml:"duration_ms"`
	DurationInMs   int `toml:"duration_in_ms"`
	DurationOutMs  int `toml:"duration_out_ms"`
	DurationMoveMs int `toml:"duration_move_ms"`

	Bezier     []float64 `toml:"bezier"`
	BezierIn   []float64 `toml:"bezier_in"`
	BezierOut  []float64 `toml:"bezier_out"`
	BezierMove []float64 `toml:"bezier_move"`

	PopinPercent float64 `toml:"popin_percent"`
}

// LayoutSettings configures the split policy and gaps.
type LayoutSettings struct {
	GapsIn               int     `toml:"gaps_in"`
	GapsOut              int     `toml:"gaps_out"`
	PreserveSplit        bool    `toml:"preserve_split"`
	SplitWidthMultiplier float64 `toml:"split_width_multiplier"`
	ForceSplit           string  `toml:"force_split"` // mouse | lefttop | rightbottom
	SmartSplit           bool    `toml:"smart_split"`
	TileByDefault        bool    `toml:"tile_by_default"`
}

// AppearanceSettings configures the demo host's presentation.
type AppearanceSettings struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Animation: AnimationSettings{
			DurationMs:   int(DefaultAnimationDuration / time.Millisecond),
			Bezier:       DefaultBezier[:],
			PopinPercent: DefaultPopinPercent,
		},
		Layout: LayoutSettings{
			GapsIn:               DefaultGapIn,
			GapsOut:              DefaultGapOut,
			SplitWidthMultiplier: DefaultSplitWidthMultiplier,
			ForceSplit:           "mouse",
			TileByDefault:        true,
		},
	}
}

// Path returns the location of the user config file, creating parent
// directories as needed.
func Path() (string, error) {
	return xdg.ConfigFile("hypergrid/config.toml")
}

// Load reads the user config file, layering it over the defaults. A
// missing file is not an error; the defaults are returned.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// ForceSplitPolicy parses the force_split setting. Unknown values fall
// back to the mouse policy.
func (c *Config) ForceSplitPolicy() tile.ForceSplit {
	switch c.Layout.ForceSplit {
	case "lefttop", "left", "top":
		return tile.ForceSplitFirst
	case "rightbottom", "right", "bottom":
		return tile.ForceSplitSecond
	default:
		return tile.ForceSplitMouse
	}
}

// TileOptions resolves the raw settings into the options the layout
// tree consumes, applying the per-kind fallbacks.
func (c *Config) TileOptions() tile.Options {
	base := resolveCurve(c.Animation.Bezier, nil)
	baseDur := time.Duration(c.Animation.DurationMs) * time.Millisecond

	popin := c.Animation.PopinPercent
	if popin <= 0 || popin >= 1 {
		popin = DefaultPopinPercent
	}

	return tile.Options{
		GapIn:                c.Layout.GapsIn,
		GapOut:               c.Layout.GapsOut,
		PreserveSplit:        c.Layout.PreserveSplit,
		SplitWidthMultiplier: c.Layout.SplitWidthMultiplier,
		ForceSplit:           c.ForceSplitPolicy(),
		SmartSplit:           c.Layout.SmartSplit,
		PopinScale:           popin,
		Move: anim.Config{
			Curve:    resolveCurve(c.Animation.BezierMove, base),
			Duration: resolveDuration(c.Animation.DurationMoveMs, baseDur),
		},
		In: anim.Config{
			Curve:    resolveCurve(c.Animation.BezierIn, base),
			Duration: resolveDuration(c.Animation.DurationInMs, baseDur),
		},
		Out: anim.Config{
			Curve:    resolveCurve(c.Animation.BezierOut, base),
			Duration: resolveDuration(c.Animation.DurationOutMs, baseDur),
		},
	}
}

// resolveDuration falls back to base when the per-kind value is unset.
func resolveDuration(ms int, base time.Duration) time.Duration {
	if ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return base
}

// resolveCurve builds a curve from a quadruple. A quadruple that is
// missing, malformed, or all zeros falls back: first to the supplied
// base curve, then to the built-in default.
func resolveCurve(quad []float64, base *anim.Curve) *anim.Curve {
	if len(quad) == 4 && (quad[0] != 0 || quad[1] != 0 || quad[2] != 0 || quad[3] != 0) {
		return anim.NewCurve(quad[0], quad[1], quad[2], quad[3])
	}
	if base != nil {
		return base
	}
	return anim.NewCurve(DefaultBezier[0], DefaultBezier[1], DefaultBezier[2], DefaultBezier[3])
}
