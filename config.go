package starwake

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Look carries the render-side description of an ensemble's members. The
// core never interprets it; it is handed to the Host when members are bound.
type Look struct {
	// Template is the mesh template requested from the host for each member.
	Template string `toml:"template"`
	// Texture and Shader name host-side resources.
	Texture string `toml:"texture"`
	Shader  string `toml:"shader"`
	// AmbientGain and SpecularGain scale the member color into the ambient
	// and specular coefficients. The diffuse coefficient is the color itself.
	AmbientGain  float64 `toml:"ambient_gain"`
	SpecularGain float64 `toml:"specular_gain"`
	Shininess    float64 `toml:"shininess"`
}

// Wave is a sinusoidal modulation bias + sin(t*Freq + phase)*Amp.
type Wave struct {
	Freq float64 `toml:"freq"`
	Amp  float64 `toml:"amp"`
	Bias float64 `toml:"bias"`
}

// At evaluates the wave at time t for the given phase offset.
func (w Wave) At(t, phase float64) float64 {
	return w.Bias + math.Sin(t*w.Freq+phase)*w.Amp
}

// Bounds returns the closed interval the wave stays within.
func (w Wave) Bounds() Range {
	return Range{Min: w.Bias - w.Amp, Max: w.Bias + w.Amp}
}

// FlameConfig controls the engine-flame ensemble.
type FlameConfig struct {
	Count int `toml:"count"`
	// X, Y and Z bound the spawn box in ship-local space. The engine mouth sits
	// at X.Max; flames trail toward -X.
	X Range `toml:"x"`
	Y Range `toml:"y"`
	Z Range `toml:"z"`
	// SizeBase is the base size of a flame spawned at the engine mouth;
	// SizeGrowth is added per unit of distance behind it.
	SizeBase   float64    `toml:"size_base"`
	SizeGrowth float64    `toml:"size_growth"`
	Color      ColorRange `toml:"color"`
	// DriftSpeed is the backward speed along -X in units per second.
	DriftSpeed float64 `toml:"drift_speed"`
	Pulse      Wave    `toml:"pulse"`
	// ResetX is the reset plane: a flame whose x drops strictly below it is
	// moved back to RespawnX with fresh y and z.
	ResetX   float64 `toml:"reset_x"`
	RespawnX float64 `toml:"respawn_x"`
	Look     Look    `toml:"look"`
}

// ColorBand assigns Color to temperature samples below Below.
type ColorBand struct {
	Below float64    `toml:"below"`
	Color ColorRange `toml:"color"`
}

// StarConfig controls the starfield ensemble.
type StarConfig struct {
	Count      int   `toml:"count"`
	Radius     Range `toml:"radius"`
	Brightness Range `toml:"brightness"`
	// Base size is SizeBase + SizeGain*brightness.
	SizeBase float64 `toml:"size_base"`
	SizeGain float64 `toml:"size_gain"`
	// Bands are checked in order against a temperature draw in [0, 1). The
	// last band should have Below >= 1 so every draw lands somewhere.
	Bands   []ColorBand `toml:"bands"`
	Twinkle Wave        `toml:"twinkle"`
	// OrbitSpeed is the angular rate about the Y axis in radians per second.
	OrbitSpeed float64 `toml:"orbit_speed"`
	Look       Look    `toml:"look"`
}

// BackdropConfig controls the static background billboards.
type BackdropConfig struct {
	Count int     `toml:"count"`
	X     Range   `toml:"x"`
	Y     Range   `toml:"y"`
	Z     Range   `toml:"z"`
	Size  float64 `toml:"size"`
	Color Color   `toml:"color"`
	Look  Look    `toml:"look"`
}

// ClockConfig controls FrameClock stall handling.
type ClockConfig struct {
	// MaxStep is the largest delta accepted as a real frame, in seconds.
	MaxStep float64 `toml:"max_step"`
	// NominalStep replaces any delta larger than MaxStep.
	NominalStep float64 `toml:"nominal_step"`
}

// Config is the full scene configuration.
type Config struct {
	Flames   FlameConfig    `toml:"flames"`
	Stars    StarConfig     `toml:"stars"`
	Backdrop BackdropConfig `toml:"backdrop"`
	Clock    ClockConfig    `toml:"clock"`
}

// DefaultConfig returns the reference scene: 25 flames, 100 stars and 15
// backdrop billboards.
func DefaultConfig() Config {
	return Config{
		Flames: FlameConfig{
			Count:      25,
			X:          Range{-1.1, -0.6},
			Y:          Range{-0.04, 0.04},
			Z:          Range{-0.075, 0.075},
			SizeBase:   0.04,
			SizeGrowth: 0.02,
			Color: ColorRange{
				Min: Color{1, 0.5, 0.1},
				Max: Color{1, 0.9, 0.1},
			},
			DriftSpeed: 3.0,
			Pulse:      Wave{Freq: 8.0, Amp: 0.3, Bias: 0.7},
			ResetX:     -2.0,
			RespawnX:   -0.6,
			Look: Look{
				Template:     TemplateQuad,
				Texture:      "star_color",
				Shader:       "planet",
				AmbientGain:  0.3,
				SpecularGain: 0.5,
				Shininess:    12,
			},
		},
		Stars: StarConfig{
			Count:      100,
			Radius:     Range{30, 100},
			Brightness: Range{0.3, 1.0},
			SizeBase:   0.008,
			SizeGain:   0.02,
			Bands: []ColorBand{
				{Below: 0.7, Color: ColorRange{Min: Color{1, 0.8, 0.6}, Max: Color{1, 1.0, 0.6}}},
				{Below: 0.9, Color: ColorRange{Min: Color{0.8, 0.9, 1.0}, Max: Color{0.8, 0.9, 1.0}}},
				{Below: 1.0, Color: ColorRange{Min: Color{1, 0.6, 0.5}, Max: Color{1, 0.6, 0.5}}},
			},
			Twinkle:    Wave{Freq: 3.0, Amp: 0.3, Bias: 0.7},
			OrbitSpeed: 0.01,
			Look: Look{
				Template:    TemplateQuad,
				Texture:     "star_color",
				Shader:      "starfield",
				AmbientGain: 0.3,
				Shininess:   1,
			},
		},
		Backdrop: BackdropConfig{
			Count: 15,
			X:     Range{-7.5, 7.5},
			Y:     Range{-7.5, 7.5},
			Z:     Range{-18, -8},
			Size:  0.02,
			Color: ColorWhite,
			Look: Look{
				Template: TemplateQuad,
				Texture:  "star_color",
				Shader:   "billboard",
			},
		},
		Clock: ClockConfig{
			MaxStep:     0.1,
			NominalStep: 0.0167,
		},
	}
}

// DecodeConfig reads TOML from r over the defaults and validates the result.
// Keys absent from the input keep their default values.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML file over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the invariants the animation rules rely on: counts are
// non-negative, ranges are ordered, base sizes stay positive, and the pulse
// and twinkle waves never reach zero.
func (c Config) Validate() error {
	if err := c.Flames.validate(); err != nil {
		return fmt.Errorf("flames: %w", err)
	}
	if err := c.Stars.validate(); err != nil {
		return fmt.Errorf("stars: %w", err)
	}
	if err := c.Backdrop.validate(); err != nil {
		return fmt.Errorf("backdrop: %w", err)
	}
	if c.Clock.MaxStep <= 0 || c.Clock.NominalStep <= 0 {
		return fmt.Errorf("clock: steps must be positive: %w", ErrInvalidConfig)
	}
	if c.Clock.NominalStep > c.Clock.MaxStep {
		return fmt.Errorf("clock: nominal step %g exceeds max step %g: %w",
			c.Clock.NominalStep, c.Clock.MaxStep, ErrInvalidConfig)
	}
	return nil
}

func (c FlameConfig) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count %d: %w", c.Count, ErrInvalidConfig)
	}
	if err := checkBox(c.X, c.Y, c.Z); err != nil {
		return err
	}
	if c.SizeBase <= 0 || c.SizeGrowth < 0 {
		return fmt.Errorf("size base %g growth %g: %w", c.SizeBase, c.SizeGrowth, ErrInvalidConfig)
	}
	if c.RespawnX < c.ResetX {
		return fmt.Errorf("respawn x %g behind reset x %g: %w", c.RespawnX, c.ResetX, ErrInvalidConfig)
	}
	if c.DriftSpeed < 0 {
		return fmt.Errorf("drift speed %g: %w", c.DriftSpeed, ErrInvalidConfig)
	}
	return checkWave("pulse", c.Pulse)
}

func (c StarConfig) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count %d: %w", c.Count, ErrInvalidConfig)
	}
	if err := checkRange("radius", c.Radius); err != nil {
		return err
	}
	if err := checkRange("brightness", c.Brightness); err != nil {
		return err
	}
	if c.SizeBase+c.SizeGain*c.Brightness.Min <= 0 {
		return fmt.Errorf("size base %g gain %g: %w", c.SizeBase, c.SizeGain, ErrInvalidConfig)
	}
	if len(c.Bands) == 0 {
		return fmt.Errorf("no color bands: %w", ErrInvalidConfig)
	}
	prev := 0.0
	for i, b := range c.Bands {
		if b.Below < prev {
			return fmt.Errorf("band %d below %g not ascending: %w", i, b.Below, ErrInvalidConfig)
		}
		prev = b.Below
	}
	if prev < 1 {
		return fmt.Errorf("last band below %g leaves temperatures uncovered: %w", prev, ErrInvalidConfig)
	}
	return checkWave("twinkle", c.Twinkle)
}

func (c BackdropConfig) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count %d: %w", c.Count, ErrInvalidConfig)
	}
	if err := checkBox(c.X, c.Y, c.Z); err != nil {
		return err
	}
	if c.Size <= 0 {
		return fmt.Errorf("size %g: %w", c.Size, ErrInvalidConfig)
	}
	return nil
}

func checkBox(x, y, z Range) error {
	if err := checkRange("x", x); err != nil {
		return err
	}
	if err := checkRange("y", y); err != nil {
		return err
	}
	return checkRange("z", z)
}

func checkRange(name string, r Range) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s range [%g, %g] inverted: %w", name, r.Min, r.Max, ErrInvalidConfig)
	}
	return nil
}

func checkWave(name string, w Wave) error {
	if w.Amp < 0 || w.Bias-w.Amp <= 0 {
		return fmt.Errorf("%s wave bias %g amp %g reaches zero: %w", name, w.Bias, w.Amp, ErrInvalidConfig)
	}
	return nil
}
