package stream

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// Animation types.
const (
	TypeKeyframes = "keyframes"
	TypeGradient  = "gradient"
	TypeTwinkle   = "twinkle"
	TypeStreak    = "streak"
)

// Playback modes of a keyframe animation.
const (
	ModeOnce    = "once"
	ModeWrap    = "wrap"
	ModeReverse = "reverse"
)

// Limits on the timing and chance settings.
const (
	MaxFrameRate     = 1000
	MinAnimationTime = 1
	MaxChance        = math.MaxInt32
)

var (
	ErrInvalidConfig    = errors.New("invalid config")
	ErrUnknownAnimation = errors.New("unknown animation type")
)

// Config of the streamer.
type Config struct {
	Mqtt MqttConfig `yaml:"mqtt" toml:"mqtt"`

	// Frames per second sent to the device.
	FrameRate float64 `yaml:"frameRate" toml:"frameRate"`
	// Seconds each animation plays before the next one fades in.
	AnimationTime float64 `yaml:"animationTime" toml:"animationTime"`
	// Seconds the fade between two animations takes.
	TransitionTime float64 `yaml:"transitionTime" toml:"transitionTime"`

	Animations []AnimationConfig `yaml:"animations" toml:"animations"`
}

// MqttConfig holds the broker connection.
type MqttConfig struct {
	URL      string `yaml:"url" toml:"url"`
	Username string `yaml:"username" toml:"username"`
	Password string `yaml:"password" toml:"password"`
	ClientID string `yaml:"clientId" toml:"clientId"`
	Topics   struct {
		Stream string `yaml:"stream" toml:"stream"`
	} `yaml:"topics" toml:"topics"`
}

// AnimationConfig describes one entry of the animation playlist. Which fields matter
// depends on Type.
type AnimationConfig struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`

	// keyframes
	Mode      string           `yaml:"mode" toml:"mode"`
	Spread    float64          `yaml:"spread" toml:"spread"`
	Keyframes []KeyframeConfig `yaml:"keyframes" toml:"keyframes"`

	// gradient
	Gradient    []GradientStop `yaml:"gradient" toml:"gradient"`
	TrailLength float64        `yaml:"trailLength" toml:"trailLength"`

	// twinkle and streak; Colours are the background
	Colours    []string `yaml:"colours" toml:"colours"`
	Foreground string   `yaml:"foreground" toml:"foreground"`
	Chance     int      `yaml:"chance" toml:"chance"`
	Curve      string   `yaml:"curve" toml:"curve"`

	// Playback rate, 1 is real time.
	Speed float64 `yaml:"speed" toml:"speed"`
}

// KeyframeConfig is a colour at a time. Brightness may be given as a number or a string
// and defaults to 1.
type KeyframeConfig struct {
	Colour     string      `yaml:"colour" toml:"colour"`
	Brightness interface{} `yaml:"brightness" toml:"brightness"`
	Time       float64     `yaml:"time" toml:"time"`
	Curve      string      `yaml:"curve" toml:"curve"`
}

// GradientStop is a hue at a position along a gradient.
type GradientStop struct {
	Hue float64 `yaml:"hue" toml:"hue"`
	Pos float64 `yaml:"pos" toml:"pos"`
}

// DefaultConfig returns the settings used for anything a config file leaves out.
func DefaultConfig() *Config {
	c := new(Config)
	c.Mqtt.ClientID = "ledtx"
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.FrameRate = 30
	c.AnimationTime = 60
	c.TransitionTime = 5

	return c
}

// LoadConfig reads a config file, choosing the decoder from its extension. Files ending in
// .toml are TOML, everything else is YAML.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := DefaultConfig()
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), c); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	}

	for i := range c.Animations {
		c.Animations[i].applyDefaults()
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (a *AnimationConfig) applyDefaults() {
	if a.Speed == 0 {
		a.Speed = 1
	}

	if a.Mode == "" {
		a.Mode = ModeWrap
	}
}

// Validate checks the config for values the streamer cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Mqtt.URL == "":
		return fmt.Errorf("%w: mqtt url is required", ErrInvalidConfig)
	case c.Mqtt.Topics.Stream == "":
		return fmt.Errorf("%w: mqtt stream topic is required", ErrInvalidConfig)
	case c.FrameRate <= 0 || c.FrameRate > MaxFrameRate:
		return fmt.Errorf("%w: frameRate must be in (0, %d], got %g", ErrInvalidConfig, MaxFrameRate, c.FrameRate)
	case !(c.AnimationTime >= MinAnimationTime):
		return fmt.Errorf("%w: animationTime must be at least %d s, got %g", ErrInvalidConfig, MinAnimationTime,
			c.AnimationTime)
	case c.TransitionTime < 0:
		return fmt.Errorf("%w: transitionTime must not be negative, got %g", ErrInvalidConfig, c.TransitionTime)
	case len(c.Animations) == 0:
		return fmt.Errorf("%w: no animations", ErrInvalidConfig)
	}

	for i, a := range c.Animations {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("animation %d (%s): %w", i, a.Name, err)
		}
	}

	return nil
}

// Validate checks the fields used by the animation type.
func (a *AnimationConfig) Validate() error {
	switch a.Type {
	case TypeKeyframes:
		if len(a.Keyframes) == 0 {
			return fmt.Errorf("%w: no keyframes", ErrInvalidConfig)
		}

		switch a.Mode {
		case ModeOnce, ModeWrap, ModeReverse:
		default:
			return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, a.Mode)
		}

		for _, k := range a.Keyframes {
			if _, err := k.Value(); err != nil {
				return err
			}
		}
	case TypeGradient:
		if len(a.Gradient) < 2 {
			return fmt.Errorf("%w: a gradient needs at least 2 stops", ErrInvalidConfig)
		}

		if a.TrailLength <= 0 {
			return fmt.Errorf("%w: trailLength must be positive", ErrInvalidConfig)
		}
	case TypeTwinkle, TypeStreak:
		if len(a.Colours) == 0 {
			return fmt.Errorf("%w: no colours", ErrInvalidConfig)
		}

		if a.Chance <= 0 || a.Chance > MaxChance {
			return fmt.Errorf("%w: chance must be in [1, %d], got %d", ErrInvalidConfig, MaxChance, a.Chance)
		}

		if _, _, err := a.colours(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAnimation, a.Type)
	}

	if a.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive", ErrInvalidConfig)
	}

	return nil
}

// Value returns the colour of the keyframe scaled by its brightness.
func (k KeyframeConfig) Value() (colorful.Color, error) {
	c, err := colorful.Hex(k.Colour)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: colour %q: %v", ErrInvalidConfig, k.Colour, err)
	}

	if k.Brightness == nil {
		return c, nil
	}

	b, err := cast.ToFloat64E(k.Brightness)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: brightness %v: %v", ErrInvalidConfig, k.Brightness, err)
	}

	return colorful.Color{}.BlendRgb(c, b), nil
}

// colours parses the foreground and background colours of a particle animation.
func (a *AnimationConfig) colours() (fore colorful.Color, back []colorful.Color, err error) {
	fore, err = colorful.Hex(a.Foreground)
	if err != nil {
		return fore, nil, fmt.Errorf("%w: foreground %q: %v", ErrInvalidConfig, a.Foreground, err)
	}

	back = make([]colorful.Color, 0, len(a.Colours))
	for _, h := range a.Colours {
		c, err := colorful.Hex(h)
		if err != nil {
			return fore, nil, fmt.Errorf("%w: colour %q: %v", ErrInvalidConfig, h, err)
		}
		back = append(back, c)
	}

	return fore, back, nil
}
