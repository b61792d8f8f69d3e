package force

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by [Config.Validate] and [New] when a parameter
// is out of range. The concrete problem is wrapped into the message.
var ErrInvalidConfig = errors.New("invalid layout config")

// Config holds every tunable of the simulation. [DefaultConfig] reproduces
// the reference behavior.
type Config struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`

	// Iterations is the exact number of relaxation steps. There is no
	// convergence test.
	Iterations int `json:"iterations" toml:"iterations"`

	// Step scales velocity into position change each iteration.
	Step float64 `json:"step" toml:"step"`

	CenterStrength    float64 `json:"center_strength" toml:"center_strength"`
	CollisionDistance float64 `json:"collision_distance" toml:"collision_distance"`
	CollisionStrength float64 `json:"collision_strength" toml:"collision_strength"`
	LinkDistance      float64 `json:"link_distance" toml:"link_distance"`
	LinkStrength      float64 `json:"link_strength" toml:"link_strength"`

	// Damping multiplies velocity after every integration step.
	Damping float64 `json:"damping" toml:"damping"`

	// Margin keeps nodes away from the canvas border.
	Margin float64 `json:"margin" toml:"margin"`

	// LinkSpan is how many following group members each node links to.
	LinkSpan int `json:"link_span" toml:"link_span"`

	// SnapshotEvery controls how often the snapshot callback fires.
	// Zero disables snapshots.
	SnapshotEvery int `json:"snapshot_every" toml:"snapshot_every"`
}

// Reference parameter values.
const (
	DefaultWidth             = 800.0
	DefaultHeight            = 600.0
	DefaultIterations        = 100
	DefaultStep              = 0.1
	DefaultCenterStrength    = 0.001
	DefaultCollisionDistance = 100.0
	DefaultCollisionStrength = 0.1
	DefaultLinkDistance      = 150.0
	DefaultLinkStrength      = 0.01
	DefaultDamping           = 0.9
	DefaultMargin            = 50.0
	DefaultLinkSpan          = 2
	DefaultSnapshotEvery     = 10
)

// DefaultConfig returns the reference configuration for an 800x600 canvas.
func DefaultConfig() Config {
	return Config{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		Iterations:        DefaultIterations,
		Step:              DefaultStep,
		CenterStrength:    DefaultCenterStrength,
		CollisionDistance: DefaultCollisionDistance,
		CollisionStrength: DefaultCollisionStrength,
		LinkDistance:      DefaultLinkDistance,
		LinkStrength:      DefaultLinkStrength,
		Damping:           DefaultDamping,
		Margin:            DefaultMargin,
		LinkSpan:          DefaultLinkSpan,
		SnapshotEvery:     DefaultSnapshotEvery,
	}
}

// Validate reports the first out-of-range parameter, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !(c.Width > 0):
		return fmt.Errorf("%w: width must be positive, got %v", ErrInvalidConfig, c.Width)
	case !(c.Height > 0):
		return fmt.Errorf("%w: height must be positive, got %v", ErrInvalidConfig, c.Height)
	case c.Iterations < 0:
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalidConfig, c.Iterations)
	case !(c.Step > 0):
		return fmt.Errorf("%w: step must be positive, got %v", ErrInvalidConfig, c.Step)
	case c.Margin < 0 || 2*c.Margin > c.Width || 2*c.Margin > c.Height:
		return fmt.Errorf("%w: margin %v does not fit a %vx%v canvas", ErrInvalidConfig, c.Margin, c.Width, c.Height)
	case c.Damping < 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping must be within [0,1], got %v", ErrInvalidConfig, c.Damping)
	case c.CollisionDistance < 0:
		return fmt.Errorf("%w: collision distance must not be negative, got %v", ErrInvalidConfig, c.CollisionDistance)
	case c.LinkDistance < 0:
		return fmt.Errorf("%w: link distance must not be negative, got %v", ErrInvalidConfig, c.LinkDistance)
	case c.LinkSpan < 0:
		return fmt.Errorf("%w: link span must not be negative, got %d", ErrInvalidConfig, c.LinkSpan)
	case c.SnapshotEvery < 0:
		return fmt.Errorf("%w: snapshot interval must not be negative, got %d", ErrInvalidConfig, c.SnapshotEvery)
	}
	return nil
}

// Center returns the canvas center.
func (c Config) Center() (x, y float64) { return c.Width / 2, c.Height / 2 }

// Bounds returns the clamp rectangle [minX,maxX] x [minY,maxY].
func (c Config) Bounds() (minX, minY, maxX, maxY float64) {
	return c.Margin, c.Margin, c.Width - c.Margin, c.Height - c.Margin
}
