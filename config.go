package trellis

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds scene tunables. Environment variables use the TRELLIS_
// prefix, e.g. TRELLIS_DEBUG=true or TRELLIS_MAX_TREE_DEPTH=64.
type Config struct {
	// Debug enables disposed-node panics and tree-shape warnings.
	Debug bool `envconfig:"DEBUG" default:"false"`
	// MaxTreeDepth is the depth above which debug mode warns.
	MaxTreeDepth int `envconfig:"MAX_TREE_DEPTH" default:"32"`
	// MaxChildCount is the child count above which debug mode warns.
	MaxChildCount int `envconfig:"MAX_CHILD_COUNT" default:"1000"`
	// DeferredCap is the initial capacity of the deferred mutation queue.
	DeferredCap int `envconfig:"DEFERRED_CAP" default:"64"`
}

// DefaultConfig returns the configuration used by NewScene.
func DefaultConfig() Config {
	return Config{
		MaxTreeDepth:  32,
		MaxChildCount: 1000,
		DeferredCap:   64,
	}
}

// LoadConfig reads a Config from TRELLIS_* environment variables, falling
// back to defaults for anything unset.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("trellis", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.MaxTreeDepth <= 0 || cfg.MaxChildCount <= 0 {
		return Config{}, fmt.Errorf("load config: limits must be positive (depth %d, children %d)",
			cfg.MaxTreeDepth, cfg.MaxChildCount)
	}
	if cfg.DeferredCap < 0 {
		return Config{}, fmt.Errorf("load config: negative deferred capacity %d", cfg.DeferredCap)
	}
	return cfg, nil
}
