package gyp

import (
	"errors"
	"flag"
)

// DefaultMaxDepth matches the nesting limit of encoding/json.
const DefaultMaxDepth = 10000

// Config controls the limits a Parser enforces.
type Config struct {
	// MaxDepth bounds how deeply objects and arrays may nest. Zero disables
	// the limit.
	MaxDepth int `yaml:"max_depth"`
	// DisallowTrailingContent rejects input that has anything other than
	// whitespace or comments after the top-level value.
	DisallowTrailingContent bool `yaml:"disallow_trailing_content"`
}

// DefaultConfig returns the configuration used by the package-level
// functions.
func DefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth}
}

func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix("gyp.", f)
}

func (cfg *Config) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	f.IntVar(&cfg.MaxDepth, prefix+"max-depth", DefaultMaxDepth, "Maximum nesting depth of objects and arrays. 0 disables the limit.")
	f.BoolVar(&cfg.DisallowTrailingContent, prefix+"disallow-trailing-content", false, "Reject input with content after the top-level value.")
}

func (cfg *Config) Validate() error {
	if cfg.MaxDepth < 0 {
		return errors.New("max depth must not be negative")
	}
	return nil
}
