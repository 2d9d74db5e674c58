// Package config loads the kletshuffle TOML configuration.
//
//	method = "kandel"
//	k = 3
//	seed = 7
//	count = 10
//
//	[kandel]
//	steps = 500
//
// Keys left out keep their Default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/kletshuffle/altschul"
	"github.com/katalvlaran/kletshuffle/kandel"
	"github.com/katalvlaran/kletshuffle/shuffle"
	"github.com/katalvlaran/kletshuffle/splitshuffle"
)

// ErrInvalidConfig indicates a value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the file layout.
type Config struct {
	Method   string   `toml:"method"`
	K        int      `toml:"k"`
	Seed     int64    `toml:"seed"`
	Count    int      `toml:"count"`
	Altschul Altschul `toml:"altschul"`
	Kandel   Kandel   `toml:"kandel"`
	Split    Split    `toml:"split"`
}

// Altschul holds the [altschul] table.
type Altschul struct {
	MaxAttempts int `toml:"max_attempts"`
}

// Kandel holds the [kandel] table.
type Kandel struct {
	Steps           int `toml:"steps"`
	MaxSwapAttempts int `toml:"max_swap_attempts"`
}

// Split holds the [split] table.
type Split struct {
	Alphabet string `toml:"alphabet"`
	Loop     bool   `toml:"loop"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Method:   shuffle.MethodAltschul,
		K:        2,
		Count:    1,
		Altschul: Altschul{MaxAttempts: altschul.DefaultMaxAttempts},
		Kandel:   Kandel{Steps: kandel.DefaultSteps, MaxSwapAttempts: kandel.DefaultMaxSwapAttempts},
		Split:    Split{Alphabet: splitshuffle.DefaultAlphabet, Loop: true},
	}
}

// Load reads and validates path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	var cfg = Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undec[0].String())
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and the method name.
func (c *Config) Validate() error {
	switch {
	case !slices.Contains(shuffle.Methods(), c.Method):
		return fmt.Errorf("%w: method %q not in %v", ErrInvalidConfig, c.Method, shuffle.Methods())
	case c.K < 2:
		return fmt.Errorf("%w: k=%d, want >= 2", ErrInvalidConfig, c.K)
	case c.Count < 1:
		return fmt.Errorf("%w: count=%d, want >= 1", ErrInvalidConfig, c.Count)
	case c.Altschul.MaxAttempts < 1:
		return fmt.Errorf("%w: altschul.max_attempts=%d", ErrInvalidConfig, c.Altschul.MaxAttempts)
	case c.Kandel.Steps < 1:
		return fmt.Errorf("%w: kandel.steps=%d", ErrInvalidConfig, c.Kandel.Steps)
	case c.Kandel.MaxSwapAttempts < 1:
		return fmt.Errorf("%w: kandel.max_swap_attempts=%d", ErrInvalidConfig, c.Kandel.MaxSwapAttempts)
	case c.Split.Alphabet == "":
		return fmt.Errorf("%w: split.alphabet is empty", ErrInvalidConfig)
	}

	return nil
}

// ShuffleOptions maps c onto the dispatcher options.
func (c *Config) ShuffleOptions() shuffle.Options {
	return shuffle.Options{
		Method:          c.Method,
		K:               c.K,
		Seed:            c.Seed,
		MaxAttempts:     c.Altschul.MaxAttempts,
		Steps:           c.Kandel.Steps,
		MaxSwapAttempts: c.Kandel.MaxSwapAttempts,
		Alphabet:        c.Split.Alphabet,
		Loop:            c.Split.Loop,
	}
}
