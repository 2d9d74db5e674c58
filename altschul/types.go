package altschul

import (
	"errors"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/kletshuffle/internal/rng"
)

var (
	// ErrSearchExhausted indicates that no connecting last-edge set was found
	// within MaxAttempts distinct draws.
	ErrSearchExhausted = errors.New("altschul: exhausted last-edge search")

	// ErrInvariantViolated indicates an internal post-condition failure.
	ErrInvariantViolated = errors.New("altschul: invariant violated")
)

// DefaultMaxAttempts bounds the number of distinct last-edge draws tested.
const DefaultMaxAttempts = 1000

// duplicateDrawFactor caps total draws (repeats included) at
// MaxAttempts*duplicateDrawFactor, so small graphs whose every combination
// has been seen still terminate.
const duplicateDrawFactor = 50

// Options configures Permute.
//
// Fields:
//   - Rand       : random source; nil uses the seed==0 default stream.
//   - MaxAttempts: distinct connectivity tests before ErrSearchExhausted.
//   - Debug      : log the edge ordering, accepted last edges and walk.
//   - Logger     : destination for Debug output; nil creates a stderr logger.
type Options struct {
	Rand        *rand.Rand
	MaxAttempts int
	Debug       bool
	Logger      *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options{MaxAttempts: DefaultMaxAttempts}.
func DefaultOptions() Options {
	return Options{MaxAttempts: DefaultMaxAttempts}
}

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed sets a deterministic random source (seed==0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rng.FromSeed(seed) }
}

// WithMaxAttempts sets the connectivity search budget; n <= 0 keeps the default.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxAttempts = n
		}
	}
}

// WithDebug toggles debug logging. It never changes the result.
func WithDebug(on bool) Option {
	return func(o *Options) { o.Debug = on }
}

// WithLogger sets the logger used when Debug is on.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Result is the outcome of one permutation.
type Result struct {
	// Seq is the permuted sequence.
	Seq string

	// Attempts is the number of distinct last-edge sets tested.
	Attempts int

	// Draws is the number of last-edge sets sampled, repeats included.
	Draws int
}

// debugLogger returns nil when Debug is off.
func (o Options) debugLogger() *log.Logger {
	if !o.Debug {
		return nil
	}
	if o.Logger != nil {
		return o.Logger
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
		Prefix:          "altschul",
	})
}
