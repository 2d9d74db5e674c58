package kandel

import (
	"errors"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/kletshuffle/internal/rng"
	"github.com/katalvlaran/kletshuffle/kgraph"
)

var (
	// ErrInvalidK indicates k < 2.
	ErrInvalidK = kgraph.ErrInvalidK

	// ErrSequenceTooShort indicates k >= len(seq).
	ErrSequenceTooShort = kgraph.ErrSequenceTooShort

	// ErrNotCyclic indicates a rotation of a sequence that is not k-cyclic.
	ErrNotCyclic = errors.New("kandel: sequence is not k-cyclic")

	// ErrRotationPoint indicates a rotation point outside [k, len(seq)].
	ErrRotationPoint = errors.New("kandel: rotation point out of range")

	// ErrSwapPositions indicates swap positions that are not a<b<c<d inside
	// the vertex range, or whose (k-1)-mers do not pair up.
	ErrSwapPositions = errors.New("kandel: invalid swap positions")

	// ErrInvariantViolated indicates an output that lost a k-let.
	ErrInvariantViolated = errors.New("kandel: invariant violated")
)

const (
	// DefaultMaxSwapAttempts bounds the seam search of one Transition.
	DefaultMaxSwapAttempts = 5000

	// DefaultSteps is the number of moves Shuffle chains.
	DefaultSteps = 100
)

// Options configures the randomized moves.
type Options struct {
	Rand            *rand.Rand
	MaxSwapAttempts int
	Steps           int
	Debug           bool
	Logger          *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the default budgets and a nil (default-seeded) source.
func DefaultOptions() Options {
	return Options{MaxSwapAttempts: DefaultMaxSwapAttempts, Steps: DefaultSteps}
}

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

// WithSeed sets a deterministic random source (seed==0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option { return func(o *Options) { o.Rand = rng.FromSeed(seed) } }

// WithMaxSwapAttempts sets the seam search budget; n <= 0 keeps the default.
func WithMaxSwapAttempts(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSwapAttempts = n
		}
	}
}

// WithSteps sets how many moves Shuffle chains; n <= 0 keeps the default.
func WithSteps(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Steps = n
		}
	}
}

// WithDebug toggles debug logging.
func WithDebug(on bool) Option { return func(o *Options) { o.Debug = on } }

// WithLogger sets the logger used when Debug is on.
func WithLogger(l *log.Logger) Option { return func(o *Options) { o.Logger = l } }

func resolve(opts []Option) Options {
	var o = DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	o.Rand = rng.Or(o.Rand)

	return o
}

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
		Prefix:          "kandel",
	})
}
