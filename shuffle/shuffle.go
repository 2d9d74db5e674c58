// Package shuffle selects one of the k-let preserving permutation engines by
// name and runs it with a single option set.
//
//	out, err := shuffle.Compute(seq, shuffle.DefaultOptions())
//
// The engines stay usable directly: altschul.Permute, kandel.Shuffle and
// splitshuffle.Permute.
package shuffle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/kletshuffle/altschul"
	"github.com/katalvlaran/kletshuffle/internal/rng"
	"github.com/katalvlaran/kletshuffle/kandel"
	"github.com/katalvlaran/kletshuffle/splitshuffle"
)

// ErrUnknownMethod indicates a Method outside Methods().
var ErrUnknownMethod = errors.New("shuffle: unknown method")

// MethodAltschul selects the uniform Euler-path permutation.
const MethodAltschul = "altschul"

// MethodKandel selects the rotation and swap Markov chain.
const MethodKandel = "kandel"

// MethodSplit selects split-and-shuffle.
const MethodSplit = "split"

// MethodTriplon selects the doublet and triplon (codon) preserving
// permutation. K is ignored.
const MethodTriplon = "triplon"

// Options configures Compute.
//
// Fields:
//
//	Method          string     : MethodAltschul, MethodKandel or MethodSplit.
//	K               int        : preserved word length, K >= 2.
//	Rand            *rand.Rand : random source; when nil Seed is used.
//	Seed            int64      : seed for a fresh source (0 ⇒ rng.DefaultSeed).
//	MaxAttempts     int        : altschul last-edge search budget.
//	Steps           int        : kandel chain length.
//	MaxSwapAttempts int        : kandel seam search budget.
//	Alphabet        string     : split pattern alphabet.
//	Loop            bool       : split over every pattern.
//	Debug           bool       : engine debug logging.
//	Logger          *log.Logger: destination for Debug output.
//
// Zero budgets keep each engine's default.
type Options struct {
	Method          string
	K               int
	Rand            *rand.Rand
	Seed            int64
	MaxAttempts     int
	Steps           int
	MaxSwapAttempts int
	Alphabet        string
	Loop            bool
	Debug           bool
	Logger          *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Method=MethodAltschul, K=2, the default split
// alphabet with Loop on, and engine-default budgets.
func DefaultOptions() Options {
	return Options{
		Method:   MethodAltschul,
		K:        2,
		Alphabet: splitshuffle.DefaultAlphabet,
		Loop:     true,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	var o = DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithMethod sets the engine.
func WithMethod(m string) Option { return func(o *Options) { o.Method = m } }

// WithK sets the preserved word length.
func WithK(k int) Option { return func(o *Options) { o.K = k } }

// WithRand sets the random source; it takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

// WithSeed sets the seed used when no source is given.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithMaxAttempts sets the altschul search budget.
func WithMaxAttempts(n int) Option { return func(o *Options) { o.MaxAttempts = n } }

// WithSteps sets the kandel chain length.
func WithSteps(n int) Option { return func(o *Options) { o.Steps = n } }

// WithMaxSwapAttempts sets the kandel seam search budget.
func WithMaxSwapAttempts(n int) Option { return func(o *Options) { o.MaxSwapAttempts = n } }

// WithAlphabet sets the split pattern alphabet.
func WithAlphabet(a string) Option { return func(o *Options) { o.Alphabet = a } }

// WithLoop toggles splitting over every pattern.
func WithLoop(on bool) Option { return func(o *Options) { o.Loop = on } }

// WithDebug toggles engine debug logging.
func WithDebug(on bool) Option { return func(o *Options) { o.Debug = on } }

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option { return func(o *Options) { o.Logger = l } }

// Methods lists the accepted Method names.
func Methods() []string {
	return []string{MethodAltschul, MethodKandel, MethodSplit, MethodTriplon}
}

// Compute runs the engine named by opts.Method on seq.
//
//	– MethodAltschul: altschul.Permute(seq, K)
//	– MethodKandel:   kandel.Shuffle(seq, K)
//	– MethodSplit:    splitshuffle.Permute(seq, K)
//	– MethodTriplon:  altschul.DoubletTriplon(seq)
//	– otherwise:      ErrUnknownMethod.
//
// Engine errors are returned unwrapped so errors.Is sees their sentinels.
func Compute(seq string, opts Options) (string, error) {
	var r = opts.Rand
	if r == nil {
		r = rng.FromSeed(opts.Seed)
	}

	switch opts.Method {
	case MethodAltschul:
		return altschul.Permute(seq, opts.K,
			altschul.WithRand(r),
			altschul.WithMaxAttempts(opts.MaxAttempts),
			altschul.WithDebug(opts.Debug),
			altschul.WithLogger(opts.Logger),
		)
	case MethodTriplon:
		return altschul.DoubletTriplon(seq,
			altschul.WithRand(r),
			altschul.WithMaxAttempts(opts.MaxAttempts),
			altschul.WithDebug(opts.Debug),
			altschul.WithLogger(opts.Logger),
		)
	case MethodKandel:
		return kandel.Shuffle(seq, opts.K,
			kandel.WithRand(r),
			kandel.WithSteps(opts.Steps),
			kandel.WithMaxSwapAttempts(opts.MaxSwapAttempts),
			kandel.WithDebug(opts.Debug),
			kandel.WithLogger(opts.Logger),
		)
	case MethodSplit:
		var alphabet = opts.Alphabet
		if alphabet == "" {
			alphabet = splitshuffle.DefaultAlphabet
		}
		return splitshuffle.Permute(seq, opts.K,
			splitshuffle.WithRand(r),
			splitshuffle.WithAlphabet(alphabet),
			splitshuffle.WithLoop(opts.Loop),
			splitshuffle.WithDebug(opts.Debug),
			splitshuffle.WithLogger(opts.Logger),
		)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
