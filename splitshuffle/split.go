package splitshuffle

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/kletshuffle/internal/rng"
	"github.com/katalvlaran/kletshuffle/kgraph"
	"github.com/katalvlaran/kletshuffle/klet"
)

var (
	// ErrInvalidK indicates k < 2.
	ErrInvalidK = kgraph.ErrInvalidK

	// ErrSequenceTooShort indicates k >= len(seq).
	ErrSequenceTooShort = kgraph.ErrSequenceTooShort

	// ErrEmptyAlphabet indicates WithAlphabet("").
	ErrEmptyAlphabet = errors.New("splitshuffle: empty alphabet")

	// ErrInvariantViolated indicates an output that lost a k-let.
	ErrInvariantViolated = errors.New("splitshuffle: invariant violated")
)

// DefaultAlphabet is the nucleotide alphabet split patterns are drawn from.
const DefaultAlphabet = "ACGT"

// minChunks is the chunk count below which a split has nothing to shuffle.
const minChunks = 3

// Options configures Permute.
type Options struct {
	Rand     *rand.Rand
	Alphabet string
	Loop     bool
	Debug    bool
	Logger   *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options{Alphabet: DefaultAlphabet, Loop: true}.
func DefaultOptions() Options {
	return Options{Alphabet: DefaultAlphabet, Loop: true}
}

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

// WithSeed sets a deterministic random source (seed==0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option { return func(o *Options) { o.Rand = rng.FromSeed(seed) } }

// WithAlphabet restricts split patterns to (k-1)-mers over alphabet.
func WithAlphabet(alphabet string) Option { return func(o *Options) { o.Alphabet = alphabet } }

// WithLoop keeps splitting over every pattern (true) or stops after the
// first pattern that splits into at least three chunks (false).
func WithLoop(on bool) Option { return func(o *Options) { o.Loop = on } }

// WithDebug toggles debug logging.
func WithDebug(on bool) Option { return func(o *Options) { o.Debug = on } }

// WithLogger sets the logger used when Debug is on.
func WithLogger(l *log.Logger) Option { return func(o *Options) { o.Logger = l } }

// Permute returns a split-and-shuffle rearrangement of seq with the same
// j-let counts for every 2 <= j <= k.
//
// Patterns are the (k-1)-mers over the alphabet, visited in random order.
// Only patterns that occur in seq can split it, and the set of those is
// invariant under the move, so the candidates are taken from seq directly.
// When no pattern yields three chunks seq is returned unchanged.
//
// Complexity: O(P·n) with P the number of distinct (k-1)-mers of seq.
func Permute(seq string, k int, opts ...Option) (string, error) {
	if k < 2 {
		return "", fmt.Errorf("%w: k=%d", ErrInvalidK, k)
	}
	if k >= len(seq) {
		return "", fmt.Errorf("%w: k=%d, len=%d", ErrSequenceTooShort, k, len(seq))
	}

	var o = DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Alphabet == "" {
		return "", ErrEmptyAlphabet
	}
	o.Rand = rng.Or(o.Rand)
	var lg = o.debugLogger()

	var (
		patterns = Patterns(seq, k-1, o.Alphabet)
		cur      = seq
		ok       bool
	)
	rng.Shuffle(patterns, o.Rand)
	for _, p := range patterns {
		if cur, ok = splitShuffle(o.Rand, cur, p); !ok {
			continue
		}
		if lg != nil {
			lg.Debug("split", "pattern", p, "seq", cur)
		}
		if !o.Loop {
			break
		}
	}

	if len(cur) != len(seq) || !klet.EqualUpTo(seq, cur, k) {
		return "", fmt.Errorf("%w: split shuffle lost a j-let for k=%d", ErrInvariantViolated, k)
	}

	return cur, nil
}

// Patterns returns the distinct length-w windows of seq made only of
// alphabet symbols, sorted.
func Patterns(seq string, w int, alphabet string) []string {
	var (
		seen = make(map[string]struct{})
		out  []string
	)
	for _, win := range klet.Windows(seq, w) {
		if _, dup := seen[win]; dup || !onlyFrom(win, alphabet) {
			continue
		}
		seen[win] = struct{}{}
		out = append(out, win)
	}
	sort.Strings(out)

	return out
}

// splitShuffle cuts s at non-overlapping occurrences of p and shuffles the
// interior chunks. ok is false when fewer than minChunks pieces result.
func splitShuffle(r *rand.Rand, s, p string) (out string, ok bool) {
	var chunks = strings.Split(s, p)
	if len(chunks) < minChunks {
		return s, false
	}
	rng.Shuffle(chunks[1:len(chunks)-1], r)

	return strings.Join(chunks, p), true
}

func onlyFrom(s, alphabet string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return false
		}
	}

	return true
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
		Prefix:          "splitshuffle",
	})
}
