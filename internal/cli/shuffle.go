package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"code.cloudfoundry.org/bytefmt"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kletshuffle/altschul"
	"github.com/katalvlaran/kletshuffle/config"
	"github.com/katalvlaran/kletshuffle/fasta"
	"github.com/katalvlaran/kletshuffle/internal/rng"
	"github.com/katalvlaran/kletshuffle/kgraph"
	"github.com/katalvlaran/kletshuffle/shuffle"
)

type shuffleFlags struct {
	configPath  string
	output      string
	method      string
	k           int
	seed        int64
	count       int
	steps       int
	maxAttempts int
	jobs        int
}

func (c *CLI) shuffleCommand() *cobra.Command {
	var f shuffleFlags

	cmd := &cobra.Command{
		Use:   "shuffle [flags] IN.fa[.gz]",
		Short: "Write k-let preserving shuffles of every FASTA record",
		Long: `Reads FASTA records and writes --count shuffles of each, named <id>_shuf<i>.
Every shuffle preserves the counts of all words of length 2..k.

Methods:
  altschul  uniform over all k-let preserving permutations (default)
  kandel    rotation and swap Markov chain (--steps moves)
  split     split at (k-1)-mers and reorder the pieces (fast, not uniform)
  triplon   keep doublets and the codon multiset (k ignored; records whose
            length is not a multiple of 3 are skipped)

Files ending in .gz are read and written gzip-compressed. Flags override
values from --config.`,
		Example: `  kletshuffle shuffle -k 3 --count 10 promoters.fa -o null.fa.gz
  kletshuffle shuffle --method kandel --steps 1000 --seed 7 in.fa`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			if f.jobs < 1 {
				return fmt.Errorf("--jobs=%d, want >= 1", f.jobs)
			}
			return c.runShuffle(cmd, args[0], f.output, f.jobs, cfg)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "TOML configuration file")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&f.method, "method", "m", shuffle.MethodAltschul, fmt.Sprintf("shuffling method %v", shuffle.Methods()))
	cmd.Flags().IntVarP(&f.k, "k", "k", 2, "preserve all j-lets for 2 <= j <= k")
	cmd.Flags().Int64VarP(&f.seed, "seed", "s", 0, "random seed (0 uses the default seed)")
	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "shuffles per record")
	cmd.Flags().IntVar(&f.steps, "steps", 0, "kandel chain length (default from config)")
	cmd.Flags().IntVar(&f.maxAttempts, "max-attempts", 0, "altschul search budget (default from config)")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", runtime.NumCPU(), "records shuffled in parallel")

	return cmd
}

// resolve layers Default, the config file and explicitly set flags.
func (f *shuffleFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	var cfg = config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	var set = cmd.Flags().Changed
	if set("method") {
		cfg.Method = f.method
	}
	if set("k") {
		cfg.K = f.k
	}
	if set("seed") {
		cfg.Seed = f.seed
	}
	if set("count") {
		cfg.Count = f.count
	}
	if set("steps") {
		cfg.Kandel.Steps = f.steps
	}
	if set("max-attempts") {
		cfg.Altschul.MaxAttempts = f.maxAttempts
	}

	return cfg, cfg.Validate()
}

// batchPerJob bounds how many records are held in memory per worker.
const batchPerJob = 64

func (c *CLI) runShuffle(cmd *cobra.Command, in, out string, jobs int, cfg config.Config) error {
	var (
		ctx    = cmd.Context()
		logger = loggerFromContext(ctx)
		prog   = newProgress(logger)
	)

	src, err := fasta.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()
	if fi, err := src.Stat(); err == nil {
		logger.Info("reading", "file", in, "size", bytefmt.ByteSize(uint64(fi.Size())), "jobs", jobs)
	}

	var (
		w   *fasta.Writer
		dst *fasta.File
	)
	if out == "" {
		w = fasta.NewWriter(cmd.OutOrStdout())
	} else {
		if dst, err = fasta.Create(out); err != nil {
			return err
		}
		defer func() {
			if dst != nil {
				dst.Close()
			}
		}()
		w = dst.Writer
	}

	var (
		sh                        = shuffler{cfg: cfg, opts: cfg.ShuffleOptions(), logger: logger}
		batch                     = make([]fasta.Record, 0, jobs*batchPerJob)
		records, written, skipped int
		eof                       bool
	)
	sh.opts.Debug = c.verbose
	sh.opts.Logger = logger

	for !eof {
		if err = ctx.Err(); err != nil {
			return err
		}
		batch = batch[:0]
		for len(batch) < cap(batch) {
			rec, err := src.Next()
			if err == io.EOF {
				eof = true
				break
			}
			if err != nil {
				return err
			}
			batch = append(batch, rec)
		}

		shuffled, err := sh.run(ctx, jobs, records, batch)
		if err != nil {
			return err
		}
		for i, seqs := range shuffled {
			if seqs == nil {
				skipped++
				continue
			}
			for j, seq := range seqs {
				rec := fasta.Record{ID: fmt.Sprintf("%s_shuf%d", batch[i].ID, j), Desc: batch[i].Desc, Seq: seq}
				if err = w.Write(rec); err != nil {
					return err
				}
				written++
			}
		}
		records += len(batch)
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if dst != nil {
		err, dst = dst.Close(), nil
		if err != nil {
			return err
		}
		if fi, err := os.Stat(out); err == nil {
			logger.Debug("wrote", "file", out, "size", bytefmt.ByteSize(uint64(fi.Size())))
		}
	}

	prog.done("shuffled", "method", cfg.Method, "k", cfg.K, "records", records, "written", written, "skipped", skipped)

	return nil
}

// shuffler produces cfg.Count shuffles per record. The random stream of
// shuffle j of record i is derived from (Seed, i*Count+j), so output does
// not depend on the number of workers.
type shuffler struct {
	cfg    config.Config
	opts   shuffle.Options
	logger *log.Logger
}

// run shuffles batch concurrently; offset is the index of batch[0] in the
// input. Records too short for k yield a nil entry.
func (s shuffler) run(ctx context.Context, jobs, offset int, batch []fasta.Record) ([][]string, error) {
	var out = make([][]string, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range batch {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seqs, err := s.record(offset+i, batch[i])
			out[i] = seqs
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s shuffler) record(index int, rec fasta.Record) ([]string, error) {
	var (
		opts = s.opts
		seqs = make([]string, 0, s.cfg.Count)
	)
	for j := 0; j < s.cfg.Count; j++ {
		opts.Rand = rng.Derive(s.cfg.Seed, uint64(index)*uint64(s.cfg.Count)+uint64(j))
		seq, err := shuffle.Compute(rec.Seq, opts)
		if errors.Is(err, kgraph.ErrSequenceTooShort) {
			s.logger.Warn("record too short, skipped", "id", rec.ID, "len", len(rec.Seq), "k", s.cfg.K)
			return nil, nil
		}
		if errors.Is(err, altschul.ErrTriplonLength) {
			s.logger.Warn("record length not a multiple of 3, skipped", "id", rec.ID, "len", len(rec.Seq))
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rec.ID, err)
		}
		seqs = append(seqs, seq)
	}

	return seqs, nil
}
