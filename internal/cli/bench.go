package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/intmat/matrix"
	"github.com/spf13/cobra"
)

// benchConfig carries the bench flags.
type benchConfig struct {
	m, n, p    int
	runs       int
	workers    int
	unbounded  bool
	seed       int64
	profile    bool
	profileOut string
}

func newBenchCommand() *cobra.Command {
	var cfg benchConfig

	cmd := &cobra.Command{
		Use:     "bench",
		Short:   "Time sequential against parallel multiplication",
		Aliases: []string{"b"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().IntVarP(&cfg.m, "rows", "m", 200, "rows of the left operand")
	cmd.Flags().IntVarP(&cfg.n, "inner", "n", 200, "columns of the left operand / rows of the right operand")
	cmd.Flags().IntVarP(&cfg.p, "cols", "p", 200, "columns of the right operand")
	cmd.Flags().IntVarP(&cfg.runs, "runs", "r", 3, "timed repetitions; the best run is reported")
	cmd.Flags().IntVarP(&cfg.workers, "workers", "w", 0, "parallel pool size (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&cfg.unbounded, "unbounded", false, "one goroutine per output column")
	cmd.Flags().Int64VarP(&cfg.seed, "seed", "s", 0, "seed for generated matrices (0 = random)")
	cmd.Flags().BoolVar(&cfg.profile, "profile", false, "record a CPU profile of the parallel runs and summarize it")
	cmd.Flags().StringVarP(&cfg.profileOut, "output", "o", "", "CPU profile path (default: <tmp>/matmul-<run id>.pprof)")

	return cmd
}

func runBench(w io.Writer, cfg benchConfig) error {
	if cfg.runs < 1 {
		return fmt.Errorf("--runs must be >= 1, got %d", cfg.runs)
	}
	opts, err := engineOpts(cfg.workers, cfg.unbounded)
	if err != nil {
		return err
	}

	a, err := matrix.Generate(cfg.m, cfg.n, generateOpts(cfg.seed, 0)...)
	if err != nil {
		return err
	}
	b, err := matrix.Generate(cfg.n, cfg.p, generateOpts(cfg.seed, 1)...)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	fmt.Fprintf(w, "run %s: %v * %v, %d run(s)\n", runID, a, b, cfg.runs)

	var stopProfile func() error
	if cfg.profile {
		if cfg.profileOut == "" {
			cfg.profileOut = filepath.Join(os.TempDir(), "matmul-"+runID+".pprof")
		}
		if stopProfile, err = startProfile(cfg.profileOut); err != nil {
			return err
		}
	}

	seqBest, parBest, err := timeEngines(a, b, cfg.runs, opts)
	if stopProfile != nil {
		if stopErr := stopProfile(); err == nil {
			err = stopErr
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "sequential: best %v\n", seqBest)
	fmt.Fprintf(w, "parallel:   best %v (x%.2f)\n", parBest, speedup(seqBest, parBest))
	fmt.Fprintln(w, "results: identical")

	if cfg.profile {
		sum, err := summarizeProfileFile(cfg.profileOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "profile: %s\n%s", cfg.profileOut, sum)
	}

	return nil
}

// timeEngines runs both engines `runs` times, checks every parallel result
// against the sequential one and returns the best wall time of each.
func timeEngines(a, b *matrix.Matrix, runs int, opts []matrix.Option) (seqBest, parBest time.Duration, err error) {
	for r := 0; r < runs; r++ {
		start := time.Now()
		seq, err := matrix.Multiply(a, b)
		if err != nil {
			return 0, 0, err
		}
		seqBest = best(seqBest, time.Since(start))

		start = time.Now()
		par, err := matrix.MultiplyParallel(a, b, opts...)
		if err != nil {
			return 0, 0, err
		}
		parBest = best(parBest, time.Since(start))

		if !seq.Equal(par) {
			return 0, 0, fmt.Errorf("run %d: parallel product differs from sequential", r)
		}
	}

	return seqBest, parBest, nil
}

// best keeps the smaller non-zero duration.
func best(cur, d time.Duration) time.Duration {
	if cur == 0 || d < cur {
		return d
	}

	return cur
}

func speedup(seq, par time.Duration) float64 {
	if par <= 0 {
		return 0
	}

	return float64(seq) / float64(par)
}

// startProfile begins a CPU profile written to path; the returned func stops
// it and closes the file.
func startProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	if err = pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start profile: %w", err)
	}

	return func() error {
		pprof.StopCPUProfile()
		return f.Close()
	}, nil
}
