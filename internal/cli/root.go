// Package cli holds the cobra command tree behind cmd/matmul.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/spf13/cobra"
)

// NewRootCommand builds a fresh command tree; tests get independent flag state.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "matmul",
		Short:         "Multiply integer matrices sequentially and on a goroutine pool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDemoCommand(), newBenchCommand())

	return root
}

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main().
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Failed to execute command: "+err.Error())
		os.Exit(1)
	}
}

// generateOpts returns the Generate options for the stream-th operand.
// seed == 0 keeps generation random; otherwise every operand gets its own
// reproducible stream.
func generateOpts(seed int64, stream int) []matrix.Option {
	if seed == 0 {
		return nil
	}

	return []matrix.Option{matrix.WithSeed(seed + int64(stream))}
}

// engineOpts maps the pool flags onto parallel engine options.
func engineOpts(workers int, unbounded bool) ([]matrix.Option, error) {
	switch {
	case unbounded && workers > 0:
		return nil, errors.New("--workers and --unbounded are mutually exclusive")
	case unbounded:
		return []matrix.Option{matrix.WithUnboundedWorkers()}, nil
	case workers < 0:
		return nil, fmt.Errorf("--workers must be >= 0, got %d", workers)
	case workers > 0:
		return []matrix.Option{matrix.WithWorkers(workers)}, nil
	default:
		return nil, nil
	}
}
