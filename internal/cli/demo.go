package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/spf13/cobra"
)

// demoShapes are the generated products shown after the fixed example.
var demoShapes = []struct{ m, n, p int }{
	{2, 3, 2},
	{5, 7, 3},
	{5, 18, 9},
}

func newDemoCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a fixed product and a few generated ones on both engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), seed)
		},
	}
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "seed for generated matrices (0 = random)")

	return cmd
}

func runDemo(w io.Writer, seed int64) error {
	a, err := matrix.New([][]int32{{1, 2, 2}, {3, 1, 1}})
	if err != nil {
		return err
	}
	b, err := matrix.New([][]int32{{4, 2}, {3, 1}, {1, 5}})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "a size: %v\n", a.Shape())
	fmt.Fprintf(w, "b size: %v\n", b.Shape())
	if err = showProduct(w, a, b); err != nil {
		return err
	}

	for i, s := range demoShapes {
		if a, err = matrix.Generate(s.m, s.n, generateOpts(seed, 2*i)...); err != nil {
			return err
		}
		if b, err = matrix.Generate(s.n, s.p, generateOpts(seed, 2*i+1)...); err != nil {
			return err
		}
		if err = showProduct(w, a, b); err != nil {
			return err
		}
	}

	return nil
}

// showProduct prints a·b from the sequential engine, then from the parallel
// operator, and fails if they disagree.
func showProduct(w io.Writer, a, b *matrix.Matrix) error {
	seq, err := matrix.Multiply(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Result for %v * %v is\n%+v", a, b, seq)

	par, err := matrix.Mul(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Result for %v * %v is\n%+v", a, b, par)

	if !seq.Equal(par) {
		return fmt.Errorf("parallel product of %v * %v differs from sequential", a, b)
	}

	return nil
}
