// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/sparsechol/csr"
	"github.com/katalvlaran/sparsechol/matrix"
	"github.com/katalvlaran/sparsechol/solver"
)

var (
	// ErrArgument reports a bad positional argument or flag value.
	ErrArgument = errors.New("sparsechol: invalid argument")

	// ErrIO reports that the input file could not be read.
	ErrIO = errors.New("sparsechol: cannot read input")
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// SolveOptions holds the command line of one sparsechol run.
type SolveOptions struct {
	File        string
	RHS         string
	Precision   int
	Workers     int
	DataDir     string
	CheckFactor float64

	Out io.Writer
}

// NewCommand builds the root command writing results to out.
func NewCommand(out io.Writer) *cobra.Command {
	o := &SolveOptions{Precision: 64, Workers: solver.DefaultWorkers, Out: out}

	cmd := &cobra.Command{
		Use:   "sparsechol [flags] <file> <rhs>",
		Short: "Solve (A·Aᵀ)·x = b by Cholesky for a sparse A and report residual norms",
		Long: `Reads a sparse matrix A in "rows cols nnz" + "row col value" text form,
forms B = A·Aᵀ, factors it by Cholesky, solves B·x = b where every entry of b
equals <rhs>, and prints the max and Euclidean norms of A·x - b.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("want <file> <rhs>, got %d argument(s): %w", len(args), ErrArgument)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			o.Complete(args)
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().IntVar(&o.Precision, "precision", o.Precision, "Scalar precision in bits: 32 or 64.")
	cmd.Flags().IntVar(&o.Workers, "workers", o.Workers, "Goroutines used by transpose, product and residual kernels.")
	cmd.Flags().StringVar(&o.DataDir, "data-dir", o.DataDir, "Directory the input file name is resolved against (empty: as given).")
	cmd.Flags().Float64Var(&o.CheckFactor, "check-factor", o.CheckFactor, "Verify max|L·Lᵀ - B| <= value after factoring (0 disables).")

	return cmd
}

// Complete fills the positional arguments.
func (o *SolveOptions) Complete(args []string) {
	o.File, o.RHS = args[0], args[1]
}

// Validate rejects flag values the solver cannot honor.
func (o *SolveOptions) Validate() error {
	if o.Precision != 32 && o.Precision != 64 {
		return fmt.Errorf("--precision=%d, want 32 or 64: %w", o.Precision, ErrArgument)
	}
	if o.Workers < 1 {
		return fmt.Errorf("--workers=%d, want >= 1: %w", o.Workers, ErrArgument)
	}
	if !(o.CheckFactor >= 0) || math.IsInf(o.CheckFactor, 0) {
		return fmt.Errorf("--check-factor=%g, want a finite value >= 0: %w", o.CheckFactor, ErrArgument)
	}
	if _, err := strconv.ParseFloat(o.RHS, o.Precision); err != nil {
		return fmt.Errorf("rhs %q: %w", o.RHS, ErrArgument)
	}

	return nil
}

// Run reads the input file and solves at the selected precision.
func (o *SolveOptions) Run() error {
	path := o.File
	if o.DataDir != "" {
		path = filepath.Join(o.DataDir, o.File)
	}
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	klog.V(2).InfoS("Read input", "path", path, "lines", len(lines), "precision", o.Precision)

	if o.Precision == 32 {
		return run[float32](o, lines)
	}

	return run[float64](o, lines)
}

func run[T matrix.Scalar](o *SolveOptions, lines []string) error {
	rhs, _ := strconv.ParseFloat(o.RHS, o.Precision) // checked by Validate
	a, err := csr.Parse[T](lines)
	if err != nil {
		return fmt.Errorf("%s: %w", o.File, err)
	}

	opts := []solver.Option{solver.WithWorkers(o.Workers)}
	if o.CheckFactor > 0 {
		opts = append(opts, solver.WithFactorCheck(o.CheckFactor))
	}
	res, err := solver.Solve(a, T(rhs), opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", o.File, err)
	}

	klog.V(1).InfoS("System residual", "file", o.File,
		"maxNorm", res.SystemMaxNorm, "euclideanNorm", res.SystemEuclideanNorm)
	_, err = fmt.Fprintf(o.Out, "%s: err_max = %g, err_2 = %g\n", o.File, res.MaxNorm, res.EuclideanNorm)

	return err
}

// readLines returns every line of path without line terminators.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrIO)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, ErrIO)
	}

	return lines, nil
}
