// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/linalg/internal/logging"
	"github.com/katalvlaran/linalg/internal/matfile"
	"github.com/katalvlaran/linalg/matrix"
)

// app carries state shared by all subcommands.
type app struct {
	level string
	log   *zap.Logger
}

func getEnvStr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "linalg",
		Short:         "Dense matrix and vector operations on small matrix files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = logging.New(logging.Level(a.level), cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.level, "log-level",
		getEnvStr(logging.EnvLevel, string(logging.LevelError)), "Log level: debug, info, warn, error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Rotate the x axis and print the intermediate results",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return a.runDemo(cmd.OutOrStdout()) },
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "invert [file]",
		Short: "Invert a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.unary(cmd.OutOrStdout(), "invert", args[0], func(m *matrix.Matrix) (*matrix.Matrix, error) {
				return m.Invert()
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "transpose [file]",
		Short: "Transpose a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.unary(cmd.OutOrStdout(), "transpose", args[0], matrix.Transpose)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "det [file]",
		Short: "Print the determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return a.runDet(cmd.OutOrStdout(), args[0]) },
	})

	var kindName string
	multiplyCmd := &cobra.Command{
		Use:   "multiply [a] [b]",
		Short: "Multiply two matrices (a×b)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMultiply(cmd.OutOrStdout(), args[0], args[1], kindName)
		},
	}
	multiplyCmd.Flags().StringVar(&kindName, "kind", "", "Result element kind (default: promoted from the operands)")
	rootCmd.AddCommand(multiplyCmd)

	var degrees []float64
	rotateCmd := &cobra.Command{
		Use:   "rotate [file]",
		Short: "Rotate a 2- or 3-vector by angles in degrees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.unary(cmd.OutOrStdout(), "rotate", args[0], func(m *matrix.Matrix) (*matrix.Matrix, error) {
				return m, m.RotateDeg(degrees...)
			})
		},
	}
	rotateCmd.Flags().Float64SliceVar(&degrees, "deg", nil, "Angles in degrees: z for 2-vectors, x,y,z for 3-vectors")
	rootCmd.AddCommand(rotateCmd)

	return rootCmd
}

// runDemo builds the 1×3 x axis, rotates it twice and prints each state.
func (a *app) runDemo(w io.Writer) error {
	v, err := matrix.NewVector3(1, 3, []float64{1, 0, 0})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, v.ToArray())

	for _, angles := range [][]float64{{0, 0, 90}, {180, 0, 90}} {
		if err = v.Rotate(angles...); err != nil {
			return err
		}
		a.log.Debug("rotated", zap.Float64s("deg", angles), zap.Float64s("result", v.Data()))
	}
	fmt.Fprintln(w, v.ToArray())

	return nil
}

// unary loads one matrix, applies op and writes the result.
func (a *app) unary(w io.Writer, name, path string, op func(*matrix.Matrix) (*matrix.Matrix, error)) error {
	m, err := matfile.ReadFile(path)
	if err != nil {
		return err
	}
	a.describe(name, "input", m)

	out, err := op(m)
	if err != nil {
		a.log.Error(name+" failed", zap.Error(err))
		return err
	}
	a.describe(name, "output", out)

	return matfile.Encode(w, out)
}

func (a *app) runDet(w io.Writer, path string) error {
	m, err := matfile.ReadFile(path)
	if err != nil {
		return err
	}
	a.describe("det", "input", m)

	d, err := m.Determinant()
	if err != nil {
		a.log.Error("det failed", zap.Error(err))
		return err
	}
	_, err = fmt.Fprintf(w, "%g\n", d)

	return err
}

func (a *app) runMultiply(w io.Writer, pathA, pathB, kindName string) error {
	ma, err := matfile.ReadFile(pathA)
	if err != nil {
		return err
	}
	mb, err := matfile.ReadFile(pathB)
	if err != nil {
		return err
	}
	a.describe("multiply", "a", ma)
	a.describe("multiply", "b", mb)

	var opts []matrix.Option
	if kindName != "" {
		k, err := matrix.ParseKind(kindName)
		if err != nil {
			return err
		}
		opts = append(opts, matrix.WithKind(k))
	}

	out, err := matrix.Mul(ma, mb, opts...)
	if err != nil {
		a.log.Error("multiply failed", zap.Error(err))
		return err
	}
	a.describe("multiply", "output", out)

	return matfile.Encode(w, out)
}

// describe logs shape, class and kind of an operand at debug level.
func (a *app) describe(op, role string, m *matrix.Matrix) {
	a.log.Debug(op,
		zap.String("role", role),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Stringer("class", m.Class()),
		zap.Stringer("kind", m.Kind()),
	)
}
