// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlin/internal/config"
	"github.com/katalvlaran/numlin/internal/render"
	"github.com/katalvlaran/numlin/internal/system"
	"github.com/katalvlaran/numlin/solver"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	var showSystem bool

	cmd := &cobra.Command{
		Use:   "solve <system.yaml>",
		Short: "Solve a·x = b with Gauss-Seidel iteration",
		Long: `Solve the linear system described by a YAML file:

  a:
    - [16, 3]
    - [7, -11]
  b: [11, 13]
  x0: [1, 1]        # optional, zeros when omitted
  iterations: 1000  # optional, --iterations wins over it

The solution is printed with its residual max|a·x - b|; --show-system
prints the coefficient matrix first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			logger := config.GetLogger(ctx)

			sys, err := system.Load(args[0])
			if err != nil {
				return err
			}
			a, b, x0, err := sys.Matrices()
			if err != nil {
				return err
			}

			iterations := cfg.Solver.Iterations
			if sys.Iterations != nil && !cmd.Root().PersistentFlags().Changed("iterations") {
				iterations = *sys.Iterations
			}
			logger.Info("solving system",
				"path", args[0],
				"n", sys.Size(),
				"iterations", iterations,
				"tolerance", cfg.Solver.Tolerance,
				"pivot_check", cfg.Solver.PivotCheck,
			)

			x, err := solver.GaussSeidel(a, b, x0, iterations, cfg.Solver.Options()...)
			if err != nil {
				return fmt.Errorf("solve %s: %w", args[0], err)
			}
			residual, err := solver.Residual(a, x, b)
			if err != nil {
				return fmt.Errorf("solve %s: %w", args[0], err)
			}
			logger.Debug("solved", "residual", residual)

			opts := render.Options{
				Format:    cfg.Output.Format,
				Precision: cfg.Output.Precision,
			}
			if showSystem {
				if err = render.Matrix(cmd.OutOrStdout(), a, opts); err != nil {
					return err
				}
			}

			return render.Solution(cmd.OutOrStdout(), x, residual, opts)
		},
	}
	cmd.Flags().BoolVar(&showSystem, "show-system", false, "print the coefficient matrix before the solution")

	return cmd
}
