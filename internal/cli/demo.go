// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlin/internal/config"
	"github.com/katalvlaran/numlin/internal/render"
	"github.com/katalvlaran/numlin/matrix"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build a 2x2 matrix, set one element and print it",
		Long: `Build a 2x2 zero matrix, set element (0,0) to 3.142 and print every
element in row-major order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			logger := config.GetLogger(ctx)

			m, err := matrix.New(2, 2, 0.0)
			if err != nil {
				return err
			}
			if err = m.Set(0, 0, 3.142); err != nil {
				return err
			}
			logger.Debug("demo matrix ready", "rows", m.Rows(), "cols", m.Cols())

			return render.Elements(cmd.OutOrStdout(), m, render.Options{
				Format:    cfg.Output.Format,
				Precision: -1,
			})
		},
	}
}
