package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/stencil/internal/app"
)

func (c *CLI) newPrecompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "precompile",
		Short: "Compile every template and save the artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			symbols, _ := cmd.Flags().GetBool("symbols")
			workers, _ := cmd.Flags().GetInt("workers")
			output, _ := cmd.Flags().GetString("output")
			trace, _ := cmd.Flags().GetString("trace")
			progress, _ := cmd.Flags().GetString("progress")

			cfg := configOptions(cmd)
			cfg.Symbols = symbols
			cfg.Workers = workers
			cfg.Output = output

			manifest, err := c.app.Precompile(cmd.Context(), app.PrecompileOptions{
				Config:   cfg,
				Progress: progress,
				Trace:    trace,
			})
			if err != nil {
				return err
			}
			if manifest != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), manifest.BinaryResourceName)
			}
			return nil
		},
	}
	cmd.Flags().Bool("symbols", false, "Emit the debug symbol stream when the compiler supports it")
	cmd.Flags().IntP("workers", "w", 0, "Maximum number of templates compiled in parallel (default: one per CPU)")
	cmd.Flags().StringP("output", "o", "", "Directory receiving the artifact")
	cmd.Flags().String("trace", "", "Write one JSON line per template span to this file")
	cmd.Flags().String("progress", "auto", "Progress output: auto, tty, or plain")
	return cmd
}
