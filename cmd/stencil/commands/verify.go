package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stencil/internal/app"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [template...]",
		Short: "Check that the saved artifact still matches the templates",
		Long:  "Check every precompiled template, or only the given ones, against its source file.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Verify(cmd.Context(), app.VerifyOptions{
				Config: configOptions(cmd),
				Paths:  args,
			})
			return err
		},
	}
}
