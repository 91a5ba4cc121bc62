package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

func newContinentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "continents",
		Aliases: []string{"co"},
		Short:   "Print the number of countries per continent",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := bootstrap(w1sFlags)
			if err != nil {
				return err
			}
			defer e.close()

			return runContinents(cmd.Context(), cmd.OutOrStdout(), e)
		},
	}
}

func runContinents(ctx context.Context, w io.Writer, e *env) error {
	c, err := e.chartModel()
	if err != nil {
		return err
	}
	defer c.Stop()

	if err := c.Refresh(ctx); err != nil {
		return err
	}
	tt, skipped := c.Peek()

	return printTallies(w, tt, len(skipped))
}
