package main

import (
	"fmt"

	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/foilcurve/boundary"
	"github.com/npillmayer/foilcurve/polygon"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <curve-file>",
		Short: "Check a sampled closed curve for self-intersection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := boundary.LoadText(args[0])
			if err != nil {
				return err
			}
			result := polygon.ValidateCurve(foilcurve.CurveFromPairs(pts))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], result.Message)
			if err := result.Err(); err != nil {
				tracer().Infof("%s rejected: %v", args[0], err)
				return err
			}
			return nil
		},
	}
}
