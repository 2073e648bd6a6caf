package main

import (
	"fmt"

	"github.com/npillmayer/foilcurve/boundary"
	"github.com/spf13/cobra"
)

func newSolidCmd(a *app) *cobra.Command {
	var chord, thickness float64
	var ascii bool
	cmd := &cobra.Command{
		Use:   "solid <coordinate-file> [stl-file]",
		Short: "Extrude a coordinate file into an STL solid",
		Long: `Extrude the closed outline of a coordinate file into a solid and write it
as STL. Coordinates are scaled by the chord length. Without an explicit
output file, the configured solid file is written.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("chord") {
				chord = a.conf.Export.Chord
			}
			if !cmd.Flags().Changed("thickness") {
				thickness = a.conf.Export.Thickness
			}
			if !cmd.Flags().Changed("ascii") {
				ascii = a.conf.Export.ASCII
			}
			out := a.conf.SolidPath()
			if len(args) > 1 {
				out = args[1]
			}
			if err := boundary.ExportSolid(args[0], out, chord, thickness, ascii); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().Float64Var(&chord, "chord", 1.0, "chord length")
	cmd.Flags().Float64Var(&thickness, "thickness", 0.001, "extrusion thickness")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "write ASCII instead of binary STL")
	return cmd
}
