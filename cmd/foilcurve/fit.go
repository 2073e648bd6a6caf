package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/foilcurve/boundary"
	"github.com/npillmayer/foilcurve/session"
	"github.com/spf13/cobra"
)

func newFitCmd(a *app) *cobra.Command {
	var export, pixels bool
	cmd := &cobra.Command{
		Use:   "fit <points-file>",
		Short: "Fit a closed curve through the points of a file",
		Long: `Fit a closed curve through the points of a coordinate file and validate it.

Without --export, the sampled curve is printed to standard output in the
coordinate text format; --pixels prints it in canvas pixel coordinates
instead. With --export, the curve is written to the configured
coordinate file and extruded into the configured STL file, provided it is
a valid, non-overlapping spline fit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.runPipeline(args[0], export)
			report(cmd.ErrOrStderr(), st)
			if err != nil {
				return err
			}
			if !export {
				c := st.Curve
				if pixels {
					c = foilcurve.CurveToPixels(c, a.conf.CanvasSize(), a.conf.CoordinateRange())
				}
				_, err = io.WriteString(cmd.OutOrStdout(), boundary.FormatText(c))
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&export, "export", "e", false, "write coordinate file and STL solid")
	cmd.Flags().BoolVar(&pixels, "pixels", false, "print samples in canvas pixel coordinates")
	return cmd
}

// runPipeline feeds the points of a file into a fresh session and optionally
// exports the result.
func (a *app) runPipeline(pointsPath string, export bool) (session.State, error) {
	st := a.newSession()
	pts, err := boundary.LoadText(pointsPath)
	if err != nil {
		return st, err
	}
	for _, p := range pts {
		if st, err = session.Reduce(st, session.AddPoint{P: p}); err != nil {
			return st, err
		}
	}
	if export {
		return session.Reduce(st, session.Export{})
	}
	return st, nil
}

func (a *app) exporter() boundary.Exporter {
	return boundary.Exporter{
		Dir:       a.conf.Export.Dir,
		TextName:  a.conf.Export.TextFile,
		SolidName: a.conf.Export.SolidFile,
		Chord:     a.conf.Export.Chord,
		Thickness: a.conf.Export.Thickness,
		ASCII:     a.conf.Export.ASCII,
	}
}

// report prints a summary of a session state.
func report(w io.Writer, st session.State) {
	kind := "spline"
	if !st.Smooth {
		kind = "straight segments"
	}
	fmt.Fprintf(w, "%d points, %d samples (%s), %s\n",
		len(st.Points()), st.Curve.N(), kind, st.Validation.Message)
	for _, warning := range st.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	if st.Exported.TextPath != "" {
		fmt.Fprintf(w, "wrote %s\n", st.Exported.TextPath)
	}
	if st.Exported.SolidPath != "" {
		fmt.Fprintf(w, "wrote %s\n", st.Exported.SolidPath)
	}
}
