package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/foilcurve/session"
	"github.com/spf13/cobra"
)

var errScript = errors.New("invalid script line")

func newSketchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sketch <script-file>",
		Short: "Replay a sketching session from an event script",
		Long: `Replay a sketching session. The script has one event per line:

	click <px> <py>      click on the canvas, pixel coordinates
	point <x> <y>        add a point in user coordinates
	undo | redo | clear  edit history
	rerun                re-process without new input
	fit <n> <s> [method] change sample count, smoothing and method
	export               write coordinate file and STL solid

Blank lines and lines starting with '#' are ignored. A script file "-"
is read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			st, err := a.replay(r, cmd.ErrOrStderr())
			report(cmd.OutOrStdout(), st)
			return err
		},
	}
}

// replay runs the events of a script through a fresh session. Refused
// exports are reported and the replay continues; script errors stop it.
// Warnings are printed for events which succeeded.
func (a *app) replay(r io.Reader, w io.Writer) (session.State, error) {
	st := a.newSession()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		ev, err := parseEvent(scanner.Text())
		if err != nil {
			return st, fmt.Errorf("line %d: %w", lineno, err)
		}
		if ev == nil {
			continue
		}
		next, err := session.Reduce(st, ev)
		if err != nil {
			fmt.Fprintf(w, "%d %v: %v\n", lineno, ev, err)
			if _, ok := ev.(session.SetFit); ok {
				return st, fmt.Errorf("line %d: %w", lineno, err)
			}
		} else {
			for _, warning := range next.Warnings {
				fmt.Fprintf(w, "%d %v: warning: %s\n", lineno, ev, warning)
			}
		}
		st = next
	}
	return st, scanner.Err()
}

// parseEvent parses a script line. Blank and comment lines yield a nil event.
func parseEvent(line string) (session.Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	nums := func(n int) ([]float64, error) {
		if len(args) < n {
			return nil, fmt.Errorf("%w: %s needs %d arguments", errScript, cmd, n)
		}
		v := make([]float64, n)
		for i := range v {
			f, err := strconv.ParseFloat(args[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", errScript, err)
			}
			v[i] = f
		}
		return v, nil
	}
	noArgs := func(ev session.Event) (session.Event, error) {
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: %s takes no arguments", errScript, cmd)
		}
		return ev, nil
	}
	switch cmd {
	case "click":
		v, err := nums(2)
		if err != nil {
			return nil, err
		}
		return session.Click{PX: v[0], PY: v[1]}, nil
	case "point":
		v, err := nums(2)
		if err != nil {
			return nil, err
		}
		return session.AddPoint{P: foilcurve.P(v[0], v[1])}, nil
	case "fit":
		v, err := nums(2)
		if err != nil {
			return nil, err
		}
		ev := session.SetFit{NumPoints: int(v[0]), Smoothness: v[1]}
		if len(args) > 2 {
			ev.Method = args[2]
		}
		return ev, nil
	case "undo":
		return noArgs(session.Undo{})
	case "redo":
		return noArgs(session.Redo{})
	case "clear":
		return noArgs(session.Clear{})
	case "rerun":
		return noArgs(session.Rerun{})
	case "export":
		return noArgs(session.Export{})
	}
	return nil, fmt.Errorf("%w: unknown event %q", errScript, fields[0])
}
