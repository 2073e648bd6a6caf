package main

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/foilcurve/config"
	"github.com/npillmayer/foilcurve/polygon"
	"github.com/npillmayer/foilcurve/session"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errout bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errout)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errout.String(), err
}

func writePoints(t *testing.T, dir string, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		fmt.Fprintf(&sb, "%.6f\t%.6f\n", 0.5+0.45*math.Cos(a), 0.1*math.Sin(a))
	}
	path := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "foil.yaml")
	conf := fmt.Sprintf("fit:\n  num_points: 200\nexport:\n  dir: %s\n", dir)
	require.NoError(t, os.WriteFile(path, []byte(conf), 0o644))
	return path
}

func TestParseEvent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	cases := []struct {
		line string
		ev   session.Event
	}{
		{"", nil},
		{"   # comment", nil},
		{"click 10 20", session.Click{PX: 10, PY: 20}},
		{"point 0.5 -0.1", session.AddPoint{P: foilcurve.P(0.5, -0.1)}},
		{"UNDO", session.Undo{}},
		{"redo", session.Redo{}},
		{"clear", session.Clear{}},
		{"rerun", session.Rerun{}},
		{"export", session.Export{}},
		{"fit 300 0.001", session.SetFit{NumPoints: 300, Smoothness: 0.001}},
		{"fit 300 0 hobby", session.SetFit{NumPoints: 300, Method: "hobby"}},
	}
	for _, c := range cases {
		ev, err := parseEvent(c.line)
		require.NoError(t, err, c.line)
		assert.Equal(t, c.ev, ev, c.line)
	}
	for _, line := range []string{"click 10", "point a b", "undo 1", "draw 1 2"} {
		_, err := parseEvent(line)
		assert.ErrorIs(t, err, errScript, line)
	}
}

func TestFitCommand(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dir := t.TempDir()
	points := writePoints(t, dir, 12)
	out, errout, err := run(t, "", "fit", "--num-points", "150", points)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 151)
	assert.Contains(t, errout, "12 points, 151 samples (spline), valid")
	assert.NoFileExists(t, filepath.Join(dir, "airfoil.stl"))
}

func TestFitCommandPixels(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	points := writePoints(t, t.TempDir(), 12)
	out, _, err := run(t, "", "fit", "--num-points", "150", "--pixels", points)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 151)
	for _, line := range lines {
		f := strings.Fields(line)
		require.Len(t, f, 2)
		px, err := strconv.ParseFloat(f[0], 64)
		require.NoError(t, err)
		py, err := strconv.ParseFloat(f[1], 64)
		require.NoError(t, err)
		// default canvas 600×300 over [0,1]×[-0.5,0.5]
		assert.InDelta(t, 300, px, 275, line)
		assert.InDelta(t, 150, py, 35, line)
	}
}

func TestFitExportAndCheck(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dir := t.TempDir()
	points := writePoints(t, dir, 12)
	conf := writeConfig(t, dir)
	_, errout, err := run(t, "", "fit", "--config", conf, "--export", points)
	require.NoError(t, err)
	coords := filepath.Join(dir, "airfoil_coordinates.txt")
	assert.Contains(t, errout, "wrote "+coords)
	assert.FileExists(t, filepath.Join(dir, "airfoil.stl"))
	//
	out, _, err := run(t, "", "check", coords)
	require.NoError(t, err)
	assert.Equal(t, coords+": valid\n", out)
	//
	stl := filepath.Join(dir, "wing.stl")
	out, _, err = run(t, "", "solid", "--ascii", "--chord", "2", coords, stl)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+stl+"\n", out)
	data, err := os.ReadFile(stl)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "solid airfoil\n"))
}

func TestCheckRejectsOverlap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "bowtie.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 0\n1 1\n1 0\n0 1\n0 0\n"), 0o644))
	out, _, err := run(t, "", "check", path)
	assert.ErrorIs(t, err, polygon.ErrSelfIntersecting)
	assert.Contains(t, out, polygon.MsgSelfIntersects)
	stl := filepath.Join(filepath.Dir(path), "bowtie.stl")
	_, _, err = run(t, "", "solid", path, stl)
	assert.ErrorIs(t, err, polygon.ErrSelfIntersecting)
	assert.NoFileExists(t, stl)
}

func TestSketchCommand(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dir := t.TempDir()
	conf := writeConfig(t, dir)
	script := `# leading edge first
click 0 150
click 0 150
point 0.3 0.08
point 0.7 0.06
export
click 600 150
point 0.7 -0.04
point 0.3 -0.05
undo
redo
export
`
	out, errout, err := run(t, script, "sketch", "--config", conf, "-")
	require.NoError(t, err)
	assert.Contains(t, errout, "3 click(0,150): warning: "+session.WarnDuplicate)
	assert.Contains(t, errout, "5 export: "+session.ErrNotEnoughPoints.Error())
	assert.Contains(t, out, "6 points, 201 samples (spline), valid")
	assert.FileExists(t, filepath.Join(dir, "airfoil.stl"))
	//
	_, _, err = run(t, "point 1\n", "sketch", "-")
	assert.ErrorIs(t, err, errScript)
}

func TestSketchFailedFitPrintsNoWarnings(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	script := "point 0.2 0\npoint 0.5 0.1\npoint 0.8 0\nfit 100 -1\n"
	_, errout, err := run(t, script, "sketch", "-")
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Equal(t, 3, strings.Count(errout, "warning: "+session.WarnTooFewPoints), errout)
	assert.NotContains(t, errout, "4 fit(100,-1,): warning")
	assert.Contains(t, errout, "4 fit(100,-1,): "+config.ErrInvalid.Error())
}

func TestConfigErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, _, err := run(t, "", "fit", "--method", "nurbs", "whatever.txt")
	assert.Error(t, err)
	_, _, err = run(t, "", "fit", "--config", "foil.ini", "whatever.txt")
	assert.Error(t, err)
}

func TestWatchRunsOnce(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dir := t.TempDir()
	points := writePoints(t, dir, 12)
	a := &app{conf: config.Default()}
	a.conf.Export.Dir = dir
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	require.NoError(t, a.watch(ctx, points, &out))
	assert.Contains(t, out.String(), "12 points, 501 samples (spline), valid")
	assert.FileExists(t, filepath.Join(dir, "airfoil.stl"))
}
