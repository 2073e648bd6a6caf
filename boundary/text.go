package boundary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/foilcurve"
)

// FormatText renders a curve in the coordinate text format, samples in
// curve order, including a closing sample if the curve has one.
func FormatText(c *foilcurve.Curve) string {
	var sb strings.Builder
	for i := 0; i < c.N(); i++ {
		fmt.Fprintf(&sb, "%.6f\t%.6f\n", c.Xs[i], c.Ys[i])
	}
	return sb.String()
}

// SaveText writes a curve to a coordinate file, atomically.
func SaveText(path string, c *foilcurve.Curve) error {
	err := writeAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, FormatText(c))
		return err
	})
	if err != nil {
		return err
	}
	tracer().Infof("wrote %d samples to %s", c.N(), path)
	return nil
}

// ParseText reads coordinate pairs from r. Blank lines and lines starting
// with '#' are skipped, fields may be separated by any whitespace.
func ParseText(r io.Reader) ([]foilcurve.Pair, error) {
	var pts []foilcurve.Pair
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w %d: %d fields", ErrMalformed, lineno, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrMalformed, lineno, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrMalformed, lineno, err)
		}
		pts = append(pts, foilcurve.P(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// LoadText reads a coordinate file. A missing file is reported as
// ErrFileNotFound.
func LoadText(path string) ([]foilcurve.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()
	pts, err := ParseText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}
