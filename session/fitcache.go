package session

import (
	"encoding/binary"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/foilcurve/polygon"
	"github.com/patrickmn/go-cache"
)

const fitCacheDuration = 5 * time.Minute

// derived is everything computed from a point sequence and the fit
// parameters. It keeps its inputs, which a cache hit has to match.
type derived struct {
	points     []foilcurve.Pair
	params     Params
	curve      *foilcurve.Curve
	smooth     bool
	validation polygon.ValidationResult
	warnings   []string
}

// fitCache memoizes derived results, keyed by a hash of the points and the
// fit parameters. It is shared between the states of a session.
type fitCache struct {
	results *cache.Cache
}

func newFitCache() *fitCache {
	return &fitCache{
		results: cache.New(fitCacheDuration, 2*fitCacheDuration),
	}
}

// get returns the result memoized for points and p. Entries stored under
// the same key for different inputs do not match.
func (fc *fitCache) get(key string, points []foilcurve.Pair, p Params) (derived, bool) {
	if fc == nil {
		return derived{}, false
	}
	r, ok := fc.results.Get(key)
	if !ok {
		return derived{}, false
	}
	d, ok := r.(derived)
	if !ok || d.params != p || !slices.Equal(d.points, points) {
		tracer().Debugf("fit cache: key %s holds a different input", key)
		return derived{}, false
	}
	return d, true
}

func (fc *fitCache) put(key string, points []foilcurve.Pair, p Params, d derived) {
	if fc == nil {
		return
	}
	d.points, d.params = slices.Clone(points), p
	fc.results.Set(key, d, cache.DefaultExpiration)
}

// Len returns the number of memoized results.
func (fc *fitCache) Len() int {
	return fc.results.ItemCount()
}

// fitKey hashes points and all parameters which influence a derived result.
func fitKey(points []foilcurve.Pair, p Params) string {
	h := xxhash.New()
	var buf [8]byte
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	h.WriteString(p.Method)
	putFloat(float64(p.NumPoints))
	putFloat(p.Smoothness)
	putFloat(p.Range.X.Min)
	putFloat(p.Range.X.Max)
	putFloat(p.Range.Y.Min)
	putFloat(p.Range.Y.Max)
	for _, pt := range points {
		putFloat(pt.X())
		putFloat(pt.Y())
	}
	return strconv.FormatUint(h.Sum64(), 16) + ":" + strconv.Itoa(len(points))
}
