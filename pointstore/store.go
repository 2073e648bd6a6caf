package pointstore

import (
	"slices"

	"github.com/npillmayer/foilcurve"
)

// Click identifies a raw input event, in pixel coordinates. Front ends
// re-deliver the last click on every re-run; the store recognizes it.
type Click struct {
	X, Y float64
}

// Store owns the live point sequence and its history.
type Store struct {
	points    []foilcurve.Pair
	history   *History
	lastClick *Click
	suppress  bool
}

// New creates an empty store.
func New() *Store {
	return &Store{
		history: NewHistory(),
	}
}

// Points returns a copy of the live point sequence.
func (s *Store) Points() []foilcurve.Pair {
	return slices.Clone(s.points)
}

// N returns the number of live points.
func (s *Store) N() int {
	return len(s.points)
}

// History gives read access to the history.
func (s *Store) History() *History {
	return s.history
}

// Suppressed is a predicate: is snapshotting currently suppressed?
func (s *Store) Suppressed() bool {
	return s.suppress
}

// BeginIntake starts a new point-intake cycle and lowers the suppress flag.
func (s *Store) BeginIntake() {
	s.suppress = false
}

// Append starts an intake cycle, adds a point at the end of the live
// sequence and snapshots.
func (s *Store) Append(p foilcurve.Pair) {
	s.BeginIntake()
	s.points = append(s.points, p)
	tracer().Debugf("appended point %s, now %d points", p, len(s.points))
	s.Snapshot()
}

// AppendClick starts an intake cycle for a click and appends p, unless the
// click is the one processed last. Returns true if p has been appended.
func (s *Store) AppendClick(c Click, p foilcurve.Pair) bool {
	s.BeginIntake()
	if s.lastClick != nil && *s.lastClick == c {
		tracer().Debugf("click (%g,%g) already processed", c.X, c.Y)
		return false
	}
	s.lastClick = &c
	s.Append(p)
	return true
}

// Snapshot records the live sequence in the history, unless snapshotting is
// suppressed or the sequence equals the last snapshot. A pending redo branch
// is discarded. Returns true if a snapshot has been added.
func (s *Store) Snapshot() bool {
	if s.suppress {
		return false
	}
	return s.history.push(s.points)
}

// Undo replaces the live sequence by the previous snapshot. If there is
// none, ErrNoUndo is returned and nothing changes.
func (s *Store) Undo() error {
	snap, err := s.history.back()
	if err != nil {
		return err
	}
	s.restore(snap)
	return nil
}

// Redo replaces the live sequence by the next snapshot. If there is none,
// ErrNoRedo is returned and nothing changes.
func (s *Store) Redo() error {
	snap, err := s.history.forward()
	if err != nil {
		return err
	}
	s.restore(snap)
	return nil
}

// Clear empties the live sequence and resets the history to a single empty
// snapshot.
func (s *Store) Clear() {
	s.points = nil
	s.history = NewHistory()
	s.forgetClick()
	s.suppress = true
}

func (s *Store) restore(snap Snapshot) {
	s.points = slices.Clone([]foilcurve.Pair(snap))
	s.forgetClick()
	s.suppress = true
	tracer().Debugf("restored snapshot %d/%d with %d points",
		s.history.Index(), s.history.Len(), len(s.points))
}

func (s *Store) forgetClick() {
	s.lastClick = nil
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	c := &Store{
		points:   slices.Clone(s.points),
		history:  s.history.clone(),
		suppress: s.suppress,
	}
	if s.lastClick != nil {
		lc := *s.lastClick
		c.lastClick = &lc
	}
	return c
}
