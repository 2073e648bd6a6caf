package pointstore

import (
	"errors"
	"slices"

	"github.com/npillmayer/foilcurve"
)

var (
	// ErrNoUndo is reported by Undo when the history is at its first snapshot.
	ErrNoUndo = errors.New("no more steps to undo")
	// ErrNoRedo is reported by Redo when the history is at its last snapshot.
	ErrNoRedo = errors.New("no more steps to redo")
)

// Snapshot is an immutable copy of a point sequence.
type Snapshot []foilcurve.Pair

// History is a linear list of snapshots plus a cursor.
// Invariant: 0 <= index < len(snapshots).
type History struct {
	snapshots []Snapshot
	index     int
}

// NewHistory creates a history holding a single empty snapshot.
func NewHistory() *History {
	return &History{
		snapshots: []Snapshot{{}},
	}
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Index returns the position of the current snapshot.
func (h *History) Index() int {
	return h.index
}

// CanUndo returns true if we can undo
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo returns true if we can redo
func (h *History) CanRedo() bool {
	return h.index < len(h.snapshots)-1
}

// Current returns the snapshot at the cursor.
func (h *History) Current() Snapshot {
	return h.snapshots[h.index]
}

// push drops the redo branch and appends pts, unless pts equals the last
// snapshot. Returns true if a snapshot has been added.
func (h *History) push(pts []foilcurve.Pair) bool {
	if h.index < len(h.snapshots)-1 {
		h.snapshots = h.snapshots[:h.index+1]
	}
	if len(h.snapshots) > 0 && slices.Equal(h.snapshots[len(h.snapshots)-1], Snapshot(pts)) {
		return false
	}
	h.snapshots = append(h.snapshots, slices.Clone(Snapshot(pts)))
	h.index = len(h.snapshots) - 1
	return true
}

func (h *History) back() (Snapshot, error) {
	if !h.CanUndo() {
		return nil, ErrNoUndo
	}
	h.index--
	return h.snapshots[h.index], nil
}

func (h *History) forward() (Snapshot, error) {
	if !h.CanRedo() {
		return nil, ErrNoRedo
	}
	h.index++
	return h.snapshots[h.index], nil
}

// clone copies the snapshot list. Snapshots themselves are immutable and
// are shared.
func (h *History) clone() *History {
	return &History{
		snapshots: slices.Clone(h.snapshots),
		index:     h.index,
	}
}
