package ui

import "github.com/piwi3910/ReactorCalc/internal/model"

const defaultMaxDepth = 50

// Inputs are the form values the viewer computes layouts from.
type Inputs struct {
	Dims    model.Dimensions
	Heating model.HeatingMode
	Cooling model.CoolingMode
	Profile string
}

// Snapshot captures the form inputs at a point in time.
type Snapshot struct {
	Inputs Inputs
	Label  string // Human-readable description (e.g. "Compute 5x4x6")
}

// History manages undo/redo stacks of input snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// Pushing the same inputs as the newest entry is a no-op.
func (h *History) Push(s Snapshot) {
	if n := len(h.undoStack); n > 0 && h.undoStack[n-1].Inputs == s.Inputs {
		return
	}
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot from the undo stack and pushes
// the current state onto the redo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent snapshot from the redo stack and pushes
// the current state onto the undo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MakeSnapshot creates a snapshot from the current inputs with a label.
func MakeSnapshot(in Inputs, label string) Snapshot {
	return Snapshot{Inputs: in, Label: label}
}
