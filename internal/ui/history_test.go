package ui

import (
	"testing"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

func inputs(l, w, h int) Inputs {
	return Inputs{Dims: model.Dimensions{Length: l, Width: w, Height: h}, Profile: "Default"}
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(inputs(5, 4, 6), "initial"))

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	restored, ok := h.Undo(MakeSnapshot(inputs(6, 6, 6), "current"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Inputs.Dims.Length != 5 {
		t.Errorf("expected length 5 after undo, got %d", restored.Inputs.Dims.Length)
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(inputs(5, 4, 6), "first"))
	h.Push(MakeSnapshot(inputs(6, 6, 6), "second"))

	current := inputs(7, 7, 9)
	current.Cooling = model.SodiumCooling

	restored, ok := h.Undo(MakeSnapshot(current, "third"))
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if restored.Label != "second" {
		t.Errorf("expected 'second', got %q", restored.Label)
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if redone.Inputs != current {
		t.Errorf("expected redo to restore %+v, got %+v", current, redone.Inputs)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(inputs(5, 4, 6), "a"))
	h.Undo(MakeSnapshot(inputs(6, 6, 6), "b"))

	if !h.CanRedo() {
		t.Fatal("expected redo after undo")
	}
	h.Push(MakeSnapshot(inputs(7, 7, 9), "c"))
	if h.CanRedo() {
		t.Error("push should clear the redo stack")
	}
}

func TestPushSkipsDuplicates(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(inputs(5, 4, 6), "a"))
	h.Push(MakeSnapshot(inputs(5, 4, 6), "again"))

	h.Undo(MakeSnapshot(inputs(6, 6, 6), "current"))
	if h.CanUndo() {
		t.Error("duplicate inputs should not add a second entry")
	}
}

func TestMaxDepth(t *testing.T) {
	h := NewHistory()
	for i := 0; i < defaultMaxDepth+10; i++ {
		h.Push(MakeSnapshot(inputs(3+i%16, 3, 4+i/16), "step"))
	}
	if len(h.undoStack) != defaultMaxDepth {
		t.Errorf("expected undo stack capped at %d, got %d", defaultMaxDepth, len(h.undoStack))
	}
}

func TestUndoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(MakeSnapshot(inputs(5, 4, 6), "current")); ok {
		t.Error("undo on empty history should fail")
	}
}

func TestRedoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Redo(MakeSnapshot(inputs(5, 4, 6), "current")); ok {
		t.Error("redo on empty history should fail")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(inputs(5, 4, 6), "a"))
	h.Push(MakeSnapshot(inputs(6, 6, 6), "b"))
	h.Undo(MakeSnapshot(inputs(7, 7, 9), "c"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("clear should empty both stacks")
	}
}
