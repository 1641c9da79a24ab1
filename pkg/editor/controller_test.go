package editor

import (
	"testing"

	"github.com/framecraft/framecraft/pkg/geom"
	"github.com/framecraft/framecraft/pkg/item"
)

func TestControllerDragEnd(t *testing.T) {
	s := newTestStore(t)
	c := NewController(s)
	it := addOne(t, s)

	c.OnDragEnd(it.ID, 50.5, 60.25)
	got, _ := s.Item(it.ID)
	if got.X != 50.5 || got.Y != 60.25 {
		t.Errorf("drag position not applied: (%v, %v)", got.X, got.Y)
	}

	// Dragging past the edge clamps.
	c.OnDragEnd(it.ID, 1e6, -1e6)
	got, _ = s.Item(it.ID)
	if !geom.Contains(got.Rect(), frame, 1e-9) {
		t.Errorf("drag escaped frame: %+v", got.Rect())
	}
}

func TestControllerResizeEnd(t *testing.T) {
	s := newTestStore(t)
	c := NewController(s)
	it := addOne(t, s)

	c.OnResizeEnd(it.ID, 200, 120, 30, 40)
	got, _ := s.Item(it.ID)
	if got.Width != 200 || got.Height != 120 {
		t.Errorf("resize not applied: %v x %v", got.Width, got.Height)
	}
	if got.X != 30 || got.Y != 40 {
		t.Errorf("resize anchor not applied: (%v, %v)", got.X, got.Y)
	}

	// Collapsing gestures hit the proportional floor.
	c.OnResizeEnd(it.ID, 1, 1, 30, 40)
	got, _ = s.Item(it.ID)
	if got.Width != geom.MinProportionalSize || got.Height != geom.MinProportionalSize {
		t.Errorf("proportional floor not applied: %v x %v", got.Width, got.Height)
	}

	// Unknown id is a no-op.
	c.OnResizeEnd("missing", 100, 100, 0, 0)
}

func TestControllerSelectDeselectDelete(t *testing.T) {
	s := newTestStore(t)
	c := NewController(s)
	it := addOne(t, s)

	c.OnSelect(it.ID)
	if s.Selected() != it.ID {
		t.Fatalf("select failed: %q", s.Selected())
	}

	c.OnDeselectBackground()
	if s.Selected() != "" {
		t.Fatalf("deselect failed: %q", s.Selected())
	}

	// Delete with nothing selected is a no-op.
	c.OnDeleteKey()
	if s.Len() != 1 {
		t.Fatal("delete removed an unselected item")
	}

	c.OnSelect(it.ID)
	c.OnDeleteKey()
	if s.Len() != 0 {
		t.Error("delete did not remove selected item")
	}
	if s.Selected() != "" {
		t.Error("selection survived deletion")
	}
}

func TestControllerDeleteStaleSelection(t *testing.T) {
	s := newTestStore(t)
	c := NewController(s)
	addOne(t, s)

	// A selection naming a removed id resolves to a no-op removal.
	c.OnSelect("ghost")
	c.OnDeleteKey()
	if s.Len() != 1 {
		t.Error("stale selection deleted a live item")
	}
}

func TestControllerDragEnd_Example(t *testing.T) {
	// Mirrors the original gesture path: update position, then enforce
	// bounds as a separate store call observable as two events.
	var ops []Op
	s := NewStore(frame, WithObserver(func(ev Event) { ops = append(ops, ev.Op) }))
	c := NewController(s)
	it := item.NewImage("x", 200, 100, frame)
	s.AddItems([]item.Item{it})

	c.OnDragEnd(it.ID, 10, 10)
	want := []Op{OpAdd, OpUpdate, OpEnforceBounds}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", ops, want)
		}
	}
}
