package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/framecraft/framecraft/pkg/editor"
	"github.com/framecraft/framecraft/pkg/geom"
	"github.com/framecraft/framecraft/pkg/item"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up", "down", "left", "right", "enter", "esc", "tab", "delete", "backspace":
		types := map[string]tea.KeyType{
			"up": tea.KeyUp, "down": tea.KeyDown, "left": tea.KeyLeft, "right": tea.KeyRight,
			"enter": tea.KeyEnter, "esc": tea.KeyEscape, "tab": tea.KeyTab,
			"delete": tea.KeyDelete, "backspace": tea.KeyBackspace,
		}
		return tea.KeyMsg{Type: types[s]}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTUIFixture(t *testing.T) (*editor.Store, EditorModel) {
	t.Helper()
	frame := geom.Frame{Width: 1536, Height: 1024}
	store := editor.NewStore(frame, editor.WithItems([]item.Item{
		item.NewImage("a.png", 400, 300, frame),
		item.NewImage("b.png", 400, 300, frame),
		item.NewImage("c.png", 400, 300, frame),
	}))
	return store, NewEditorModel(store)
}

func update(m EditorModel, msg tea.Msg) EditorModel {
	next, _ := m.Update(msg)
	return next.(EditorModel)
}

func TestTUICursorSelectsItems(t *testing.T) {
	store, m := newTUIFixture(t)
	snap := store.Snapshot()

	m = update(m, key("j"))
	if store.Selected() != snap.Items[1].ID {
		t.Errorf("selected = %q, want %q", store.Selected(), snap.Items[1].ID)
	}
	m = update(m, key("k"))
	if store.Selected() != snap.Items[0].ID {
		t.Errorf("selected = %q, want %q", store.Selected(), snap.Items[0].ID)
	}
	if m.Cursor != 0 {
		t.Errorf("cursor = %d", m.Cursor)
	}
}

func TestTUITabWrapsAround(t *testing.T) {
	store, m := newTUIFixture(t)
	for i := 0; i < 3; i++ {
		m = update(m, key("tab"))
	}
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want wrap to 0", m.Cursor)
	}
	if store.Selected() != store.Snapshot().Items[0].ID {
		t.Errorf("selected = %q", store.Selected())
	}
}

func TestTUIMoveStaysInFrame(t *testing.T) {
	store, m := newTUIFixture(t)
	m = update(m, key("enter")) // select cursor item
	id := store.Selected()

	// Push far past the left edge.
	for i := 0; i < 200; i++ {
		m = update(m, key("left"))
	}
	it, _ := store.Item(id)
	if it.X != 0 {
		t.Errorf("x = %g, want clamped to 0", it.X)
	}
}

func TestTUIResizeHonorsFloor(t *testing.T) {
	store, m := newTUIFixture(t)
	m = update(m, key("enter"))
	id := store.Selected()

	for i := 0; i < 100; i++ {
		m = update(m, key("-"))
	}
	it, _ := store.Item(id)
	if it.Width < 48 || it.Height < 48 {
		t.Errorf("size = %gx%g, want floor 48", it.Width, it.Height)
	}
}

func TestTUIDeleteRemovesSelected(t *testing.T) {
	store, m := newTUIFixture(t)
	m = update(m, key("enter"))
	id := store.Selected()

	m = update(m, key("d"))
	if _, ok := store.Item(id); ok {
		t.Errorf("item %s still present after delete", id)
	}
	if store.Len() != 2 {
		t.Errorf("len = %d, want 2", store.Len())
	}
	if store.Selected() != "" {
		t.Errorf("selection %q survived delete", store.Selected())
	}
}

func TestTUIEscDeselects(t *testing.T) {
	store, m := newTUIFixture(t)
	m = update(m, key("enter"))
	if store.Selected() == "" {
		t.Fatal("expected a selection")
	}
	update(m, key("esc"))
	if store.Selected() != "" {
		t.Errorf("selected = %q after esc", store.Selected())
	}
}

func TestTUIViewRendersItemsAndFrame(t *testing.T) {
	_, m := newTUIFixture(t)
	view := m.View()
	if !strings.Contains(view, "1536x1024") {
		t.Errorf("view missing frame size:\n%s", view)
	}
	if !strings.Contains(view, "[1/3]") {
		t.Errorf("view missing position indicator:\n%s", view)
	}
}

func TestTUIViewEmptyComposition(t *testing.T) {
	store := editor.NewStore(geom.Frame{Width: 100, Height: 100})
	m := NewEditorModel(store)
	if !strings.Contains(m.View(), "empty composition") {
		t.Error("empty view missing hint")
	}
}
