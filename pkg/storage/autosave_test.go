package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/framecraft/framecraft/pkg/editor"
	"github.com/framecraft/framecraft/pkg/item"
)

// slotSpy records saves and signals each completion.
type slotSpy struct {
	saved chan []item.Item
	err   error
}

func newSlotSpy() *slotSpy {
	return &slotSpy{saved: make(chan []item.Item, 16)}
}

func (s *slotSpy) Save(ctx context.Context, items []item.Item) error {
	s.saved <- items
	return s.err
}

func (s *slotSpy) Load(ctx context.Context) ([]item.Item, bool, error) {
	return nil, false, nil
}

func (s *slotSpy) Close() error { return nil }

func waitSave(t *testing.T, spy *slotSpy) []item.Item {
	t.Helper()
	select {
	case items := <-spy.saved:
		return items
	case <-time.After(2 * time.Second):
		t.Fatal("no save observed")
		return nil
	}
}

func TestAutoSavePersistsDirtyMutations(t *testing.T) {
	spy := newSlotSpy()
	store := editor.NewStore(frame)
	AutoSave(context.Background(), store, spy, nil)

	it := item.NewImage("x", 200, 100, frame)
	store.AddItems([]item.Item{it})

	saved := waitSave(t, spy)
	if len(saved) != 1 || saved[0].ID != it.ID {
		t.Errorf("save snapshot wrong: %+v", saved)
	}

	store.RemoveItem(it.ID)
	saved = waitSave(t, spy)
	if len(saved) != 0 {
		t.Errorf("save after removal should be empty, got %d items", len(saved))
	}
}

func TestAutoSaveSkipsSelectionChanges(t *testing.T) {
	spy := newSlotSpy()
	store := editor.NewStore(frame)
	AutoSave(context.Background(), store, spy, nil)

	store.SetSelected("anything")

	select {
	case <-spy.saved:
		t.Error("selection change triggered a save")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAutoSaveSwallowsFailures(t *testing.T) {
	spy := newSlotSpy()
	spy.err = errors.New("quota exceeded")
	store := editor.NewStore(frame)
	AutoSave(context.Background(), store, spy, nil)

	// The mutation itself must not observe the failure.
	store.AddItems([]item.Item{item.NewImage("x", 200, 100, frame)})
	waitSave(t, spy)
	if store.Len() != 1 {
		t.Error("mutation affected by save failure")
	}
}
