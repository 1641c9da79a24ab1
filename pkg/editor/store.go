// Package editor implements the composition store: the authoritative,
// ordered collection of items plus the single-selection state.
//
// A Store is an explicit object injected into every component that needs
// it — there is no package-level instance. Mutation happens only through
// the declared API, and each operation restores the composition invariants
// before returning:
//
//  1. Item IDs are pairwise distinct.
//  2. Every item that went through EnforceBounds lies inside the frame.
//  3. Item dimensions are at or above the configured floor.
//  4. The selected ID is empty or names a live item.
//
// Operations are synchronous and never block. They are meant to be driven
// from a single interaction goroutine (the UI event loop equivalent);
// the Store does no internal locking. Asynchronous work such as
// persistence re-enters through registered observers, which run
// synchronously at the end of each successful mutation — an observer that
// must not block the gesture path (a save, say) hands off internally.
package editor

import (
	"slices"

	"github.com/framecraft/framecraft/pkg/geom"
	"github.com/framecraft/framecraft/pkg/item"
)

// Store holds one composition: the frame, the z-ordered item sequence
// (insertion order, append-only except on removal), and the selection.
type Store struct {
	frame     geom.Frame
	items     []item.Item
	selected  string // "" = nothing selected
	observers []Observer
}

// Option configures a Store at construction.
type Option func(*Store)

// WithObserver registers a mutation observer at construction time.
// Equivalent to calling Subscribe after NewStore.
func WithObserver(fn Observer) Option {
	return func(s *Store) { s.observers = append(s.observers, fn) }
}

// WithItems seeds the store with an initial item sequence, typically the
// result of a persistence load. Duplicate IDs are skipped, preserving the
// first occurrence. Seeding does not fire observers.
func WithItems(items []item.Item) Option {
	return func(s *Store) {
		for _, it := range items {
			if s.indexOf(it.ID) == -1 {
				s.items = append(s.items, it.Clone())
			}
		}
	}
}

// NewStore creates a composition store for the given frame.
// Non-positive frame dimensions fall back to geom.DefaultFrame.
func NewStore(f geom.Frame, opts ...Option) *Store {
	if f.Width <= 0 || f.Height <= 0 {
		f = geom.DefaultFrame
	}
	s := &Store{frame: f}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Frame returns the session frame. It never changes after construction.
func (s *Store) Frame() geom.Frame { return s.frame }

// Subscribe registers fn to run after every successful mutation.
// Observers run in registration order, synchronously, after invariants are
// restored. They receive the event describing the mutation; they read
// state through Snapshot, never through retained internals.
func (s *Store) Subscribe(fn Observer) {
	s.observers = append(s.observers, fn)
}

// AddItems appends items to the end of the sequence, preserving input
// order. Geometry is trusted as-is: creation paths size items within the
// frame budget, and the store does not re-clamp here. An item whose ID
// already exists in the composition is skipped so IDs stay distinct.
func (s *Store) AddItems(items []item.Item) {
	added := 0
	for _, it := range items {
		if it.ID == "" || s.indexOf(it.ID) != -1 {
			continue
		}
		s.items = append(s.items, it.Clone())
		added++
	}
	if added > 0 {
		s.notify(Event{Op: OpAdd, Count: added})
	}
}

// Patch carries partial field overrides for UpdateItem. Nil pointers leave
// the corresponding field untouched. Geometry patches are not clamped;
// gesture callers follow with EnforceBounds.
type Patch struct {
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64

	Src      *string // image payload
	Snapshot *string // video payload

	Text     *string // post payload
	Author   *string
	Handle   *string
	DateText *string
	Theme    *item.Theme
	Avatar   *string
}

// UpdateItem merges the patch into the item matching id and replaces the
// entry at its index with the new value. No-op if id is not found.
// In-place partial mutation never happens: readers either see the old item
// or the fully patched one.
func (s *Store) UpdateItem(id string, p Patch) {
	idx := s.indexOf(id)
	if idx == -1 {
		return
	}

	next := s.items[idx].Clone()
	if p.X != nil {
		next.X = *p.X
	}
	if p.Y != nil {
		next.Y = *p.Y
	}
	if p.Width != nil {
		next.Width = *p.Width
	}
	if p.Height != nil {
		next.Height = *p.Height
	}
	if p.Src != nil {
		next.Src = *p.Src
	}
	if p.Snapshot != nil {
		next.Snapshot = *p.Snapshot
	}
	if next.Kind == item.KindPost {
		if next.Post == nil {
			next.Post = &item.Post{}
		}
		if p.Text != nil {
			next.Post.Text = *p.Text
		}
		if p.Author != nil {
			next.Post.Author = *p.Author
		}
		if p.Handle != nil {
			next.Post.Handle = *p.Handle
		}
		if p.DateText != nil {
			next.Post.DateText = *p.DateText
		}
		if p.Theme != nil {
			next.Post.Theme = *p.Theme
		}
		if p.Avatar != nil {
			next.Post.Avatar = *p.Avatar
		}
	}

	s.items[idx] = next
	s.notify(Event{Op: OpUpdate, ID: id})
}

// EnforceBounds clamps the item matching id back inside the frame and
// writes the corrected geometry. No-op if id is not found.
func (s *Store) EnforceBounds(id string) {
	idx := s.indexOf(id)
	if idx == -1 {
		return
	}
	next := s.items[idx].Clone()
	next.SetRect(geom.ClampToFrame(next.Rect(), s.frame))
	s.items[idx] = next
	s.notify(Event{Op: OpEnforceBounds, ID: id})
}

// RemoveItem deletes the item matching id. If it was selected, the
// selection is cleared in the same mutation. No-op if id is not found.
func (s *Store) RemoveItem(id string) {
	idx := s.indexOf(id)
	if idx == -1 {
		return
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	if s.selected == id {
		s.selected = ""
	}
	s.notify(Event{Op: OpRemove, ID: id})
}

// SetSelected replaces the selection unconditionally. An empty id clears
// it. The id is not validated against live items: a click may race a
// removal by one event-loop turn, and readers tolerate that window by
// resolving the selection through Snapshot.
func (s *Store) SetSelected(id string) {
	s.selected = id
	s.notify(Event{Op: OpSelect, ID: id})
}

// Selected returns the id of the selected item, or "" if none.
func (s *Store) Selected() string { return s.selected }

// ClearAll empties the composition and clears the selection.
func (s *Store) ClearAll() {
	s.items = nil
	s.selected = ""
	s.notify(Event{Op: OpClear})
}

// Item returns a copy of the item matching id.
// The second result is false if no such item exists.
func (s *Store) Item(id string) (item.Item, bool) {
	idx := s.indexOf(id)
	if idx == -1 {
		return item.Item{}, false
	}
	return s.items[idx].Clone(), true
}

// Len returns the number of items in the composition.
func (s *Store) Len() int { return len(s.items) }

// Snapshot is a read-only view of the composition handed to renderers and
// persistence. Items are deep copies in z-order; mutating them does not
// touch the store. SelectedID is resolved against live items: a selection
// whose referent is gone reads as empty.
type Snapshot struct {
	Frame      geom.Frame
	Items      []item.Item
	SelectedID string
}

// Snapshot returns the current read-only view.
func (s *Store) Snapshot() Snapshot {
	items := make([]item.Item, len(s.items))
	for i, it := range s.items {
		items[i] = it.Clone()
	}
	sel := s.selected
	if sel != "" && s.indexOf(sel) == -1 {
		sel = ""
	}
	return Snapshot{Frame: s.frame, Items: items, SelectedID: sel}
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(it item.Item) bool { return it.ID == id })
}

func (s *Store) notify(ev Event) {
	for _, fn := range s.observers {
		fn(ev)
	}
}
