package editor

import "github.com/framecraft/framecraft/pkg/geom"

// Controller is the gesture surface consumed by interactive front-ends
// (the TUI, the HTTP API). It translates pointer-style events into store
// mutations, applying the constraint engine where a gesture ends.
//
// The controller holds no state of its own beyond the store reference;
// construct one wherever a gesture source lives.
type Controller struct {
	store *Store
}

// NewController creates a controller driving the given store.
func NewController(s *Store) *Controller {
	return &Controller{store: s}
}

// OnSelect marks the item under the pointer as selected.
func (c *Controller) OnSelect(id string) {
	c.store.SetSelected(id)
}

// OnDeselectBackground clears the selection after a click on empty frame.
func (c *Controller) OnDeselectBackground() {
	c.store.SetSelected("")
}

// OnDragEnd commits a finished drag: the item moves to (x, y) and is
// clamped back inside the frame.
func (c *Controller) OnDragEnd(id string, x, y float64) {
	c.store.UpdateItem(id, Patch{X: &x, Y: &y})
	c.store.EnforceBounds(id)
}

// OnResizeEnd commits a finished resize gesture. Width and height are
// floored at the proportional minimum — resize handles scale both axes —
// the anchor moves to (x, y), and the result is clamped.
//
// Aspect ratio is the gesture source's concern: it computes symmetric
// scale factors before calling, and the engine does not re-lock it.
func (c *Controller) OnResizeEnd(id string, width, height, x, y float64) {
	it, ok := c.store.Item(id)
	if !ok {
		return
	}
	r := geom.ApplyResize(geom.Rect{X: x, Y: y, Width: it.Width, Height: it.Height},
		width, height, geom.MinProportionalSize, c.store.Frame())
	c.store.UpdateItem(id, Patch{X: &r.X, Y: &r.Y, Width: &r.Width, Height: &r.Height})
	c.store.EnforceBounds(id)
}

// OnDeleteKey removes the selected item, if any.
func (c *Controller) OnDeleteKey() {
	if sel := c.store.Selected(); sel != "" {
		c.store.RemoveItem(sel)
	}
}
