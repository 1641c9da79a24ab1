// Package item defines the content items a composition is made of.
//
// An Item is one positioned, sized unit of content inside the frame. The
// set of variants is closed: pixel images, still-frame video snapshots, and
// rendered social-post cards. A Kind discriminant tags each item; all
// variant-specific logic switches on it.
//
// Items are value types. Mutation happens by building a new value from the
// old fields plus overrides and replacing the entry in its composition,
// never by partial in-place writes.
package item

import (
	"fmt"

	"github.com/framecraft/framecraft/pkg/geom"
)

// Kind discriminates the closed set of item variants.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindPost  Kind = "post"
)

// Valid reports whether k is one of the known variants.
func (k Kind) Valid() bool {
	switch k {
	case KindImage, KindVideo, KindPost:
		return true
	}
	return false
}

// Theme selects the palette of a rendered post card.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Post holds the structured fields of a social-post card.
// Text is the only required field; the rest stay empty when the source
// embed did not carry them, and empty fields are omitted on serialization.
type Post struct {
	Text     string
	Author   string
	Handle   string
	DateText string
	Theme    Theme
	Avatar   string // avatar reference URI, derived from Handle
}

// Item is a positioned, sized, typed unit of content inside the frame.
//
// ID is opaque, unique within a session, and never reused. X and Y locate
// the top-left corner and may be fractional mid-drag. Width and Height are
// floored at geom.MinItemSize by the constraint engine. Rotation is
// reserved and currently unused.
//
// Exactly one payload field is meaningful per Kind: Src for images,
// Snapshot for videos (a single still frame; the engine never stores
// motion video), Post for post cards.
type Item struct {
	ID       string
	Kind     Kind
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64

	Src      string // image: opaque pixel-source reference (data URI, path, URL)
	Snapshot string // video: still-frame snapshot reference
	Post     *Post  // post: card fields, nil for other kinds
}

// Rect returns the item's geometry as a rectangle.
func (it Item) Rect() geom.Rect {
	return geom.Rect{X: it.X, Y: it.Y, Width: it.Width, Height: it.Height}
}

// SetRect writes a rectangle back into the item's geometry fields.
func (it *Item) SetRect(r geom.Rect) {
	it.X, it.Y, it.Width, it.Height = r.X, r.Y, r.Width, r.Height
}

// Label returns a short human-readable description for lists and logs.
func (it Item) Label() string {
	switch it.Kind {
	case KindImage:
		return fmt.Sprintf("image %s", it.ID)
	case KindVideo:
		return fmt.Sprintf("video %s", it.ID)
	case KindPost:
		text := ""
		if it.Post != nil {
			text = it.Post.Text
		}
		if len(text) > 24 {
			text = text[:24] + "…"
		}
		return fmt.Sprintf("post %s %q", it.ID, text)
	}
	return it.ID
}

// Creation-size floors per variant, from the original editor's upload paths.
const (
	imageFloor = 64
	videoFloor = 96
)

// Post card default-size bounds.
const (
	postMaxWidth    = 560
	postMinHeight   = 180
	postMaxHeight   = 400
	postHeightRatio = 0.6
)

// NewImage creates a centered image item sized to fit the creation budget.
// srcW and srcH are the source's pixel dimensions; the item is scaled to at
// most geom.MaxCreationRatio of the frame and never upscaled.
func NewImage(src string, srcW, srcH float64, f geom.Frame) Item {
	w, h := geom.FitWithin(srcW, srcH, f.Width*geom.MaxCreationRatio, f.Height*geom.MaxCreationRatio, imageFloor)
	x, y := geom.Centered(f, w, h)
	return Item{
		ID:    NewID("img"),
		Kind:  KindImage,
		X:     x,
		Y:     y,
		Width: w, Height: h,
		Src: src,
	}
}

// NewVideo creates a centered video item from a still-frame snapshot
// reference and the snapshot's pixel dimensions.
func NewVideo(snapshot string, srcW, srcH float64, f geom.Frame) Item {
	w, h := geom.FitWithin(srcW, srcH, f.Width*geom.MaxCreationRatio, f.Height*geom.MaxCreationRatio, videoFloor)
	x, y := geom.Centered(f, w, h)
	return Item{
		ID:    NewID("vid"),
		Kind:  KindVideo,
		X:     x,
		Y:     y,
		Width: w, Height: h,
		Snapshot: snapshot,
	}
}

// NewPost creates a centered post-card item with the default card size for
// the frame. The Post payload is copied; an empty theme defaults to light.
func NewPost(p Post, f geom.Frame) Item {
	if p.Theme == "" {
		p.Theme = ThemeLight
	}
	w, h := DefaultPostSize(f)
	x, y := geom.Centered(f, w, h)
	return Item{
		ID:    NewID("pst"),
		Kind:  KindPost,
		X:     x,
		Y:     y,
		Width: w, Height: h,
		Post: &p,
	}
}

// DefaultPostSize returns the card size used for newly created posts:
// width capped at postMaxWidth or the creation budget, height between
// postMinHeight and postMaxHeight scaled off the frame.
func DefaultPostSize(f geom.Frame) (w, h float64) {
	w = min(postMaxWidth, f.Width*geom.MaxCreationRatio)
	h = max(postMinHeight, min(postMaxHeight, f.Height*postHeightRatio))
	return w, h
}

// Clone returns a deep copy of the item. The Post payload, when present,
// is copied so the clone shares no mutable state with the original.
func (it Item) Clone() Item {
	out := it
	if it.Post != nil {
		p := *it.Post
		out.Post = &p
	}
	return out
}
