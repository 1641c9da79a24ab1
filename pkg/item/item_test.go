package item

import (
	"strings"
	"testing"

	"github.com/framecraft/framecraft/pkg/geom"
)

var frame = geom.Frame{Width: 1536, Height: 1024}

func TestNewID(t *testing.T) {
	id := NewID("img")
	if !strings.HasPrefix(id, "img_") {
		t.Errorf("NewID prefix missing: %q", id)
	}
	if len(id) != len("img_")+32 {
		t.Errorf("NewID suffix length = %d, want 32", len(id)-len("img_"))
	}

	// Uniqueness across a session-sized batch.
	seen := make(map[string]bool)
	for range 10000 {
		id := NewID("img")
		if seen[id] {
			t.Fatalf("duplicate ID generated: %q", id)
		}
		seen[id] = true
	}
}

func TestNewImage(t *testing.T) {
	it := NewImage("data:image/png;base64,xyz", 3000, 2000, frame)

	if it.Kind != KindImage {
		t.Errorf("Kind = %v, want %v", it.Kind, KindImage)
	}
	if it.Src != "data:image/png;base64,xyz" {
		t.Errorf("Src not kept: %q", it.Src)
	}
	if it.Post != nil || it.Snapshot != "" {
		t.Error("image item carries foreign payload")
	}

	// Sized within the creation budget and centered.
	if it.Width > frame.Width*geom.MaxCreationRatio || it.Height > frame.Height*geom.MaxCreationRatio {
		t.Errorf("creation size exceeds budget: %v x %v", it.Width, it.Height)
	}
	if !geom.Contains(it.Rect(), frame, 1e-9) {
		t.Errorf("new image not contained: %+v", it.Rect())
	}
	wantX, wantY := geom.Centered(frame, it.Width, it.Height)
	if it.X != wantX || it.Y != wantY {
		t.Errorf("not centered: at (%v, %v), want (%v, %v)", it.X, it.Y, wantX, wantY)
	}
}

func TestNewVideo(t *testing.T) {
	it := NewVideo("data:image/png;base64,frame0", 1920, 1080, frame)

	if it.Kind != KindVideo {
		t.Errorf("Kind = %v, want %v", it.Kind, KindVideo)
	}
	if it.Snapshot == "" {
		t.Error("video item lost its snapshot reference")
	}
	if it.Width < 96 || it.Height < 96 {
		t.Errorf("video floor not applied: %v x %v", it.Width, it.Height)
	}
	if !geom.Contains(it.Rect(), frame, 1e-9) {
		t.Errorf("new video not contained: %+v", it.Rect())
	}
}

func TestNewPost(t *testing.T) {
	it := NewPost(Post{Text: "Hello world"}, frame)

	if it.Kind != KindPost {
		t.Errorf("Kind = %v, want %v", it.Kind, KindPost)
	}
	if it.Post == nil || it.Post.Text != "Hello world" {
		t.Fatalf("post payload lost: %+v", it.Post)
	}
	if it.Post.Theme != ThemeLight {
		t.Errorf("empty theme should default to light, got %q", it.Post.Theme)
	}

	w, h := DefaultPostSize(frame)
	if it.Width != w || it.Height != h {
		t.Errorf("default size not applied: %v x %v, want %v x %v", it.Width, it.Height, w, h)
	}
	if !geom.Contains(it.Rect(), frame, 1e-9) {
		t.Errorf("new post not contained: %+v", it.Rect())
	}

	// Explicit theme is preserved.
	dark := NewPost(Post{Text: "x", Theme: ThemeDark}, frame)
	if dark.Post.Theme != ThemeDark {
		t.Errorf("explicit theme overridden: %q", dark.Post.Theme)
	}
}

func TestDefaultPostSize(t *testing.T) {
	w, h := DefaultPostSize(frame)
	if w != 560 {
		t.Errorf("width = %v, want 560", w)
	}
	if h != 400 {
		t.Errorf("height = %v, want 400", h)
	}

	// A small frame caps the width at the creation budget and the height
	// at its floor.
	small := geom.Frame{Width: 400, Height: 240}
	w, h = DefaultPostSize(small)
	if w != 320 {
		t.Errorf("small-frame width = %v, want 320", w)
	}
	if h != 180 {
		t.Errorf("small-frame height = %v, want 180", h)
	}
}

func TestClone(t *testing.T) {
	orig := NewPost(Post{Text: "original"}, frame)
	cp := orig.Clone()

	cp.Post.Text = "mutated"
	if orig.Post.Text != "original" {
		t.Error("Clone shares Post payload with original")
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindImage, KindVideo, KindPost} {
		if !k.Valid() {
			t.Errorf("%q should be valid", k)
		}
	}
	if Kind("tweet").Valid() {
		t.Error("unknown kind reported valid")
	}
}
