package geom

import (
	"math"
	"testing"
)

var testFrame = Frame{Width: 1536, Height: 1024}

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{"below range", -5, 0, 10, 0},
		{"above range", 15, 0, 10, 10},
		{"inside range", 5, 0, 10, 5},
		{"at low edge", 0, 0, 10, 0},
		{"at high edge", 10, 0, 10, 10},
		{"fractional", 3.25, 0, 10, 3.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClampToFrame(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{
			name: "already inside",
			in:   Rect{X: 100, Y: 100, Width: 200, Height: 150},
			want: Rect{X: 100, Y: 100, Width: 200, Height: 150},
		},
		{
			name: "negative position",
			in:   Rect{X: -40, Y: -10, Width: 200, Height: 150},
			want: Rect{X: 0, Y: 0, Width: 200, Height: 150},
		},
		{
			name: "past right and bottom edges",
			in:   Rect{X: 1500, Y: 1000, Width: 200, Height: 150},
			want: Rect{X: 1336, Y: 874, Width: 200, Height: 150},
		},
		{
			name: "fractional drag position",
			in:   Rect{X: 1535.5, Y: 0.25, Width: 100, Height: 100},
			want: Rect{X: 1436, Y: 0.25, Width: 100, Height: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampToFrame(tt.in, testFrame)
			if got != tt.want {
				t.Errorf("ClampToFrame(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampToFrameIdempotent(t *testing.T) {
	rects := []Rect{
		{X: -300, Y: 5000, Width: 120, Height: 80},
		{X: 0.5, Y: 0.5, Width: 32, Height: 32},
		{X: 1536, Y: 1024, Width: 400, Height: 300},
	}
	for _, r := range rects {
		once := ClampToFrame(r, testFrame)
		twice := ClampToFrame(once, testFrame)
		if once != twice {
			t.Errorf("clamp not idempotent for %+v: first %+v, second %+v", r, once, twice)
		}
	}
}

// An item wider than the frame has no valid position; the clamp result
// still protrudes. This is the documented engine boundary: the creation
// policy (FitWithin with MaxCreationRatio) is responsible for keeping
// oversized items from existing at all.
func TestClampToFrameOversizedItem(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: testFrame.Width + 100, Height: 50}
	got := ClampToFrame(r, testFrame)
	if Contains(got, testFrame, 1e-9) {
		t.Errorf("oversized item unexpectedly contained: %+v", got)
	}
	if got.Width != r.Width || got.Height != r.Height {
		t.Errorf("clamp must never change size: %+v", got)
	}
}

func TestApplyResizeFloor(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: 200, Height: 150}

	got := ApplyResize(r, 1, 1, MinItemSize, testFrame)
	if got.Width < MinItemSize || got.Height < MinItemSize {
		t.Errorf("resize below floor: %+v", got)
	}

	got = ApplyResize(r, 1, 1, MinProportionalSize, testFrame)
	if got.Width != MinProportionalSize || got.Height != MinProportionalSize {
		t.Errorf("proportional floor not applied: %+v", got)
	}

	// Zero floor falls back to MinItemSize.
	got = ApplyResize(r, 1, 1, 0, testFrame)
	if got.Width != MinItemSize || got.Height != MinItemSize {
		t.Errorf("default floor not applied: %+v", got)
	}
}

func TestApplyResizePreservesAnchorAndReclamps(t *testing.T) {
	r := Rect{X: 1400, Y: 900, Width: 100, Height: 100}

	// Growing near the edge pushes the anchor back inside.
	got := ApplyResize(r, 300, 200, MinItemSize, testFrame)
	if got.Width != 300 || got.Height != 200 {
		t.Fatalf("size not applied: %+v", got)
	}
	if !Contains(got, testFrame, 1e-9) {
		t.Errorf("resized rect escapes frame: %+v", got)
	}

	// Shrinking away from the edge keeps the top-left anchor.
	got = ApplyResize(Rect{X: 100, Y: 100, Width: 200, Height: 200}, 150, 120, MinItemSize, testFrame)
	if got.X != 100 || got.Y != 100 {
		t.Errorf("anchor moved on plain resize: %+v", got)
	}
}

func TestFitWithin(t *testing.T) {
	maxW := testFrame.Width * MaxCreationRatio
	maxH := testFrame.Height * MaxCreationRatio

	// Large source scales down, preserving aspect ratio.
	w, h := FitWithin(3000, 2000, maxW, maxH, 64)
	if w > maxW+1e-9 || h > maxH+1e-9 {
		t.Errorf("FitWithin exceeded bounds: %v x %v", w, h)
	}
	if math.Abs(w/h-1.5) > 1e-9 {
		t.Errorf("aspect ratio not preserved: %v x %v", w, h)
	}

	// Small source is never upscaled.
	w, h = FitWithin(200, 100, maxW, maxH, 64)
	if w != 200 || h != 100 {
		t.Errorf("small source resized: %v x %v", w, h)
	}

	// Floor applies to degenerate sources.
	w, h = FitWithin(0, 0, maxW, maxH, 64)
	if w != 64 || h != 64 {
		t.Errorf("floor not applied to degenerate source: %v x %v", w, h)
	}
}

func TestCentered(t *testing.T) {
	x, y := Centered(testFrame, 536, 224)
	if x != 500 || y != 400 {
		t.Errorf("Centered = (%v, %v), want (500, 400)", x, y)
	}
}

func TestContains(t *testing.T) {
	if !Contains(Rect{X: 0, Y: 0, Width: 1536, Height: 1024}, testFrame, 1e-9) {
		t.Error("exact fit should be contained")
	}
	if Contains(Rect{X: 1, Y: 0, Width: 1536, Height: 1024}, testFrame, 1e-9) {
		t.Error("shifted exact fit should not be contained")
	}
	// Tolerance absorbs floating-point dust.
	if !Contains(Rect{X: -1e-12, Y: 0, Width: 100, Height: 100}, testFrame, 1e-9) {
		t.Error("tolerance not applied")
	}
}
