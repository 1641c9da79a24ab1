package geom_test

import (
	"fmt"

	"github.com/framecraft/framecraft/pkg/geom"
)

func ExampleClampToFrame() {
	frame := geom.Frame{Width: 800, Height: 600}

	// A drag left the item hanging past the bottom-right corner.
	r := geom.Rect{X: 750, Y: 580, Width: 200, Height: 100}
	r = geom.ClampToFrame(r, frame)

	fmt.Println("x:", r.X, "y:", r.Y)
	// Output:
	// x: 600 y: 500
}

func ExampleApplyResize() {
	frame := geom.Frame{Width: 800, Height: 600}

	// A resize gesture collapsed the item; the floor catches it.
	r := geom.Rect{X: 100, Y: 100, Width: 200, Height: 150}
	r = geom.ApplyResize(r, 1, 1, geom.MinItemSize, frame)

	fmt.Println("size:", r.Width, "x", r.Height)
	// Output:
	// size: 32 x 32
}

func ExampleFitWithin() {
	frame := geom.Frame{Width: 800, Height: 600}
	maxW := frame.Width * geom.MaxCreationRatio
	maxH := frame.Height * geom.MaxCreationRatio

	// A 4000x2000 photo is scaled into the creation budget.
	w, h := geom.FitWithin(4000, 2000, maxW, maxH, 64)
	fmt.Println("w:", w, "h:", h)
	// Output:
	// w: 640 h: 320
}
