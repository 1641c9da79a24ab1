// Package export rasterizes a composition snapshot to a PNG byte stream.
//
// The renderer paints the frame exactly as the editor composes it — white
// background, rounded media corners, light/dark post cards, a play badge
// on video stills — but never selection chrome: the export is the frame's
// content, not the editing session.
//
// Rendering is read-only over a Snapshot and best-effort about assets: an
// item whose pixel reference cannot be resolved is painted as a neutral
// placeholder instead of failing the whole export.
package export

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/framecraft/framecraft/pkg/editor"
	"github.com/framecraft/framecraft/pkg/item"
)

// cornerRadius is the rounding applied to media and cards, in pixels.
const cornerRadius = 12

// Card palette, matching the editor's on-screen rendering.
const (
	lightCardBG   = "#ffffff"
	lightCardText = "#111827"
	lightCardSub  = "#6b7280"
	darkCardBG    = "#0f172a"
	darkCardText  = "#e5e7eb"
	darkCardSub   = "#9ca3af"
	frameBG       = "#ffffff"
	placeholderBG = "#d1d5db"
)

// AssetLoader resolves an item's opaque pixel reference to a decoded
// image. *assets.Loader satisfies this.
type AssetLoader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// Renderer rasterizes composition snapshots. Construct once and reuse;
// font faces are parsed at construction.
type Renderer struct {
	loader AssetLoader

	faceAuthor font.Face // bold 18
	faceBody   font.Face // regular 16
	faceHandle font.Face // regular 14
	faceDate   font.Face // regular 12
}

// NewRenderer creates a renderer resolving assets through loader.
// A nil loader is allowed: every media item then paints as a placeholder,
// which keeps text-only compositions exportable without asset plumbing.
func NewRenderer(loader AssetLoader) (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	r := &Renderer{loader: loader}
	for _, f := range []struct {
		dst  *font.Face
		src  *opentype.Font
		size float64
	}{
		{&r.faceAuthor, bold, 18},
		{&r.faceBody, regular, 16},
		{&r.faceHandle, regular, 14},
		{&r.faceDate, regular, 12},
	} {
		face, err := opentype.NewFace(f.src, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("build %gpx face: %w", f.size, err)
		}
		*f.dst = face
	}
	return r, nil
}

// Render paints the snapshot and returns the frame-sized image.
func (r *Renderer) Render(ctx context.Context, snap editor.Snapshot) (image.Image, error) {
	w := int(math.Round(snap.Frame.Width))
	h := int(math.Round(snap.Frame.Height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid frame %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	dc.SetHexColor(frameBG)
	dc.Clear()

	for _, it := range snap.Items {
		switch it.Kind {
		case item.KindImage:
			r.drawMedia(ctx, dc, it, it.Src, false)
		case item.KindVideo:
			r.drawMedia(ctx, dc, it, it.Snapshot, true)
		case item.KindPost:
			r.drawPostCard(ctx, dc, it)
		}
	}

	return dc.Image(), nil
}

// EncodePNG renders the snapshot and writes PNG bytes to w.
func (r *Renderer) EncodePNG(ctx context.Context, snap editor.Snapshot, w io.Writer) error {
	img, err := r.Render(ctx, snap)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	return dc.EncodePNG(w)
}

// ExportPNG renders the snapshot into a PNG file at path.
func (r *Renderer) ExportPNG(ctx context.Context, snap editor.Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return r.EncodePNG(ctx, snap, f)
}

// drawMedia paints an image or video-snapshot item: pixels scaled to the
// item rectangle, clipped to rounded corners, plus a play badge for video.
func (r *Renderer) drawMedia(ctx context.Context, dc *gg.Context, it item.Item, ref string, playBadge bool) {
	w := int(math.Round(it.Width))
	h := int(math.Round(it.Height))
	if w <= 0 || h <= 0 {
		return
	}

	var pixels image.Image
	if r.loader != nil && ref != "" {
		if img, err := r.loader.Load(ctx, ref); err == nil {
			pixels = imaging.Resize(img, w, h, imaging.Lanczos)
		}
	}

	dc.Push()
	dc.DrawRoundedRectangle(it.X, it.Y, it.Width, it.Height, cornerRadius)
	dc.Clip()
	if pixels != nil {
		dc.DrawImage(pixels, int(math.Round(it.X)), int(math.Round(it.Y)))
	} else {
		dc.SetHexColor(placeholderBG)
		dc.DrawRectangle(it.X, it.Y, it.Width, it.Height)
		dc.Fill()
	}
	dc.ResetClip()
	dc.Pop()

	if playBadge {
		r.drawPlayBadge(dc, it)
	}
}

// drawPlayBadge paints the centered dark badge and triangle that mark a
// still frame as coming from a video.
func (r *Renderer) drawPlayBadge(dc *gg.Context, it item.Item) {
	radius := math.Min(it.Width, it.Height) * 0.16
	cx := it.X + it.Width/2
	cy := it.Y + it.Height/2

	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawRoundedRectangle(cx-radius, cy-radius, radius*2, radius*2, radius)
	dc.Fill()

	tri := radius * 0.8
	dc.SetRGB(1, 1, 1)
	dc.MoveTo(cx-tri*0.4, cy-tri*0.6)
	dc.LineTo(cx-tri*0.4, cy+tri*0.6)
	dc.LineTo(cx+tri*0.7, cy)
	dc.ClosePath()
	dc.Fill()
}

// drawPostCard paints a social-post card with the item's theme palette.
func (r *Renderer) drawPostCard(ctx context.Context, dc *gg.Context, it item.Item) {
	p := it.Post
	if p == nil {
		return
	}

	bg, text, sub := lightCardBG, lightCardText, lightCardSub
	if p.Theme == item.ThemeDark {
		bg, text, sub = darkCardBG, darkCardText, darkCardSub
	}

	// Soft drop shadow, then the card itself.
	dc.SetRGBA(0, 0, 0, 0.18)
	dc.DrawRoundedRectangle(it.X, it.Y+4, it.Width, it.Height, cornerRadius)
	dc.Fill()
	dc.SetHexColor(bg)
	dc.DrawRoundedRectangle(it.X, it.Y, it.Width, it.Height, cornerRadius)
	dc.Fill()

	const (
		pad        = 16
		avatarSize = 32
	)
	contentTop := it.Y + pad
	contentLeft := it.X + pad

	if p.Avatar != "" {
		if r.drawAvatar(ctx, dc, p.Avatar, it.X+pad, contentTop, avatarSize) {
			contentLeft += avatarSize + 12
		}
	}

	if p.Author != "" {
		dc.SetHexColor(text)
		dc.SetFontFace(r.faceAuthor)
		dc.DrawStringAnchored(p.Author, contentLeft, contentTop, 0, 1)
	}
	if p.Handle != "" {
		dc.SetHexColor(sub)
		dc.SetFontFace(r.faceHandle)
		dc.DrawStringAnchored(p.Handle, contentLeft, contentTop+24, 0, 1)
	}

	dc.SetHexColor(text)
	dc.SetFontFace(r.faceBody)
	dc.DrawStringWrapped(p.Text, it.X+pad, contentTop+52, 0, 0, it.Width-2*pad, 1.4, gg.AlignLeft)

	if p.DateText != "" {
		dc.SetHexColor(sub)
		dc.SetFontFace(r.faceDate)
		dc.DrawStringAnchored(p.DateText, it.X+pad, it.Y+it.Height-28, 0, 1)
	}
}

// drawAvatar paints a circle-clipped avatar and reports whether it drew.
// Failures just skip the avatar: the card still renders.
func (r *Renderer) drawAvatar(ctx context.Context, dc *gg.Context, ref string, x, y, size float64) bool {
	if r.loader == nil {
		return false
	}
	img, err := r.loader.Load(ctx, ref)
	if err != nil {
		return false
	}
	scaled := imaging.Resize(img, int(size), int(size), imaging.Lanczos)

	dc.Push()
	dc.DrawCircle(x+size/2, y+size/2, size/2)
	dc.Clip()
	dc.DrawImage(scaled, int(math.Round(x)), int(math.Round(y)))
	dc.ResetClip()
	dc.Pop()
	return true
}
