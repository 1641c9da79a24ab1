// Package pkg provides the core libraries for framecraft composition
// editing.
//
// # Overview
//
// Framecraft arranges media items on a fixed-size frame. The pkg
// directory is organized around the editing pipeline:
//
//	embed markup / asset refs
//	         ↓
//	    [item] package (tagged item model + constructors)
//	         ↓
//	    [editor] package (composition store, selection, gestures)
//	         ↓
//	    [storage] package (persistence slots, autosave)
//	         ↓
//	    [export] package (PNG rasterization)
//
// # Main Packages
//
// [geom] - Frame geometry: clamping, resize floors, fit-within scaling.
// Every containment rule the editor enforces lives here.
//
// [item] - The item model: images, video stills, and social-post cards,
// with constructors that center and budget new items on the frame.
//
// [editor] - The composition store (ordered items, single selection,
// observer events) and the gesture controller that commits drags and
// resizes.
//
// [embed] - Parser for pasted embed markup: blockquote text, dash
// attribution, theme, and avatar derivation.
//
// [storage] - Persistence slots (file, redis, null) with a strict JSON
// codec and store-driven autosave.
//
// [assets] - Pixel resolution for item references: data URIs, local
// files, and cached, retried HTTP fetches.
//
// [export] - Raster rendering of a snapshot to PNG.
//
// [config] - TOML configuration for frame size, storage backend, and
// asset caching.
//
// [errors] - Structured, code-based errors shared by every package.
//
// # Quick Start
//
// Compose and export a frame:
//
//	store := editor.NewStore(geom.DefaultFrame)
//	store.AddItems([]item.Item{item.NewImage("photo.png", 800, 600, store.Frame())})
//
//	renderer, _ := export.NewRenderer(assets.NewLoader())
//	renderer.ExportPNG(ctx, store.Snapshot(), "frame.png")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/editor/... # Specific package
//	go test -run Example     # Examples only
package pkg
