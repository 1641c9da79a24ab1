package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/framecraft/framecraft/pkg/editor"
	"github.com/framecraft/framecraft/pkg/embed"
	"github.com/framecraft/framecraft/pkg/errors"
	"github.com/framecraft/framecraft/pkg/item"
)

// handleComposition returns the current snapshot.
// GET /v1/composition
func (s *Service) handleComposition(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, snapshotToWire(s.store.Snapshot()))
}

// handleClear removes every item and the selection.
// DELETE /v1/composition
func (s *Service) handleClear(w http.ResponseWriter, r *http.Request) {
	s.store.ClearAll()
	w.WriteHeader(http.StatusNoContent)
}

// addItemRequest is the body for POST /v1/items. Source dimensions size
// image and video items; posts are sized from the frame.
type addItemRequest struct {
	Type         string  `json:"type"`
	Src          string  `json:"src,omitempty"`
	Snapshot     string  `json:"snapshot,omitempty"`
	SourceWidth  float64 `json:"source_width,omitempty"`
	SourceHeight float64 `json:"source_height,omitempty"`

	Post *postJSON `json:"post,omitempty"`
}

// handleAddItem creates one item of the requested kind, centered and
// fitted to the frame, and appends it on top of the stack.
// POST /v1/items
func (s *Service) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}

	frame := s.store.Frame()
	var it item.Item
	switch item.Kind(req.Type) {
	case item.KindImage:
		if req.Src == "" {
			s.respondError(w, errors.New(errors.ErrCodeInvalidItem, "image items require src"))
			return
		}
		it = item.NewImage(req.Src, req.SourceWidth, req.SourceHeight, frame)
	case item.KindVideo:
		if req.Snapshot == "" {
			s.respondError(w, errors.New(errors.ErrCodeInvalidItem, "video items require snapshot"))
			return
		}
		it = item.NewVideo(req.Snapshot, req.SourceWidth, req.SourceHeight, frame)
	case item.KindPost:
		if req.Post == nil || req.Post.Text == "" {
			s.respondError(w, errors.New(errors.ErrCodeInvalidItem, "post items require post.text"))
			return
		}
		it = item.NewPost(item.Post{
			Text:     req.Post.Text,
			Author:   req.Post.Author,
			Handle:   req.Post.Handle,
			DateText: req.Post.DateText,
			Theme:    item.Theme(req.Post.Theme),
			Avatar:   req.Post.Avatar,
		}, frame)
	default:
		s.respondError(w, errors.New(errors.ErrCodeInvalidItem, "unknown item type %q", req.Type))
		return
	}

	s.store.AddItems([]item.Item{it})
	s.respondJSON(w, http.StatusCreated, itemToWire(it))
}

// embedRequest is the body for POST /v1/embed.
type embedRequest struct {
	Markup string `json:"markup"`
}

// handleEmbed parses pasted embed markup (or a plain URL) into a post
// item and adds it to the composition.
// POST /v1/embed
func (s *Service) handleEmbed(w http.ResponseWriter, r *http.Request) {
	var req embedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}
	if req.Markup == "" {
		s.respondError(w, errors.New(errors.ErrCodeInvalidInput, "markup is required"))
		return
	}

	result := embed.Parse(req.Markup)
	it := item.NewPost(result.Post(), s.store.Frame())
	s.store.AddItems([]item.Item{it})
	s.respondJSON(w, http.StatusCreated, itemToWire(it))
}

// patchItemRequest carries partial updates; absent fields stay unchanged.
type patchItemRequest struct {
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Src      *string  `json:"src,omitempty"`
	Snapshot *string  `json:"snapshot,omitempty"`

	Text     *string `json:"text,omitempty"`
	Author   *string `json:"author,omitempty"`
	Handle   *string `json:"handle,omitempty"`
	DateText *string `json:"date_text,omitempty"`
	Theme    *string `json:"theme,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// handlePatchItem applies a partial update, then pulls the item back
// inside the frame.
// PATCH /v1/items/{id}
func (s *Service) handlePatchItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.store.Item(id); !ok {
		s.respondError(w, errors.New(errors.ErrCodeItemNotFound, "item %s not found", id))
		return
	}

	var req patchItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}

	patch := editor.Patch{
		X:        req.X,
		Y:        req.Y,
		Width:    req.Width,
		Height:   req.Height,
		Src:      req.Src,
		Snapshot: req.Snapshot,
		Text:     req.Text,
		Author:   req.Author,
		Handle:   req.Handle,
		DateText: req.DateText,
		Avatar:   req.Avatar,
	}
	if req.Theme != nil {
		theme := item.Theme(*req.Theme)
		patch.Theme = &theme
	}

	s.store.UpdateItem(id, patch)
	s.store.EnforceBounds(id)

	updated, _ := s.store.Item(id)
	s.respondJSON(w, http.StatusOK, itemToWire(updated))
}

// handleRemoveItem deletes one item.
// DELETE /v1/items/{id}
func (s *Service) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.store.Item(id); !ok {
		s.respondError(w, errors.New(errors.ErrCodeItemNotFound, "item %s not found", id))
		return
	}
	s.store.RemoveItem(id)
	w.WriteHeader(http.StatusNoContent)
}

// pointRequest is the drag-end body.
type pointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// handleDragEnd commits a drag gesture at the released position.
// POST /v1/items/{id}/drag-end
func (s *Service) handleDragEnd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.store.Item(id); !ok {
		s.respondError(w, errors.New(errors.ErrCodeItemNotFound, "item %s not found", id))
		return
	}

	var req pointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}

	s.controller.OnDragEnd(id, req.X, req.Y)
	updated, _ := s.store.Item(id)
	s.respondJSON(w, http.StatusOK, itemToWire(updated))
}

// resizeRequest is the resize-end body: the raw geometry the gesture
// produced, before floors and clamping.
type resizeRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// handleResizeEnd commits a resize gesture.
// POST /v1/items/{id}/resize-end
func (s *Service) handleResizeEnd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.store.Item(id); !ok {
		s.respondError(w, errors.New(errors.ErrCodeItemNotFound, "item %s not found", id))
		return
	}

	var req resizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}

	s.controller.OnResizeEnd(id, req.Width, req.Height, req.X, req.Y)
	updated, _ := s.store.Item(id)
	s.respondJSON(w, http.StatusOK, itemToWire(updated))
}

// selectionRequest is the PUT /v1/selection body.
type selectionRequest struct {
	ID string `json:"id"`
}

// handleSelect marks one item as selected.
// PUT /v1/selection
func (s *Service) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}
	if _, ok := s.store.Item(req.ID); !ok {
		s.respondError(w, errors.New(errors.ErrCodeItemNotFound, "item %s not found", req.ID))
		return
	}
	s.controller.OnSelect(req.ID)
	s.respondJSON(w, http.StatusOK, map[string]string{"selected_id": req.ID})
}

// handleDeselect clears the selection, like clicking the frame background.
// DELETE /v1/selection
func (s *Service) handleDeselect(w http.ResponseWriter, r *http.Request) {
	s.controller.OnDeselectBackground()
	w.WriteHeader(http.StatusNoContent)
}

// handleExport streams the rendered composition as PNG.
// GET /v1/export.png
func (s *Service) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.renderer == nil {
		s.respondError(w, errors.New(errors.ErrCodeUnsupported, "export is not configured"))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := s.renderer.EncodePNG(r.Context(), s.store.Snapshot(), w); err != nil && s.logger != nil {
		s.logger.Error("export failed", "error", err)
	}
}
