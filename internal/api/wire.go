package api

import (
	"encoding/json"
	"net/http"

	"github.com/framecraft/framecraft/pkg/editor"
	"github.com/framecraft/framecraft/pkg/errors"
	"github.com/framecraft/framecraft/pkg/item"
)

// itemJSON is the wire shape of a composition item.
type itemJSON struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`
	Src      string  `json:"src,omitempty"`
	Snapshot string  `json:"snapshot,omitempty"`

	Post *postJSON `json:"post,omitempty"`
}

type postJSON struct {
	Text     string `json:"text"`
	Author   string `json:"author,omitempty"`
	Handle   string `json:"handle,omitempty"`
	DateText string `json:"date_text,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type frameJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// compositionJSON is the GET /v1/composition response: items in z-order.
type compositionJSON struct {
	Frame      frameJSON  `json:"frame"`
	Items      []itemJSON `json:"items"`
	SelectedID string     `json:"selected_id,omitempty"`
}

func itemToWire(it item.Item) itemJSON {
	out := itemJSON{
		ID:       it.ID,
		Type:     string(it.Kind),
		X:        it.X,
		Y:        it.Y,
		Width:    it.Width,
		Height:   it.Height,
		Rotation: it.Rotation,
		Src:      it.Src,
		Snapshot: it.Snapshot,
	}
	if it.Post != nil {
		out.Post = &postJSON{
			Text:     it.Post.Text,
			Author:   it.Post.Author,
			Handle:   it.Post.Handle,
			DateText: it.Post.DateText,
			Theme:    string(it.Post.Theme),
			Avatar:   it.Post.Avatar,
		}
	}
	return out
}

func snapshotToWire(snap editor.Snapshot) compositionJSON {
	out := compositionJSON{
		Frame:      frameJSON{Width: snap.Frame.Width, Height: snap.Frame.Height},
		Items:      make([]itemJSON, 0, len(snap.Items)),
		SelectedID: snap.SelectedID,
	}
	for _, it := range snap.Items {
		out.Items = append(out.Items, itemToWire(it))
	}
	return out
}

// statusFor maps a structured error code to an HTTP status.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidItem, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeItemNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Service) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && s.logger != nil {
		s.logger.Debug("encode response", "error", err)
	}
}

func (s *Service) respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if s.logger != nil && status >= 500 {
		s.logger.Error("request failed", "error", err)
	}
	s.respondJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
