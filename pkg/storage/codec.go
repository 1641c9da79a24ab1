package storage

import (
	"encoding/json"
	"fmt"

	"github.com/framecraft/framecraft/pkg/item"
)

// record is the wire form of one item. The type field discriminates the
// variant; optional fields carry omitempty so a field absent before a
// round trip stays absent after it, rather than reappearing empty.
type record struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`

	Src      string `json:"src,omitempty"`
	Snapshot string `json:"snapshot,omitempty"`

	Text     string `json:"text,omitempty"`
	Author   string `json:"author,omitempty"`
	Handle   string `json:"handle,omitempty"`
	DateText string `json:"date_text,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// document is the slot payload: the item sequence in z-order.
// Selection is deliberately not part of the document.
type document struct {
	Items []record `json:"items"`
}

// Encode serializes items to the slot's textual encoding.
func Encode(items []item.Item) ([]byte, error) {
	doc := document{Items: make([]record, len(items))}
	for i, it := range items {
		doc.Items[i] = recordFromItem(it)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode composition: %w", err)
	}
	return data, nil
}

// Decode parses a slot payload back into items. It fails on malformed
// JSON, an unknown type discriminator, or a record without an id — a slot
// that half-parses is treated as corrupt rather than silently truncated.
func Decode(data []byte) ([]item.Item, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode composition: %w", err)
	}

	items := make([]item.Item, 0, len(doc.Items))
	for i, rec := range doc.Items {
		it, err := rec.toItem()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func recordFromItem(it item.Item) record {
	rec := record{
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
	if it.Kind == item.KindPost && it.Post != nil {
		rec.Text = it.Post.Text
		rec.Author = it.Post.Author
		rec.Handle = it.Post.Handle
		rec.DateText = it.Post.DateText
		rec.Theme = string(it.Post.Theme)
		rec.Avatar = it.Post.Avatar
	}
	return rec
}

func (rec record) toItem() (item.Item, error) {
	if rec.ID == "" {
		return item.Item{}, fmt.Errorf("missing id")
	}
	kind := item.Kind(rec.Type)
	if !kind.Valid() {
		return item.Item{}, fmt.Errorf("unknown item type %q", rec.Type)
	}

	it := item.Item{
		ID:       rec.ID,
		Kind:     kind,
		X:        rec.X,
		Y:        rec.Y,
		Width:    rec.Width,
		Height:   rec.Height,
		Rotation: rec.Rotation,
	}

	switch kind {
	case item.KindImage:
		it.Src = rec.Src
	case item.KindVideo:
		it.Snapshot = rec.Snapshot
	case item.KindPost:
		it.Post = &item.Post{
			Text:     rec.Text,
			Author:   rec.Author,
			Handle:   rec.Handle,
			DateText: rec.DateText,
			Theme:    item.Theme(rec.Theme),
			Avatar:   rec.Avatar,
		}
	}
	return it, nil
}
