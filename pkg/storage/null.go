package storage

import (
	"context"

	"github.com/framecraft/framecraft/pkg/item"
)

// NullSlot is a no-op slot that never stores anything.
// Useful for tests or when persistence is disabled.
type NullSlot struct{}

// NewNullSlot creates a null slot.
func NewNullSlot() *NullSlot { return &NullSlot{} }

// Save does nothing.
func (NullSlot) Save(ctx context.Context, items []item.Item) error { return nil }

// Load always reports an absent composition.
func (NullSlot) Load(ctx context.Context) ([]item.Item, bool, error) { return nil, false, nil }

// Close does nothing.
func (NullSlot) Close() error { return nil }

var _ Slot = (*NullSlot)(nil)
