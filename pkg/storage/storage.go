// Package storage persists compositions to a single named durable slot.
//
// Persistence is best-effort by contract: the store saves after every
// mutation without blocking the gesture path, and a failed save is logged
// and dropped, never surfaced. Loading tolerates an absent or corrupt
// slot by reporting "no composition" so a session starts empty instead of
// failing loudly.
//
// Backends implement the Slot interface:
//   - FileSlot: one JSON file under a config directory (CLI default)
//   - RedisSlot: one key in a Redis instance (shared deployments)
//   - NullSlot: no-op (tests, --no-persist)
//
// Saves may overlap — a save for mutation N can still be in flight when
// mutation N+1's save starts. All backends write the whole slot at once,
// so last-write-wins is the worst case, which the contract permits.
package storage

import (
	"context"

	"github.com/framecraft/framecraft/pkg/item"
)

// DefaultSlot is the slot name used when configuration does not override it.
// The version suffix guards the encoding: a future incompatible record
// format bumps the slot instead of migrating in place.
const DefaultSlot = "composition_v1"

// Slot is a single named durable slot holding one composition's items.
// Selection state is never persisted.
type Slot interface {
	// Save serializes items and overwrites the slot.
	Save(ctx context.Context, items []item.Item) error

	// Load reads the slot. ok is false — with a nil error — when the slot
	// is absent or its payload does not parse; callers start empty.
	// A non-nil error means the backend itself failed (I/O, connection).
	Load(ctx context.Context) (items []item.Item, ok bool, err error)

	// Close releases backend resources.
	Close() error
}
