package item

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates an opaque item identifier with a short variant prefix
// for readability, e.g. "img_0d9c1f2a4b3e4c5d9e8f7a6b5c4d3e2f".
//
// The suffix is a full random UUID (dashes stripped), so collisions within
// a session are negligible at any realistic item count. IDs are never
// reused: removal does not return an ID to any pool.
func NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	if prefix == "" {
		return suffix
	}
	return prefix + "_" + suffix
}
