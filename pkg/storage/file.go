package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/framecraft/framecraft/pkg/errors"
	"github.com/framecraft/framecraft/pkg/item"
)

// FileSlot persists the composition as one JSON file in a config
// directory. Overlapping saves are serialized by a mutex so the slot file
// is always a complete document (last writer wins).
type FileSlot struct {
	mu   sync.Mutex
	path string
}

// NewFileSlot creates a file-backed slot named slot under baseDir.
// If baseDir is empty, defaults to ~/.config/framecraft/.
func NewFileSlot(baseDir, slot string) (*FileSlot, error) {
	if slot == "" {
		slot = DefaultSlot
	}
	if err := errors.ValidateSlotName(slot); err != nil {
		return nil, err
	}
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "framecraft")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileSlot{path: filepath.Join(baseDir, slot+".json")}, nil
}

// Save writes the whole slot file, replacing any prior value.
func (s *FileSlot) Save(ctx context.Context, items []item.Item) error {
	data, err := Encode(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write slot file: %w", err)
	}
	return nil
}

// Load reads the slot file. A missing file or an unparseable payload
// reads as "no composition".
func (s *FileSlot) Load(ctx context.Context) ([]item.Item, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read slot file: %w", err)
	}

	items, err := Decode(data)
	if err != nil {
		// Corrupt slot: start empty rather than failing loudly.
		return nil, false, nil
	}
	return items, true, nil
}

// Close does nothing for file slots.
func (s *FileSlot) Close() error { return nil }

// Path returns the slot file's location.
func (s *FileSlot) Path() string { return s.path }

var _ Slot = (*FileSlot)(nil)
