package storage

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/framecraft/framecraft/pkg/editor"
)

// AutoSave registers a mutation observer on the store that persists the
// composition after every dirty mutation. The item snapshot is taken
// synchronously inside the observer — so it reflects exactly the state the
// mutation produced — and the write itself runs in its own goroutine so
// the gesture path never blocks on I/O.
//
// Save failures are swallowed: logged at debug level when a logger is
// provided, otherwise dropped. The composition continues in memory; the
// documented cost is possible data loss on reload.
func AutoSave(ctx context.Context, store *editor.Store, slot Slot, logger *log.Logger) {
	store.Subscribe(func(ev editor.Event) {
		if !ev.Dirty() {
			return
		}
		items := store.Snapshot().Items
		go func() {
			if err := slot.Save(ctx, items); err != nil && logger != nil {
				logger.Debug("autosave failed", "op", ev.Op, "err", err)
			}
		}()
	})
}
