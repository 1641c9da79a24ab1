package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/framecraft/framecraft/pkg/config"
	"github.com/framecraft/framecraft/pkg/editor"
	"github.com/framecraft/framecraft/pkg/storage"
)

// workspace bundles the loaded config, the persistence slot, and a store
// seeded from it. Every command opens a workspace, mutates the store, and
// saves back through the slot.
type workspace struct {
	cfg    config.Config
	store  *editor.Store
	slot   storage.Slot
	logger *log.Logger
}

// openWorkspace loads the config at cfgPath ("" means the default
// location), opens the configured slot, and seeds a store with the
// persisted composition. An empty or corrupt slot seeds an empty store.
func openWorkspace(ctx context.Context, cfgPath string) (*workspace, error) {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	slot, err := cfg.OpenSlot(ctx)
	if err != nil {
		return nil, err
	}

	items, ok, err := slot.Load(ctx)
	if err != nil {
		slot.Close()
		return nil, err
	}
	if ok {
		logger.Debug("loaded composition", "items", len(items))
	} else {
		logger.Debug("no saved composition, starting empty")
	}

	return &workspace{
		cfg:    cfg,
		store:  editor.NewStore(cfg.FrameSize(), editor.WithItems(items)),
		slot:   slot,
		logger: logger,
	}, nil
}

// controller returns a gesture controller bound to the workspace store.
func (ws *workspace) controller() *editor.Controller {
	return editor.NewController(ws.store)
}

// save persists the current composition to the slot.
func (ws *workspace) save(ctx context.Context) error {
	return ws.slot.Save(ctx, ws.store.Snapshot().Items)
}

// close releases the slot.
func (ws *workspace) close() {
	if err := ws.slot.Close(); err != nil {
		ws.logger.Debug("close slot", "error", err)
	}
}
