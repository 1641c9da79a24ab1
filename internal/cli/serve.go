package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/framecraft/framecraft/internal/api"
	"github.com/framecraft/framecraft/pkg/assets"
	"github.com/framecraft/framecraft/pkg/export"
	"github.com/framecraft/framecraft/pkg/storage"
)

// newServeCmd runs the composition engine behind the JSON HTTP API.
// Every mutating request is persisted to the configured slot through the
// store's autosave subscription.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the composition over a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := openWorkspace(ctx, cfgPath)
			if err != nil {
				return err
			}
			defer ws.close()

			storage.AutoSave(ctx, ws.store, ws.slot, ws.logger)

			loader := assets.NewLoader(assets.WithCacheDir(ws.cfg.Assets.CacheDir))
			renderer, err := export.NewRenderer(loader)
			if err != nil {
				return err
			}

			svc := api.NewService(ws.store,
				api.WithRenderer(renderer),
				api.WithLogger(ws.logger),
			)

			srv := &http.Server{
				Addr:              addr,
				Handler:           svc.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				ws.logger.Info("serving composition API", "addr", addr, "items", ws.store.Len())
				errCh <- srv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
				// Final synchronous save so nothing in flight is lost.
				if err := ws.save(shutdownCtx); err != nil {
					ws.logger.Error("final save failed", "error", err)
				}
				return ctx.Err()
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8787", "listen address")
	return cmd
}
