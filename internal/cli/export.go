package cli

import (
	"github.com/spf13/cobra"

	"github.com/framecraft/framecraft/pkg/assets"
	"github.com/framecraft/framecraft/pkg/errors"
	"github.com/framecraft/framecraft/pkg/export"
)

// newExportCmd rasterizes the composition to a PNG file.
func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the composition to a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateOutputFilename(output); err != nil {
				return err
			}

			ws, err := openWorkspace(cmd.Context(), cfgPath)
			if err != nil {
				return err
			}
			defer ws.close()

			if ws.store.Len() == 0 {
				printWarning("Composition is empty; exporting a blank frame")
			}

			loader := assets.NewLoader(assets.WithCacheDir(ws.cfg.Assets.CacheDir))
			renderer, err := export.NewRenderer(loader)
			if err != nil {
				return err
			}

			p := newProgress(ws.logger)
			if err := renderer.ExportPNG(cmd.Context(), ws.store.Snapshot(), output); err != nil {
				return err
			}
			p.done("Rendered composition")

			printSuccess("Exported %d items", ws.store.Len())
			printFile(output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "frame.png", "output PNG path")
	return cmd
}
