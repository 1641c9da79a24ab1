package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/framecraft/framecraft/pkg/buildinfo"
)

// cfgPath is the --config flag value shared by all commands.
var cfgPath string

// Execute runs the framecraft CLI under ctx and returns an error if any
// command fails. Cancelling ctx stops long-running commands (serve, tui).
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "framecraft",
		Short:        "Framecraft composes media items on a fixed frame",
		Long:         `Framecraft is a composition editor for a fixed-size frame: add images, video stills, and social-post cards, arrange them with bounded drag and resize gestures, and export the result as a PNG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/framecraft/config.toml)")

	root.AddCommand(newAddCmd())
	root.AddCommand(newItemsCmd())
	root.AddCommand(newMoveCmd())
	root.AddCommand(newResizeCmd())
	root.AddCommand(newSelectCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newClearCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newTUICmd())

	return root.ExecuteContext(ctx)
}
