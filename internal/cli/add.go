package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framecraft/framecraft/pkg/assets"
	"github.com/framecraft/framecraft/pkg/embed"
	"github.com/framecraft/framecraft/pkg/errors"
	"github.com/framecraft/framecraft/pkg/item"
)

// newAddCmd groups the item-creation subcommands.
func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the composition",
	}
	cmd.AddCommand(newAddImageCmd())
	cmd.AddCommand(newAddVideoCmd())
	cmd.AddCommand(newAddPostCmd())
	return cmd
}

// addMediaOpts holds the shared flags for image and video creation.
type addMediaOpts struct {
	sourceWidth  float64 // native pixel width; 0 means probe the asset
	sourceHeight float64
}

func newAddImageCmd() *cobra.Command {
	var opts addMediaOpts

	cmd := &cobra.Command{
		Use:   "image <ref>",
		Short: "Add an image item, fitted and centered on the frame",
		Long:  `Add an image item. The reference may be a local file path, an http(s) URL, or a data: URI. The image is decoded to find its native size unless --source-width and --source-height are given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddMedia(cmd.Context(), args[0], item.KindImage, opts)
		},
	}
	cmd.Flags().Float64Var(&opts.sourceWidth, "source-width", 0, "native width (skips probing)")
	cmd.Flags().Float64Var(&opts.sourceHeight, "source-height", 0, "native height (skips probing)")
	return cmd
}

func newAddVideoCmd() *cobra.Command {
	var opts addMediaOpts

	cmd := &cobra.Command{
		Use:   "video <snapshot-ref>",
		Short: "Add a video item from its still-frame snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddMedia(cmd.Context(), args[0], item.KindVideo, opts)
		},
	}
	cmd.Flags().Float64Var(&opts.sourceWidth, "source-width", 0, "native width (skips probing)")
	cmd.Flags().Float64Var(&opts.sourceHeight, "source-height", 0, "native height (skips probing)")
	return cmd
}

func runAddMedia(ctx context.Context, ref string, kind item.Kind, opts addMediaOpts) error {
	ws, err := openWorkspace(ctx, cfgPath)
	if err != nil {
		return err
	}
	defer ws.close()

	srcW, srcH := opts.sourceWidth, opts.sourceHeight
	if srcW <= 0 || srcH <= 0 {
		w, h, err := probeAssetSize(ctx, ws, ref)
		if err != nil {
			return err
		}
		srcW, srcH = w, h
	}

	var it item.Item
	if kind == item.KindVideo {
		it = item.NewVideo(ref, srcW, srcH, ws.store.Frame())
	} else {
		it = item.NewImage(ref, srcW, srcH, ws.store.Frame())
	}
	ws.store.AddItems([]item.Item{it})

	if err := ws.save(ctx); err != nil {
		return err
	}
	printSuccess("Added %s %s", kind, StyleHighlight.Render(it.ID))
	printDetail("%.0fx%.0f at (%.0f, %.0f)", it.Width, it.Height, it.X, it.Y)
	printStats(ws.store.Len(), ws.store.Selected())
	return nil
}

// probeAssetSize decodes the asset to find its native dimensions.
func probeAssetSize(ctx context.Context, ws *workspace, ref string) (w, h float64, err error) {
	p := newProgress(ws.logger)
	loader := assets.NewLoader(assets.WithCacheDir(ws.cfg.Assets.CacheDir))
	img, err := loader.Load(ctx, ref)
	if err != nil {
		return 0, 0, err
	}
	b := img.Bounds()
	p.done("Probed asset size")
	return float64(b.Dx()), float64(b.Dy()), nil
}

func newAddPostCmd() *cobra.Command {
	var markup string
	var fromFile string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Add a social-post card from pasted embed markup",
		Long:  `Add a post card. The markup comes from --markup, --file, or stdin. Embed blockquotes are parsed for text, attribution, and theme; anything else becomes the card body verbatim.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readPostInput(markup, fromFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runAddPost(cmd.Context(), input)
		},
	}
	cmd.Flags().StringVarP(&markup, "markup", "m", "", "embed markup or plain text")
	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "read markup from file")
	return cmd
}

func readPostInput(markup, fromFile string, stdin io.Reader) (string, error) {
	switch {
	case markup != "":
		return markup, nil
	case fromFile != "":
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read markup file")
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return string(data), nil
	}
}

func runAddPost(ctx context.Context, input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "no markup provided")
	}

	ws, err := openWorkspace(ctx, cfgPath)
	if err != nil {
		return err
	}
	defer ws.close()

	result := embed.Parse(input)
	it := item.NewPost(result.Post(), ws.store.Frame())
	ws.store.AddItems([]item.Item{it})

	if err := ws.save(ctx); err != nil {
		return err
	}
	printSuccess("Added post %s", StyleHighlight.Render(it.ID))
	if result.Author != "" {
		printDetail("%s (@%s)", result.Author, result.Handle)
	}
	printStats(ws.store.Len(), ws.store.Selected())
	printNextStep("Preview the frame", "framecraft export -o frame.png")
	return nil
}
