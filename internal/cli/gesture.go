package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/framecraft/framecraft/pkg/errors"
)

// newMoveCmd commits a drag gesture: the item lands at (x, y), pulled
// back inside the frame if the position would overflow it.
func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <x> <y>",
		Short: "Move an item to a position, clamped to the frame",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseCoord(args[1], "x")
			if err != nil {
				return err
			}
			y, err := parseCoord(args[2], "y")
			if err != nil {
				return err
			}

			ws, err := openWorkspace(cmd.Context(), cfgPath)
			if err != nil {
				return err
			}
			defer ws.close()

			id := args[0]
			if _, ok := ws.store.Item(id); !ok {
				return errors.New(errors.ErrCodeItemNotFound, "item %s not found", id)
			}

			ws.controller().OnDragEnd(id, x, y)
			if err := ws.save(cmd.Context()); err != nil {
				return err
			}

			it, _ := ws.store.Item(id)
			printSuccess("Moved %s", StyleHighlight.Render(id))
			printDetail("now at (%.0f, %.0f)", it.X, it.Y)
			return nil
		},
	}
}

// newResizeCmd commits a resize gesture: floors apply first, then the
// result is clamped into the frame.
func newResizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resize <id> <width> <height>",
		Short: "Resize an item, honoring the minimum size and frame bounds",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseCoord(args[1], "width")
			if err != nil {
				return err
			}
			h, err := parseCoord(args[2], "height")
			if err != nil {
				return err
			}

			ws, err := openWorkspace(cmd.Context(), cfgPath)
			if err != nil {
				return err
			}
			defer ws.close()

			id := args[0]
			before, ok := ws.store.Item(id)
			if !ok {
				return errors.New(errors.ErrCodeItemNotFound, "item %s not found", id)
			}

			ws.controller().OnResizeEnd(id, w, h, before.X, before.Y)
			if err := ws.save(cmd.Context()); err != nil {
				return err
			}

			it, _ := ws.store.Item(id)
			printSuccess("Resized %s", StyleHighlight.Render(id))
			printDetail("now %.0fx%.0f at (%.0f, %.0f)", it.Width, it.Height, it.X, it.Y)
			return nil
		},
	}
}

func parseCoord(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, s)
	}
	return v, nil
}
