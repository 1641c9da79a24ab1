package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/framecraft/framecraft/pkg/errors"
	"github.com/framecraft/framecraft/pkg/item"
)

// newItemsCmd lists the composition in z-order.
func newItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List items in stacking order (bottom first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), cfgPath)
			if err != nil {
				return err
			}
			defer ws.close()

			snap := ws.store.Snapshot()
			if len(snap.Items) == 0 {
				printInfo("Composition is empty")
				printNextStep("Add an image", "framecraft add image photo.png")
				return nil
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			rows := make([][]string, 0, len(snap.Items))
			for _, it := range snap.Items {
				marker := " "
				if it.ID == snap.SelectedID {
					marker = "▸"
				}
				rows = append(rows, []string{
					marker,
					it.ID,
					string(it.Kind),
					fmt.Sprintf("%.0f,%.0f", it.X, it.Y),
					fmt.Sprintf("%.0fx%.0f", it.Width, it.Height),
					itemSummary(it),
				})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("", "ID", "Type", "Position", "Size", "Content").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if row < len(snap.Items) && snap.Items[row].ID == snap.SelectedID {
						return lipgloss.NewStyle().Foreground(colorGreen)
					}
					return lipgloss.NewStyle()
				})

			fmt.Println(t.Render())
			printStats(len(snap.Items), snap.SelectedID)
			return nil
		},
	}
}

// itemSummary is the one-line content column: the media ref or the start
// of the post text.
func itemSummary(it item.Item) string {
	var s string
	switch it.Kind {
	case item.KindPost:
		if it.Post != nil {
			s = it.Post.Text
		}
	case item.KindVideo:
		s = it.Snapshot
	default:
		s = it.Src
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 40 {
		s = s[:37] + "..."
	}
	return s
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select [id]",
		Short: "Select an item, or clear the selection with no argument",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), cfgPath)
			if err != nil {
				return err
			}
			defer ws.close()

			ctrl := ws.controller()
			if len(args) == 0 {
				ctrl.OnDeselectBackground()
				printSuccess("Selection cleared")
				return ws.save(cmd.Context())
			}

			id := args[0]
			if _, ok := ws.store.Item(id); !ok {
				return errors.New(errors.ErrCodeItemNotFound, "item %s not found", id)
			}
			ctrl.OnSelect(id)
			printSuccess("Selected %s", StyleHighlight.Render(id))
			return ws.save(cmd.Context())
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an item from the composition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), cfgPath)
			if err != nil {
				return err
			}
			defer ws.close()

			id := args[0]
			if _, ok := ws.store.Item(id); !ok {
				return errors.New(errors.ErrCodeItemNotFound, "item %s not found", id)
			}
			ws.store.RemoveItem(id)
			if err := ws.save(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Removed %s", id)
			printStats(ws.store.Len(), ws.store.Selected())
			return nil
		},
	}
}

func newClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item from the composition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), cfgPath)
			if err != nil {
				return err
			}
			defer ws.close()

			n := ws.store.Len()
			if n > 0 && !force {
				printWarning("This removes %d items. Re-run with --force to confirm.", n)
				return nil
			}
			ws.store.ClearAll()
			if err := ws.save(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Cleared %d items", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	return cmd
}
