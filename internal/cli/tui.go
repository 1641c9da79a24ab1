package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/framecraft/framecraft/pkg/editor"
	"github.com/framecraft/framecraft/pkg/storage"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Gesture steps, in frame pixels.
const (
	moveStep   = 10
	resizeStep = 16
)

// newTUICmd opens the interactive composition editor.
func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the composition interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := openWorkspace(ctx, cfgPath)
			if err != nil {
				return err
			}
			defer ws.close()

			// Mutations made through the model persist as they happen.
			storage.AutoSave(ctx, ws.store, ws.slot, ws.logger)

			model := NewEditorModel(ws.store)
			if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
				return err
			}
			// One last synchronous save before exit.
			return ws.save(ctx)
		},
	}
}

// =============================================================================
// EditorModel - Interactive composition editing
// =============================================================================

// EditorModel is the bubbletea model for keyboard-driven editing. The
// cursor walks the z-order; gestures act on the selected item through the
// controller so floors and frame clamping always apply.
type EditorModel struct {
	store      *editor.Store
	controller *editor.Controller
	Cursor     int
	Height     int
	Offset     int
}

// NewEditorModel creates an editor model over store.
func NewEditorModel(store *editor.Store) EditorModel {
	return EditorModel{
		store:      store,
		controller: editor.NewController(store),
		Height:     15,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.controller.OnDeselectBackground()
		case "k", "up":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
			m.selectCursor()
		case "j", "down", "tab":
			if m.Cursor < m.store.Len()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			} else if msg.String() == "tab" && m.store.Len() > 0 {
				m.Cursor = 0
				m.Offset = 0
			}
			m.selectCursor()
		case "enter":
			m.selectCursor()
		case "left":
			m.moveSelected(-moveStep, 0)
		case "right":
			m.moveSelected(moveStep, 0)
		case "shift+up":
			m.moveSelected(0, -moveStep)
		case "shift+down":
			m.moveSelected(0, moveStep)
		case "+", "=":
			m.resizeSelected(resizeStep)
		case "-":
			m.resizeSelected(-resizeStep)
		case "d", "delete", "backspace":
			m.controller.OnDeleteKey()
			if m.Cursor >= m.store.Len() && m.Cursor > 0 {
				m.Cursor--
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// selectCursor selects the item under the cursor.
func (m EditorModel) selectCursor() {
	snap := m.store.Snapshot()
	if m.Cursor >= 0 && m.Cursor < len(snap.Items) {
		m.controller.OnSelect(snap.Items[m.Cursor].ID)
	}
}

// moveSelected nudges the selected item, clamped to the frame.
func (m EditorModel) moveSelected(dx, dy float64) {
	id := m.store.Selected()
	if id == "" {
		return
	}
	it, ok := m.store.Item(id)
	if !ok {
		return
	}
	m.controller.OnDragEnd(id, it.X+dx, it.Y+dy)
}

// resizeSelected grows or shrinks the selected item, keeping its aspect
// ratio and honoring the minimum size.
func (m EditorModel) resizeSelected(delta float64) {
	id := m.store.Selected()
	if id == "" {
		return
	}
	it, ok := m.store.Item(id)
	if !ok || it.Width <= 0 {
		return
	}
	scale := (it.Width + delta) / it.Width
	m.controller.OnResizeEnd(id, it.Width*scale, it.Height*scale, it.X, it.Y)
}

func (m EditorModel) View() string {
	var b strings.Builder

	snap := m.store.Snapshot()

	b.WriteString(StyleTitle.Render("Framecraft"))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %.0fx%.0f frame", snap.Frame.Width, snap.Frame.Height)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("j/k select  ←/→ shift+↑/↓ move  +/- resize  d delete  esc deselect  q quit"))
	b.WriteString("\n\n")

	if len(snap.Items) == 0 {
		b.WriteString(listDimStyle.Render("  empty composition — add items with the add command"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(snap.Items) {
		end = len(snap.Items)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		it := snap.Items[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		sel := ""
		if it.ID == snap.SelectedID {
			sel = "✓"
		}
		rows = append(rows, []string{
			cursor,
			it.Label(),
			fmt.Sprintf("%.0f,%.0f", it.X, it.Y),
			fmt.Sprintf("%.0fx%.0f", it.Width, it.Height),
			sel,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Item", "Position", "Size", "Sel").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(snap.Items) {
				return lipgloss.NewStyle()
			}
			if idx == m.Cursor {
				return listSelectedStyle
			}
			if snap.Items[idx].ID == snap.SelectedID {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(snap.Items))))

	return b.String()
}
