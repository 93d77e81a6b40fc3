package cli

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/audiocircuits/pkg/circuit"
	"github.com/matzehuels/audiocircuits/pkg/parts"
)

// partsCommand creates the parts command for inspecting the part library.
func (c *CLI) partsCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "parts [NAME]",
		Short: "List parts or show a part's pinout",
		Example: `  audiocircuits parts
  audiocircuits parts TL072
  audiocircuits parts -i`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return parts.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if interactive {
				_, err := tea.NewProgram(NewPartBrowserModel(parts.All()), tea.WithContext(cmd.Context())).Run()
				return err
			}
			if len(args) == 0 {
				_, err := fmt.Fprintln(out, partsTable(parts.All()))
				return err
			}

			p, err := parts.Lookup(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, partDetail(p))
			return err
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse parts interactively")

	return cmd
}

// partsTable renders the library as a table, one row per part.
func partsTable(ps []parts.Part) string {
	rows := make([][]string, len(ps))
	for i, p := range ps {
		rows[i] = []string{p.Name, p.Footprint, strconv.Itoa(p.PinCount()), p.Description}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Part", "Footprint", "Pins", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleHighlight.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		Render()
}

// partDetail renders a part's summary and pin table.
func partDetail(p parts.Part) string {
	key := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	lines := []string{
		StyleTitle.Render(p.Name),
		key.Render("description") + " " + StyleValue.Render(p.Description),
		key.Render("footprint") + " " + StyleValue.Render(p.Footprint),
	}
	for _, supplier := range slices.Sorted(maps.Keys(p.Supplier)) {
		lines = append(lines, key.Render(supplier)+" "+StyleValue.Render(strings.Join(p.Supplier[supplier], ", ")))
	}
	lines = append(lines, pinTable(p))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// pinTable renders one row per pin: engine id, label and symbol side.
func pinTable(p parts.Part) string {
	ids := p.PinIDs()
	rows := make([][]string, len(ids))
	for i, id := range ids {
		label := p.PinLabels[id]
		rows[i] = []string{id, label, pinSide(p.Arrangement, label)}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Pin", "Label", "Side").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}

// pinSide names the symbol side a label is drawn on, or "-".
func pinSide(a circuit.PinArrangement, label string) string {
	sides := []struct {
		name string
		side *circuit.Side
	}{
		{"left", a.LeftSide},
		{"right", a.RightSide},
		{"top", a.TopSide},
		{"bottom", a.BottomSide},
	}
	for _, s := range sides {
		if s.side == nil {
			continue
		}
		for _, pin := range s.side.Pins {
			if pin == label {
				return s.name
			}
		}
	}
	return "-"
}
