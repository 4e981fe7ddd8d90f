package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/captionstyle/pkg/caption"
)

// anchorsCommand creates the anchors command.
func (c *CLI) anchorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "anchors",
		Short: "Show the nine position anchors",
		Long: `Show the nine position anchors with the filter expressions and the CSS
placement used for previews. Both come from the same table, so a preview is
always placed where the filter places the caption.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, anchorTable())
			printNextStep(w, "Place a caption", "captionstyle compile --position top_right")
			return nil
		},
	}
}

// anchorTable renders the anchors in grid order.
func anchorTable() string {
	var rows [][]string
	for _, a := range caption.Anchors() {
		x, y := a.Expr()
		pl := a.Placement()
		rows = append(rows, []string{
			string(a), x, y,
			orDash(pl.Top), orDash(pl.Right), orDash(pl.Bottom), orDash(pl.Left), orDash(pl.Transform),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Anchor", "x", "y", "top", "right", "bottom", "left", "transform").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleHighlight
			case col > 2:
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
