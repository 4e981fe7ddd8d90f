package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/captionstyle/pkg/caption"
	"github.com/matzehuels/captionstyle/pkg/pipeline"
)

// List styles
var (
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	listPreviewStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// =============================================================================
// PresetListModel - Interactive preset selection
// =============================================================================

// PresetListModel is the bubbletea model for interactive preset selection.
// The filter string of the preset under the cursor is shown as it moves.
type PresetListModel struct {
	Names    []string
	Catalog  *caption.Catalog
	Profile  caption.Profile
	Text     string // caption text used for the live preview
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewPresetListModel creates a preset list model over every preset in catalog.
func NewPresetListModel(catalog *caption.Catalog, prof caption.Profile, text string) PresetListModel {
	return PresetListModel{
		Names:   catalog.Names(),
		Catalog: catalog,
		Profile: prof,
		Text:    text,
		Height:  10,
	}
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Names)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Names) == 0 {
				return m, nil
			}
			m.Selected = m.Names[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 12
		if m.Height < 3 {
			m.Height = 3
		}
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Preset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Names) {
		end = len(m.Names)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p, _ := m.Catalog.Get(m.Names[i])
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, m.Names[i], p.FontFamily, strconv.Itoa(p.FontSize), string(p.FontColor)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Preset", "Font", "Size", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if preview := m.Preview(); preview != "" {
		b.WriteString(listPreviewStyle.Render(preview))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %s profile", m.Cursor+1, len(m.Names), m.Profile.Name)))

	return b.String()
}

// Preview returns the filter string of the preset under the cursor.
func (m PresetListModel) Preview() string {
	if len(m.Names) == 0 {
		return ""
	}
	p, ok := m.Catalog.Get(m.Names[m.Cursor])
	if !ok {
		return ""
	}
	p.Text = m.Text
	return caption.Filter(p, caption.WithProfile(m.Profile))
}

// =============================================================================
// pick command
// =============================================================================

// pickCommand creates the interactive preset picker.
func (c *CLI) pickCommand() *cobra.Command {
	var (
		text       string
		profile    string
		presetFile string
		formats    string
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a preset interactively",
		Long: `Pick a preset from an interactive list with a live filter preview, then
print the compiled outputs for the chosen preset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prof, err := caption.ParseProfile(profile)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(ctx, presetFile)
			if err != nil {
				return err
			}

			m := NewPresetListModel(catalog, prof, text)
			p := tea.NewProgram(m,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := finalModel.(PresetListModel)
			if !ok || fm.Selected == "" {
				printDetail(cmd.OutOrStdout(), "No selection made")
				return nil
			}

			opts := compileOpts{preset: fm.Selected, presetFile: presetFile, profile: profile, formats: formats}
			var overrides []pipeline.Override
			if cmd.Flags().Changed("text") {
				overrides = append(overrides, func(p *caption.Params) { p.Text = text })
			}
			return runCompile(ctx, cmd.OutOrStdout(), &opts, overrides)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "caption text for the preview and the outputs")
	cmd.Flags().StringVar(&profile, "profile", pipeline.DefaultProfile, "generator profile: full, basic")
	cmd.Flags().StringVar(&presetFile, "presets", "", "load extra presets from a file")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "artifacts: filter, json, escaped, css")
	_ = cmd.RegisterFlagCompletionFunc("profile", completeProfiles)

	return cmd
}
