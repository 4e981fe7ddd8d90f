package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/captionstyle/pkg/caption"
	errs "github.com/matzehuels/captionstyle/pkg/errors"
	"github.com/matzehuels/captionstyle/pkg/pipeline"
	"github.com/matzehuels/captionstyle/pkg/styleio"
)

// presetsCommand creates the presets command with list and show subcommands.
func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List and inspect caption presets",
		Long: `List and inspect caption presets.

The built-in presets are corporate, gaming, elegant, bold and minimal. A preset
file (--presets) adds or replaces presets for one invocation.`,
	}

	cmd.AddCommand(c.presetsListCommand())
	cmd.AddCommand(c.presetsShowCommand())
	return cmd
}

func (c *CLI) presetsListCommand() *cobra.Command {
	var presetFile string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(cmd.Context(), presetFile)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, presetTable(catalog))
			printNextStep(w, "Compile one", "captionstyle compile --preset "+catalog.Names()[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&presetFile, "presets", "", "load extra presets from a file")
	return cmd
}

func (c *CLI) presetsShowCommand() *cobra.Command {
	var (
		presetFile string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a preset as a style file",
		Long: `Print a preset as a style file. The output can be saved, edited and passed
back with compile --style.`,
		Example: `  captionstyle presets show elegant
  captionstyle presets show gaming --format yaml > gaming.yaml`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePresets,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := styleio.ParseFormat(format)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cmd.Context(), presetFile)
			if err != nil {
				return err
			}
			p, ok := catalog.Get(args[0])
			if !ok {
				return errs.New(errs.ErrCodePresetNotFound,
					"preset %q not found (available: %s)", args[0], strings.Join(catalog.Names(), ", "))
			}
			return styleio.WriteParams(cmd.OutOrStdout(), p, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(styleio.FormatTOML), "output format: toml, yaml, json")
	cmd.Flags().StringVar(&presetFile, "presets", "", "load extra presets from a file")
	return cmd
}

// loadCatalog returns the built-in presets, extended by presetFile if set.
func loadCatalog(ctx context.Context, presetFile string) (*caption.Catalog, error) {
	return newRunner(ctx).CatalogFor(ctx, pipeline.Options{PresetFile: presetFile})
}

// presetTable renders one row per preset in catalog order.
func presetTable(catalog *caption.Catalog) string {
	var rows [][]string
	for _, name := range catalog.Names() {
		p, _ := catalog.Get(name)
		rows = append(rows, []string{
			name,
			p.FontFamily,
			strconv.Itoa(p.FontSize),
			string(p.FontColor),
			string(p.Align),
			presetPlacement(p.Position),
			strings.Join(caption.ActiveFeatures(p, caption.ProfileFull), ", "),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Preset", "Font", "Size", "Color", "Align", "Position", "Features").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleHighlight
			case col == 6:
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func presetPlacement(pos caption.Position) string {
	if pos.IsCustom() {
		return fmt.Sprintf("custom %d,%d", pos.Custom.X, pos.Custom.Y)
	}
	return string(pos.Anchor.Resolve())
}
