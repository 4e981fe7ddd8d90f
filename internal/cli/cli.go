// Package cli implements the captionstyle command-line interface.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/captionstyle/pkg/buildinfo"
	"github.com/matzehuels/captionstyle/pkg/caption"
	"github.com/matzehuels/captionstyle/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "captionstyle"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "captionstyle compiles caption styles for video text overlays",
		Long: `captionstyle turns caption styling parameters (font, color, outline, shadow,
box, rotation, spacing, fades and position) into a drawtext filter string, a
JSON configuration and an escaped JSON string for automation tools.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.compileCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.anchorsCommand())
	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner over the built-in presets.
func newRunner(ctx context.Context) *pipeline.Runner {
	return pipeline.NewRunner(nil, loggerFromContext(ctx))
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// completePresets offers the built-in preset names for --preset.
func completePresets(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return caption.DefaultCatalog().Names(), cobra.ShellCompDirectiveNoFileComp
}

// completeProfiles offers the profile names for --profile.
func completeProfiles(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(caption.Profiles))
	for i, p := range caption.Profiles {
		names[i] = p.Name
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeAnchors offers the nine anchor names for --position.
func completeAnchors(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	anchors := caption.Anchors()
	names := make([]string, len(anchors))
	for i, a := range anchors {
		names[i] = string(a)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
