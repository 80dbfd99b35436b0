package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pomforge/pomforge/pkg/build"
	"github.com/pomforge/pomforge/pkg/maven"
	"github.com/pomforge/pomforge/pkg/workspace"
)

// targetsCommand creates the targets command for inspecting the workspace.
func (c *CLI) targetsCommand() *cobra.Command {
	var (
		workspaceDir string
		configPath   string
		interactive  bool
	)

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List build targets with their Maven coordinates",
		Long: `List build targets with their Maven coordinates.

Each target is shown with its declared coordinates and exemption state.
With --interactive, a picker opens and the selection's aggregated
dependency list is printed.

Examples:
  pomforge targets
  pomforge targets -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTargets(cmd.Context(), workspaceDir, configPath, interactive)
		},
	}

	cmd.Flags().StringVarP(&workspaceDir, "workspace", "w", ".", "workspace directory containing target files")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: <workspace>/pomforge.toml)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a target and show its aggregated dependencies")

	return cmd
}

func (c *CLI) runTargets(ctx context.Context, workspaceDir, configPath string, interactive bool) error {
	g, cfg, err := loadWorkspace(workspaceDir, configPath)
	if err != nil {
		return err
	}

	if interactive {
		return c.pickTarget(g, cfg)
	}

	for _, label := range g.Labels() {
		target, _ := g.Target(label)
		own, exempt := maven.Extract(target.Tags)

		switch {
		case exempt:
			fmt.Println(StyleValue.Render(label) + " " + styleExempt.Render("(exempt)"))
		case len(own) > 0:
			fmt.Println(StyleValue.Render(label) + " " + StyleHighlight.Render(strings.Join(own, ", ")))
		default:
			fmt.Println(StyleValue.Render(label) + " " + StyleDim.Render("(no coordinates)"))
		}
	}
	printNewline()
	printStats(g.TargetCount(), g.EdgeCount(), 0)
	return nil
}

// pickTarget opens the interactive picker and prints the aggregated
// dependency list of the selection.
func (c *CLI) pickTarget(g *build.Graph, cfg *workspace.Config) error {
	model := newTargetListModel(g.Labels())
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("target picker: %w", err)
	}

	m, ok := final.(targetListModel)
	if !ok || m.Selected == "" {
		printWarning("No target selected")
		return nil
	}

	coords, err := maven.Aggregate(g, []string{m.Selected})
	if err != nil {
		return err
	}
	sorted := maven.SortArtifacts(coords, cfg.POM.PreferredGroupPrefixes)

	printSuccess("%s propagates %d dependencies", StyleHighlight.Render(m.Selected), len(sorted))
	for _, coord := range sorted {
		printDetail("%s", coord)
	}
	return nil
}
