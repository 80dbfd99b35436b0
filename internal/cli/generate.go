package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// generateFlags holds the command-line flags for the generate command.
type generateFlags struct {
	workspace string // workspace directory containing .hcl target files
	config    string // config file path (default: <workspace>/pomforge.toml)
	output    string // output override ("-" writes to stdout)
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	flags := generateFlags{workspace: "."}

	cmd := &cobra.Command{
		Use:   "generate [target...]",
		Short: "Generate a pom.xml for the given top-level targets",
		Long: `Generate a pom.xml for the given top-level targets.

Targets default to project.targets from pomforge.toml. The generated pom
contains one <dependency> entry for every coordinate propagated from the
targets' dependency and export edges, ordered by the configured preferred
group prefixes.

Examples:
  pomforge generate                          # targets from pomforge.toml
  pomforge generate //lib/core               # explicit target
  pomforge generate //lib/core -o -          # write to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.workspace, "workspace", "w", flags.workspace, "workspace directory containing target files")
	cmd.Flags().StringVar(&flags.config, "config", "", "config file (default: <workspace>/pomforge.toml)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file, or - for stdout (default: project.output)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, args []string, flags generateFlags) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, cfg, err := loadWorkspace(flags.workspace, flags.config)
	if err != nil {
		return err
	}
	logger.Debug("Workspace loaded", "targets", g.TargetCount(), "edges", g.EdgeCount())

	targets, err := resolveTargets(args, cfg)
	if err != nil {
		return err
	}

	gen, err := generatePOM(g, cfg, targets)
	if err != nil {
		return err
	}

	output := flags.output
	if output == "" {
		output = cfg.Project.Output
	}
	if output == "-" {
		fmt.Print(gen.POM)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(output, []byte(gen.POM), 0644); err != nil {
		return fmt.Errorf("write pom: %w", err)
	}

	prog.done(fmt.Sprintf("Generated %s", filepath.Base(output)))
	printSuccess("Wrote pom for %s", StyleHighlight.Render(fmt.Sprintf("%v", targets)))
	printFile(output)
	printStats(g.TargetCount(), g.EdgeCount(), len(gen.Coordinates))
	return nil
}
