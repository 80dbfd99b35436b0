// Package cli implements the pomforge command-line interface.
//
// This package provides commands for generating Maven pom.xml files from
// declarative workspace target files, inspecting the target graph, and
// serving generation over HTTP. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render a pom.xml for the configured top-level targets
//   - targets: List targets with their coordinates and exemption state
//   - graph: Export the target graph as DOT or SVG
//   - serve: Run the pom generation HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pomforge/pomforge/pkg/build"
	"github.com/pomforge/pomforge/pkg/buildinfo"
	"github.com/pomforge/pomforge/pkg/maven"
	"github.com/pomforge/pomforge/pkg/pom"
	"github.com/pomforge/pomforge/pkg/workspace"
)

// appName is the application name used for directories and display.
const appName = "pomforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

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
		Use:          appName,
		Short:        "Pomforge generates Maven pom.xml files from a build-target graph",
		Long:         `Pomforge collects Maven coordinates from a declarative build-target graph (including transitively exported dependencies) and renders them into a pom.xml through a template.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Make the logger reachable from every command's context.
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.targetsCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Workspace Loading
// =============================================================================

// loadWorkspace loads the target graph and config for a workspace directory.
// The config path defaults to <dir>/pomforge.toml when empty.
func loadWorkspace(dir, configPath string) (*build.Graph, *workspace.Config, error) {
	if configPath == "" {
		configPath = filepath.Join(dir, workspace.DefaultConfigFile)
	}
	cfg, err := workspace.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	g, err := workspace.Load(dir)
	if err != nil {
		return nil, nil, err
	}
	return g, cfg, nil
}

// =============================================================================
// Generation Glue
// =============================================================================

// generation is the result of one pom generation run.
type generation struct {
	Coordinates []string // sorted order as rendered
	POM         string
}

// generatePOM runs the full pipeline for the given top-level targets:
// aggregate coordinates, sort, format dependency blocks, and merge the
// template.
func generatePOM(g *build.Graph, cfg *workspace.Config, targets []string) (*generation, error) {
	coords, err := maven.Aggregate(g, targets)
	if err != nil {
		return nil, err
	}

	sorted := maven.SortArtifacts(coords, cfg.POM.PreferredGroupPrefixes)

	blocks, err := pom.FormatDependencyBlocks(sorted)
	if err != nil {
		return nil, err
	}

	merged, err := pom.MergeFile(cfg.Project.Template, cfg.POM.Substitutions, blocks)
	if err != nil {
		return nil, err
	}

	return &generation{Coordinates: sorted, POM: merged}, nil
}

// resolveTargets picks explicit args over the config default, erroring when
// neither names a target.
func resolveTargets(args []string, cfg *workspace.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(cfg.Project.Targets) > 0 {
		return cfg.Project.Targets, nil
	}
	return nil, fmt.Errorf("no targets given and project.targets is empty in %s", workspace.DefaultConfigFile)
}

// cacheDir returns the user cache directory using the XDG standard
// (~/.cache/pomforge/), used for the serve-mode file cache.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
