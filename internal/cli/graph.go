package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/pomforge/pomforge/pkg/build"
	"github.com/pomforge/pomforge/pkg/maven"
)

// graphCommand creates the graph command for exporting the target graph.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		workspaceDir string
		configPath   string
		format       string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the target graph as DOT or SVG",
		Long: `Export the target graph as DOT or SVG.

Dependency edges are drawn solid, export edges dashed. Exempt targets are
greyed out since they contribute no coordinates.

Examples:
  pomforge graph                      # DOT to stdout
  pomforge graph -f svg -o deps.svg   # rendered with Graphviz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), workspaceDir, configPath, format, output)
		},
	}

	cmd.Flags().StringVarP(&workspaceDir, "workspace", "w", ".", "workspace directory containing target files")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: <workspace>/pomforge.toml)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, workspaceDir, configPath, format, output string) error {
	g, _, err := loadWorkspace(workspaceDir, configPath)
	if err != nil {
		return err
	}

	dot := toDOT(g)

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = renderSVG(ctx, dot)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (want dot or svg)", format)
	}

	if output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}
	printSuccess("Exported target graph")
	printFile(output)
	return nil
}

// toDOT converts the target graph to Graphviz DOT format. Node labels carry
// the declared coordinates so the rendered graph doubles as a propagation
// map.
func toDOT(g *build.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph targets {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, label := range g.Labels() {
		target, _ := g.Target(label)
		own, exempt := maven.Extract(target.Tags)

		attrs := []string{fmt.Sprintf("label=%q", dotLabel(label, own, exempt))}
		if exempt {
			attrs = append(attrs, "fillcolor=lightgrey", "fontcolor=grey25")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", label, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, label := range g.Labels() {
		for _, dep := range g.Deps(label) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", label, dep)
		}
		for _, export := range g.Exports(label) {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed, label=\"exports\"];\n", label, export)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(label string, own []string, exempt bool) string {
	if exempt {
		return label + "\n(exempt)"
	}
	if len(own) == 0 {
		return label
	}
	return label + "\n" + strings.Join(own, "\n")
}

// renderSVG renders a DOT graph to SVG using Graphviz.
func renderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
