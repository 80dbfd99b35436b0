package workspace

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pomforge/pomforge/pkg/build"
)

// hclWorkspaceFile is the top-level structure of a target file for decoding.
type hclWorkspaceFile struct {
	Targets []*hclTarget `hcl:"target,block"`
}

// hclTarget mirrors a single target block:
//
//	target "//lib/core" {
//	  tags    = ["maven_coordinates=com.example:core:1.2.0"]
//	  deps    = ["//lib/util"]
//	  exports = ["//lib/api"]
//	}
type hclTarget struct {
	Label   string   `hcl:"label,label"`
	Tags    []string `hcl:"tags,optional"`
	Deps    []string `hcl:"deps,optional"`
	Exports []string `hcl:"exports,optional"`
}

// Load discovers all .hcl target files under dir (recursively) and
// consolidates them into a single validated build graph. Targets may
// reference targets declared in other files; edges are resolved after every
// file has been read.
//
// Returns an error on parse failures, duplicate labels, edges to undeclared
// targets, or cycles.
func Load(dir string) (*build.Graph, error) {
	files, err := findTargetFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("find target files in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl target files found in %s", dir)
	}
	return LoadFiles(files...)
}

// LoadFiles parses the given target files into a validated build graph.
func LoadFiles(paths ...string) (*build.Graph, error) {
	parser := hclparse.NewParser()

	var targets []*hclTarget
	for _, path := range paths {
		parsed, err := parseFile(parser, path)
		if err != nil {
			return nil, err
		}
		targets = append(targets, parsed...)
	}

	g := build.New()
	for _, t := range targets {
		if err := g.AddTarget(build.Target{Label: t.Label, Tags: t.Tags}); err != nil {
			return nil, fmt.Errorf("target %q: %w", t.Label, err)
		}
	}
	for _, t := range targets {
		for _, dep := range t.Deps {
			if err := g.AddEdge(t.Label, dep, build.EdgeDep); err != nil {
				return nil, fmt.Errorf("target %q deps %q: %w", t.Label, dep, err)
			}
		}
		for _, export := range t.Exports {
			if err := g.AddEdge(t.Label, export, build.EdgeExport); err != nil {
				return nil, fmt.Errorf("target %q exports %q: %w", t.Label, export, err)
			}
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// parseFile reads one HCL file and returns the target blocks found in it.
func parseFile(parser *hclparse.Parser, path string) ([]*hclTarget, error) {
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}

	var parsed hclWorkspaceFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", path, diags)
	}
	return parsed.Targets, nil
}

// findTargetFiles walks dir and returns all .hcl files in sorted order so
// that load results are deterministic regardless of filesystem ordering.
func findTargetFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}
