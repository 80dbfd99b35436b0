package maven

import (
	"fmt"

	"github.com/pomforge/pomforge/pkg/build"
)

// Info holds the coordinate sets computed for a single target. The three
// sets are disjoint views of the same propagation pass: what the target
// declares itself, what its direct dependencies contribute, and what its
// exports make visible transitively.
//
// For an exempt target all three sets are empty regardless of its tags or
// edges.
type Info struct {
	Own         map[string]struct{}
	FromDeps    map[string]struct{}
	FromExports map[string]struct{}
}

// Aggregate computes the flattened set of coordinates that must appear as
// <dependency> entries in a pom generated for the given top-level targets:
// the union of FromDeps and FromExports across all of them.
//
// The graph must be acyclic; callers are expected to have run
// [build.Graph.Validate] after loading. Returns [build.ErrUnknownNode] if a
// label does not exist in the graph.
func Aggregate(g *build.Graph, targets []string) (map[string]struct{}, error) {
	w := &walker{graph: g, memo: make(map[string]*Info)}

	out := make(map[string]struct{})
	for _, label := range targets {
		info, err := w.info(label)
		if err != nil {
			return nil, err
		}
		for c := range info.FromDeps {
			out[c] = struct{}{}
		}
		for c := range info.FromExports {
			out[c] = struct{}{}
		}
	}
	return out, nil
}

// Infos computes and returns the per-target Info for every requested label.
// It is used by callers that need the split view (e.g. target listings)
// rather than the flattened union.
func Infos(g *build.Graph, targets []string) (map[string]*Info, error) {
	w := &walker{graph: g, memo: make(map[string]*Info)}
	out := make(map[string]*Info, len(targets))
	for _, label := range targets {
		info, err := w.info(label)
		if err != nil {
			return nil, err
		}
		out[label] = info
	}
	return out, nil
}

// walker performs the memoized depth-first traversal. Each target is
// computed exactly once even when reached through multiple paths; the
// in-progress marker catches cycles that slipped past graph validation.
type walker struct {
	graph      *build.Graph
	memo       map[string]*Info
	inProgress map[string]bool
}

func (w *walker) info(label string) (*Info, error) {
	if info, ok := w.memo[label]; ok {
		return info, nil
	}
	if w.inProgress[label] {
		return nil, fmt.Errorf("%w: %s", build.ErrGraphHasCycle, label)
	}

	target, ok := w.graph.Target(label)
	if !ok {
		return nil, fmt.Errorf("%w: %s", build.ErrUnknownNode, label)
	}

	if w.inProgress == nil {
		w.inProgress = make(map[string]bool)
	}
	w.inProgress[label] = true
	defer delete(w.inProgress, label)

	own, exempt := Extract(target.Tags)
	info := &Info{
		Own:         make(map[string]struct{}),
		FromDeps:    make(map[string]struct{}),
		FromExports: make(map[string]struct{}),
	}

	// Exempt targets are opaque: their own tags and upstream edges are
	// never consulted.
	if exempt {
		w.memo[label] = info
		return info, nil
	}

	for _, c := range own {
		info.Own[c] = struct{}{}
	}

	for _, export := range w.graph.Exports(label) {
		ei, err := w.info(export)
		if err != nil {
			return nil, err
		}
		for c := range ei.Own {
			info.FromExports[c] = struct{}{}
		}
		for c := range ei.FromExports {
			info.FromExports[c] = struct{}{}
		}
	}

	for _, dep := range w.graph.Deps(label) {
		di, err := w.info(dep)
		if err != nil {
			return nil, err
		}
		for c := range di.Own {
			info.FromDeps[c] = struct{}{}
		}
		for c := range di.FromExports {
			info.FromDeps[c] = struct{}{}
		}
	}

	w.memo[label] = info
	return info, nil
}
