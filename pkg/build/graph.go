package build

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidLabel is returned by [Graph.AddTarget] when the target label
	// is empty. All targets must have non-empty labels.
	ErrInvalidLabel = errors.New("target label must not be empty")

	// ErrDuplicateTarget is returned by [Graph.AddTarget] when a target with
	// the same label already exists in the graph. Labels must be unique.
	ErrDuplicateTarget = errors.New("duplicate target label")

	// ErrUnknownNode is returned by [Graph.AddEdge] when either endpoint does
	// not exist, and by consumers that request a target the graph never saw.
	// During aggregation this indicates a configuration error, not a
	// recoverable runtime condition.
	ErrUnknownNode = errors.New("unknown target")

	// ErrGraphHasCycle is returned by [Graph.Validate] when a cycle is
	// detected. Build graphs are DAGs by construction in a well-formed
	// workspace; a cycle means the workspace definition is broken.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// EdgeKind distinguishes the two relationships a target can declare.
type EdgeKind int

const (
	// EdgeDep is an implementation dependency. Coordinates exported by the
	// dependency are visible to the dependent, but the edge itself is not
	// re-exported further up.
	EdgeDep EdgeKind = iota
	// EdgeExport marks the dependency as part of the target's public API.
	// Exported coordinates propagate transitively through export chains.
	EdgeExport
)

// String returns the workspace keyword for the edge kind.
func (k EdgeKind) String() string {
	if k == EdgeExport {
		return "exports"
	}
	return "deps"
}

// Target is a node in the build graph. Tags carry the Maven coordinate and
// exemption markers consumed by the maven package; the graph itself treats
// them as opaque strings.
type Target struct {
	Label string   // Unique identifier (e.g., "//lib/core")
	Tags  []string // Declared string tags, order preserved
}

// Graph is a directed acyclic graph of build targets connected by dependency
// and export edges. The zero value is not usable - use New.
//
// Graph is not safe for concurrent mutation. Once built and validated it is
// read-only and may be shared across goroutines.
type Graph struct {
	targets map[string]*Target
	deps    map[string][]string // label -> direct dependency labels
	exports map[string][]string // label -> direct export labels
}

// New creates an empty build graph.
func New() *Graph {
	return &Graph{
		targets: make(map[string]*Target),
		deps:    make(map[string][]string),
		exports: make(map[string][]string),
	}
}

// AddTarget adds a target to the graph.
// Returns ErrInvalidLabel if the label is empty, or ErrDuplicateTarget if a
// target with the same label already exists.
func (g *Graph) AddTarget(t Target) error {
	if t.Label == "" {
		return ErrInvalidLabel
	}
	if _, exists := g.targets[t.Label]; exists {
		return ErrDuplicateTarget
	}
	g.targets[t.Label] = &t
	return nil
}

// AddEdge adds a directed edge of the given kind between two existing
// targets. Returns ErrUnknownNode if either endpoint is missing.
func (g *Graph) AddEdge(from, to string, kind EdgeKind) error {
	if _, ok := g.targets[from]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.targets[to]; !ok {
		return ErrUnknownNode
	}
	if kind == EdgeExport {
		g.exports[from] = append(g.exports[from], to)
	} else {
		g.deps[from] = append(g.deps[from], to)
	}
	return nil
}

// Target returns the target with the given label and true, or nil and false
// if not found.
func (g *Graph) Target(label string) (*Target, bool) {
	t, ok := g.targets[label]
	return t, ok
}

// Deps returns the labels of the target's direct dependency edges.
// The returned slice is a read-only view; do not modify it.
func (g *Graph) Deps(label string) []string { return g.deps[label] }

// Exports returns the labels of the target's direct export edges.
// The returned slice is a read-only view; do not modify it.
func (g *Graph) Exports(label string) []string { return g.exports[label] }

// Labels returns all target labels in sorted order for deterministic
// iteration.
func (g *Graph) Labels() []string {
	return slices.Sorted(maps.Keys(g.targets))
}

// TargetCount returns the number of targets in the graph.
func (g *Graph) TargetCount() int { return len(g.targets) }

// EdgeCount returns the total number of edges (deps plus exports).
func (g *Graph) EdgeCount() int {
	n := 0
	for _, ds := range g.deps {
		n += len(ds)
	}
	for _, es := range g.exports {
		n += len(es)
	}
	return n
}

// Validate checks that the graph is acyclic, considering both dependency and
// export edges. Returns ErrGraphHasCycle if a cycle is detected.
//
// Cycle detection runs in O(N+E) time using depth-first search with
// white/gray/black coloring.
func (g *Graph) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.targets))
	var hasCycle bool

	var dfs func(label string)
	dfs = func(label string) {
		color[label] = gray
		for _, next := range g.successors(label) {
			switch color[next] {
			case white:
				dfs(next)
			case gray:
				hasCycle = true
				return
			}
			if hasCycle {
				return
			}
		}
		color[label] = black
	}

	for label := range g.targets {
		if color[label] == white {
			dfs(label)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// successors returns the union of dep and export targets reachable in one
// step from the given label.
func (g *Graph) successors(label string) []string {
	ds, es := g.deps[label], g.exports[label]
	if len(es) == 0 {
		return ds
	}
	if len(ds) == 0 {
		return es
	}
	out := make([]string, 0, len(ds)+len(es))
	out = append(out, ds...)
	out = append(out, es...)
	return out
}
