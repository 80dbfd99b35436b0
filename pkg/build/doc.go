// Package build models the workspace target graph consumed by pom
// generation.
//
// A [Graph] holds [Target] nodes connected by two kinds of directed edges:
// implementation dependencies ([EdgeDep]) and API exports ([EdgeExport]).
// The distinction matters for coordinate propagation: exported coordinates
// remain visible through arbitrarily long export chains, while plain
// dependencies contribute only one level up.
//
// Graphs are built by the workspace package from declarative target files
// and validated to be acyclic before any traversal runs.
package build
