// Package pkg provides the core libraries for pomforge pom generation.
//
// # Overview
//
// Pomforge generates Maven pom.xml files from a declarative build-target
// graph. The pkg directory is organized around the generation data flow:
//
//	workspace .hcl files + pomforge.toml
//	         ↓
//	    [workspace] package (load targets + config)
//	         ↓
//	    [build] package (target graph, dep/export edges)
//	         ↓
//	    [maven] package (coordinate extraction, propagation, sorting)
//	         ↓
//	    [pom] package (dependency blocks + template merge)
//	         ↓
//	    pom.xml
//
// # Quick Start
//
// Generate the dependency fragment for a target:
//
//	g, _ := workspace.Load(".")
//	coords, _ := maven.Aggregate(g, []string{"//lib/core"})
//	sorted := maven.SortArtifacts(coords, []string{"com.example"})
//	deps, _ := pom.FormatDependencyBlocks(sorted)
//
// # Supporting Packages
//
// [cache] - pluggable byte caching (file, Redis, null) for serve mode.
//
// [store] - generation-record history (memory, MongoDB) for serve mode.
//
// [buildinfo] - build-time version information injected via ldflags.
//
// [build]: https://pkg.go.dev/github.com/pomforge/pomforge/pkg/build
// [maven]: https://pkg.go.dev/github.com/pomforge/pomforge/pkg/maven
// [pom]: https://pkg.go.dev/github.com/pomforge/pomforge/pkg/pom
// [workspace]: https://pkg.go.dev/github.com/pomforge/pomforge/pkg/workspace
// [cache]: https://pkg.go.dev/github.com/pomforge/pomforge/pkg/cache
// [store]: https://pkg.go.dev/github.com/pomforge/pomforge/pkg/store
// [buildinfo]: https://pkg.go.dev/github.com/pomforge/pomforge/pkg/buildinfo
package pkg
