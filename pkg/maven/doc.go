// Package maven collects Maven coordinates from a build target graph.
//
// # Overview
//
// Targets declare their published coordinate through string tags:
//
//	tags = ["maven_coordinates=com.example:core:1.2.0"]
//
// A target may declare several coordinates (multi-artifact targets), or opt
// out of coordinate propagation entirely with an exemption tag
// ("maven:compile_only" or "maven:shaded"). Exempt targets act as opaque
// barriers: they contribute nothing, and nothing upstream of them is visible
// through them.
//
// # Propagation
//
// [Aggregate] walks the graph bottom-up, memoizing an [Info] per target:
//
//   - Own: the target's declared coordinates.
//   - FromExports: own plus re-exported coordinates of every direct export,
//     making exports transitive through arbitrarily long chains.
//   - FromDeps: own plus re-exported coordinates of every direct dependency.
//     What a dependency merely depends on without exporting stays invisible.
//
// The flattened union of FromDeps and FromExports across the requested
// top-level targets is the set of <dependency> entries the generated pom
// must carry.
//
// # Ordering
//
// [SortArtifacts] orders coordinates by a caller-supplied list of preferred
// group-id prefixes, breaking ties by comparing colon-delimited fields
// element-wise so that "dagger" sorts before "dagger-producers".
package maven
