// Package workspace loads declarative build-target files and generation
// config.
//
// Targets are declared in HCL files spread across a workspace directory:
//
//	target "//lib/core" {
//	  tags    = ["maven_coordinates=com.example:core:1.2.0"]
//	  deps    = ["//lib/util"]
//	  exports = ["//lib/api"]
//	}
//
// [Load] consolidates every .hcl file under a directory into a single
// [build.Graph], resolving cross-file references and rejecting duplicate
// labels, dangling edges, and cycles.
//
// Generation settings (pom template path, substitutions, preferred group
// prefixes, default top-level targets) live in a pomforge.toml file loaded
// by [LoadConfig].
package workspace
