// Package pom renders sorted Maven coordinates into pom.xml text.
//
// The package has two halves: [FormatDependencyBlock] turns a single
// coordinate string into an XML <dependency> fragment (picking the 3-field
// or 5-field template by field count), and [Merge] splices the joined
// fragments plus caller-supplied substitutions into a pom template.
//
// Formatting is strict: a coordinate with a field count other than 3 or 5
// aborts generation with [ErrMalformedCoordinate], and a template marker
// left unresolved after merging is an error.
package pom
