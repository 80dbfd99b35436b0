package maven

import "strings"

// Tag markers recognized on build targets.
const (
	// CoordinatesPrefix marks a tag that declares a published Maven
	// coordinate, e.g. "maven_coordinates=com.example:core:1.0".
	CoordinatesPrefix = "maven_coordinates="

	// TagCompileOnly exempts a target whose classes are compile-time only
	// and never shipped.
	TagCompileOnly = "maven:compile_only"

	// TagShaded exempts a target that is shaded into its consumers instead
	// of being declared as an external dependency.
	TagShaded = "maven:shaded"
)

// Extract reads a target's declared tags and returns its own coordinates and
// whether the target is exempt from coordinate propagation.
//
// Exemption is order-independent: the full tag list is scanned for exemption
// markers before any coordinate tag is considered, so an exempt target
// returns no coordinates even if a "maven_coordinates=" tag precedes the
// exemption marker.
func Extract(tags []string) (own []string, exempt bool) {
	for _, tag := range tags {
		if tag == TagCompileOnly || tag == TagShaded {
			return nil, true
		}
	}
	for _, tag := range tags {
		if coord, ok := strings.CutPrefix(tag, CoordinatesPrefix); ok {
			own = append(own, coord)
		}
	}
	return own, false
}
