package maven

import (
	"slices"
	"strings"
)

// SortArtifacts orders a set of coordinate strings for pom output.
//
// Each coordinate is assigned a priority: the index of the first prefix in
// preferredGroupPrefixes that its group id (the text before the first colon)
// starts with, or len(preferredGroupPrefixes) when none matches. Lower
// priority sorts first, so first-party group ids can be pinned to the top of
// the dependency list.
//
// Ties are broken by comparing the colon-delimited fields element-wise
// rather than the raw string. The distinction matters: comparing joined
// strings would order "g:dagger-producers:1" before "g:dagger:1" because
// '-' sorts below ':', while field-wise comparison sees "dagger" versus
// "dagger-producers" directly.
//
// The output is fully deterministic for a given input set and prefix list.
func SortArtifacts(coords map[string]struct{}, preferredGroupPrefixes []string) []string {
	type keyed struct {
		coord    string
		priority int
		fields   []string
	}

	items := make([]keyed, 0, len(coords))
	for coord := range coords {
		items = append(items, keyed{
			coord:    coord,
			priority: groupPriority(coord, preferredGroupPrefixes),
			fields:   strings.Split(coord, ":"),
		})
	}

	slices.SortFunc(items, func(a, b keyed) int {
		if a.priority != b.priority {
			return a.priority - b.priority
		}
		return slices.Compare(a.fields, b.fields)
	})

	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.coord
	}
	return out
}

// groupPriority returns the index of the first prefix matching the
// coordinate's group id, or len(prefixes) when none matches.
func groupPriority(coord string, prefixes []string) int {
	group := coord
	if i := strings.IndexByte(coord, ':'); i >= 0 {
		group = coord[:i]
	}
	for i, p := range prefixes {
		if strings.HasPrefix(group, p) {
			return i
		}
	}
	return len(prefixes)
}
