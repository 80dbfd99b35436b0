package pom

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DependenciesKey is the substitution marker the template must carry where
// the generated <dependency> fragments are inserted.
const DependenciesKey = "dependencies"

// markerRe matches {key} substitution markers left in a merged template.
var markerRe = regexp.MustCompile(`\{[A-Za-z0-9_.]+\}`)

// Merge substitutes {key} markers in the template text. The substitution map
// is applied verbatim; the dependencies fragment is inserted at
// {dependencies}. An unresolved marker after substitution is an error - a
// pom with a literal "{version}" in it is worse than no pom.
func Merge(template string, substitutions map[string]string, dependencies string) (string, error) {
	pairs := make([]string, 0, 2*(len(substitutions)+1))
	pairs = append(pairs, "{"+DependenciesKey+"}", dependencies)
	for k, v := range substitutions {
		pairs = append(pairs, "{"+k+"}", v)
	}

	merged := strings.NewReplacer(pairs...).Replace(template)

	if leftover := markerRe.FindAllString(merged, -1); len(leftover) > 0 {
		return "", fmt.Errorf("unresolved template markers: %s", strings.Join(dedupe(leftover), ", "))
	}
	return merged, nil
}

// MergeFile reads the template at path, merges it, and returns the result.
func MergeFile(path string, substitutions map[string]string, dependencies string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return Merge(string(data), substitutions, dependencies)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
