package maven

import (
	"slices"
	"testing"
)

func TestSortArtifacts(t *testing.T) {
	tests := []struct {
		name     string
		coords   []string
		prefixes []string
		want     []string
	}{
		{
			name: "priority prefixes pin groups to the top",
			coords: []string{
				"com.other:x:1",
				"com.google.dagger:dagger-producers:1",
				"com.google.dagger:dagger:1",
			},
			prefixes: []string{"com.google.dagger", "com.google"},
			want: []string{
				"com.google.dagger:dagger:1",
				"com.google.dagger:dagger-producers:1",
				"com.other:x:1",
			},
		},
		{
			name: "field-wise tie-break beats raw string order",
			// Joined-string comparison would put dagger-producers first
			// because '-' < ':'.
			coords:   []string{"g:dagger-producers:1", "g:dagger:1"},
			prefixes: nil,
			want:     []string{"g:dagger:1", "g:dagger-producers:1"},
		},
		{
			name:     "earlier prefix wins",
			coords:   []string{"com.google.guava:guava:30", "com.google.dagger:dagger:2"},
			prefixes: []string{"com.google.dagger", "com.google"},
			want:     []string{"com.google.dagger:dagger:2", "com.google.guava:guava:30"},
		},
		{
			name:     "no prefixes is pure lexical field order",
			coords:   []string{"b:b:1", "a:z:9", "a:a:1"},
			prefixes: nil,
			want:     []string{"a:a:1", "a:z:9", "b:b:1"},
		},
		{
			name:     "versions compare as a separate field",
			coords:   []string{"g:a:2", "g:a:1:jar:linux", "g:a:1"},
			prefixes: nil,
			want:     []string{"g:a:1", "g:a:1:jar:linux", "g:a:2"},
		},
		{
			name: "empty input",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortArtifacts(set(tt.coords...), tt.prefixes)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SortArtifacts = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortArtifacts_Deterministic(t *testing.T) {
	coords := set(
		"com.a:x:1", "com.b:y:2", "org.c:z:3",
		"com.google:g:4", "io.d:w:5",
	)
	prefixes := []string{"com.google", "org"}

	first := SortArtifacts(coords, prefixes)
	for i := 0; i < 50; i++ {
		if got := SortArtifacts(coords, prefixes); !slices.Equal(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestGroupPriority(t *testing.T) {
	prefixes := []string{"com.google.dagger", "com.google"}

	tests := []struct {
		coord string
		want  int
	}{
		{"com.google.dagger:dagger:1", 0},
		{"com.google.guava:guava:30", 1},
		{"com.other:x:1", 2},
		{"nocolon", 2},
	}

	for _, tt := range tests {
		if got := groupPriority(tt.coord, prefixes); got != tt.want {
			t.Errorf("groupPriority(%q) = %d, want %d", tt.coord, got, tt.want)
		}
	}
}
