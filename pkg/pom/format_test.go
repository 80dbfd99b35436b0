package pom

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatDependencyBlock_ThreeFields(t *testing.T) {
	got, err := FormatDependencyBlock("g:a:1")
	if err != nil {
		t.Fatalf("FormatDependencyBlock: %v", err)
	}

	want := `<dependency>
  <groupId>g</groupId>
  <artifactId>a</artifactId>
  <version>1</version>
</dependency>`
	if got != want {
		t.Errorf("block = %q, want %q", got, want)
	}
	if strings.Contains(got, "<type>") || strings.Contains(got, "<classifier>") {
		t.Error("3-field block must not carry type or classifier")
	}
}

func TestFormatDependencyBlock_FiveFields(t *testing.T) {
	got, err := FormatDependencyBlock("g:a:1:jar:linux")
	if err != nil {
		t.Fatalf("FormatDependencyBlock: %v", err)
	}

	want := `<dependency>
  <groupId>g</groupId>
  <artifactId>a</artifactId>
  <version>1</version>
  <type>jar</type>
  <classifier>linux</classifier>
</dependency>`
	if got != want {
		t.Errorf("block = %q, want %q", got, want)
	}
}

func TestFormatDependencyBlock_Malformed(t *testing.T) {
	for _, coord := range []string{"", "g", "g:a", "g:a:1:jar", "g:a:1:jar:linux:extra"} {
		t.Run(coord, func(t *testing.T) {
			_, err := FormatDependencyBlock(coord)
			if !errors.Is(err, ErrMalformedCoordinate) {
				t.Errorf("FormatDependencyBlock(%q) = %v, want ErrMalformedCoordinate", coord, err)
			}
		})
	}
}

func TestFormatDependencyBlocks(t *testing.T) {
	got, err := FormatDependencyBlocks([]string{"g:a:1", "g:b:2"})
	if err != nil {
		t.Fatalf("FormatDependencyBlocks: %v", err)
	}

	// Blocks are joined by a single newline in input order, nothing else.
	if strings.Count(got, "<dependency>") != 2 {
		t.Errorf("expected 2 dependency blocks, got:\n%s", got)
	}
	if strings.Contains(got, "\n\n") {
		t.Error("blocks must not be separated by blank lines")
	}
	if a, b := strings.Index(got, "<artifactId>a<"), strings.Index(got, "<artifactId>b<"); a > b {
		t.Error("blocks must preserve input order")
	}
}

func TestFormatDependencyBlocks_AbortsOnMalformed(t *testing.T) {
	_, err := FormatDependencyBlocks([]string{"g:a:1", "g:broken"})
	if !errors.Is(err, ErrMalformedCoordinate) {
		t.Errorf("FormatDependencyBlocks = %v, want ErrMalformedCoordinate", err)
	}
}
