package pom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedCoordinate is returned by [FormatDependencyBlock] when a
// coordinate string does not have exactly 3 or 5 colon-separated fields.
//
// A malformed coordinate means a target declared a bad tag; generation must
// abort rather than emit a broken pom. Use errors.Is to check for it:
//
//	if errors.Is(err, pom.ErrMalformedCoordinate) { ... }
var ErrMalformedCoordinate = errors.New("malformed maven coordinate")

const depBlock = `<dependency>
  <groupId>%s</groupId>
  <artifactId>%s</artifactId>
  <version>%s</version>
</dependency>`

const classifierDepBlock = `<dependency>
  <groupId>%s</groupId>
  <artifactId>%s</artifactId>
  <version>%s</version>
  <type>%s</type>
  <classifier>%s</classifier>
</dependency>`

// FormatDependencyBlock renders a single coordinate as an XML <dependency>
// fragment. A 3-field coordinate (groupId:artifactId:version) uses the plain
// block; a 5-field coordinate (groupId:artifactId:version:type:classifier)
// additionally carries type and classifier. Any other field count returns
// ErrMalformedCoordinate.
func FormatDependencyBlock(coord string) (string, error) {
	fields := strings.Split(coord, ":")
	switch len(fields) {
	case 3:
		return fmt.Sprintf(depBlock, fields[0], fields[1], fields[2]), nil
	case 5:
		return fmt.Sprintf(classifierDepBlock, fields[0], fields[1], fields[2], fields[3], fields[4]), nil
	default:
		return "", fmt.Errorf("%w: %q has %d fields, want 3 or 5", ErrMalformedCoordinate, coord, len(fields))
	}
}

// FormatDependencyBlocks renders the coordinates in the given (already
// sorted) order and joins the blocks with newlines, one block per line group
// and no additional separators. The first malformed coordinate aborts the
// whole run.
func FormatDependencyBlocks(coords []string) (string, error) {
	blocks := make([]string, len(coords))
	for i, coord := range coords {
		block, err := FormatDependencyBlock(coord)
		if err != nil {
			return "", err
		}
		blocks[i] = block
	}
	return strings.Join(blocks, "\n"), nil
}
