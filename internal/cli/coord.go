package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pixelpath/pixelgraph"
)

// errBadCoord indicates a malformed "row,col" flag value.
var errBadCoord = errors.New("coordinate must be written as row,col")

// ParseCoord parses "row,col" (spaces allowed, optional parentheses).
func ParseCoord(s string) (pixelgraph.Coord, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "(")
	t = strings.TrimSuffix(t, ")")
	parts := strings.Split(t, ",")
	if len(parts) != 2 {
		return pixelgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return pixelgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return pixelgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	return pixelgraph.Coord{Row: row, Col: col}, nil
}
