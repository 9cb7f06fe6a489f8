// Package cli is the boundary between the Sudoku core and a terminal:
// it reads a flat grid representation from an input stream and prints
// a grid, colorized the way the original puzzle printer did, to an
// output stream. It is the only layer permitted to terminate the
// process on error.
package cli

import (
	"bufio"
	"io"
	"strings"

	"github.com/kpitt/dlxsudoku/internal/grid"
)

// ReadGrid reads lines from r, concatenating every non-newline
// character into a single flat representation, then constructs a Grid
// of the given region dimensions from it. Blank lines are skipped so a
// puzzle can be entered or piped in with visual row breaks.
func ReadGrid(r io.Reader, regionRows, regionCols int) (*grid.Grid, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		sb.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return grid.Construct(sb.String(), regionRows, regionCols)
}
