// Package dlx implements the recursive Dancing Links search over the
// exact-cover matrix built by internal/cover, committing the solution
// back into an internal/grid.Grid.
package dlx

import (
	"github.com/kpitt/dlxsudoku/internal/cover"
	"github.com/kpitt/dlxsudoku/internal/grid"
)

// Solve builds a cover matrix from g, searches it for a solution, and
// writes the solution back into g on success. It returns true if a
// solution was found; g is left unmodified if it returns false. The
// returned error is always nil: building the matrix cannot fail, and an
// inconsistent grid simply yields false.
func Solve(g *grid.Grid) (bool, error) {
	m := cover.Build(g)
	defer m.Destroy()

	s := &solveState{grid: g}
	return s.search(m.Root), nil
}

// solveState carries the grid being written back into as the
// recursive search unwinds.
type solveState struct {
	grid *grid.Grid
}

// search implements the recursive Dancing Links search described in
// §4.3:
//  1. Choose the column with fewest live rows. If it's the root, every
//     constraint is satisfied.
//  2. Cover the chosen column.
//  3. For each candidate row in the column, cover every other column
//     the row participates in, recurse, then uncover those columns in
//     reverse order. On success, commit the row's (cell, value) into
//     the grid and stop trying further rows.
//  4. Uncover the chosen column and report whether a solution was
//     found.
func (s *solveState) search(root *cover.Header) bool {
	col := chooseNextColumn(root)
	if col == root {
		return true
	}

	cover.Cover(col)

	solved := false
	for r := col.Down; r != &col.Node; r = r.Down {
		for j := r.Right; j != r; j = j.Right {
			cover.Cover(j.Header)
		}

		solved = s.search(root)

		for j := r.Left; j != r; j = j.Left {
			cover.Uncover(j.Header)
		}

		if solved {
			// Write-back happens during unwind, so cells are filled in
			// reverse order of the column choices made during descent.
			// That's observable but doesn't matter: the final grid is
			// uniquely determined by the (assumed) unique solution.
			if err := s.grid.Set(r.Row, r.Col, r.Value); err != nil {
				// The cover matrix only ever produces candidates within
				// the grid's own domain; a rejection here means the
				// matrix and the grid have gone out of sync.
				panic("dlx: internal invariant violated: " + err.Error())
			}
			break
		}
	}

	cover.Uncover(col)
	return solved
}

// chooseNextColumn scans the header ring from root.Right, tracking the
// header with the fewest live rows. Ties go to the first header
// encountered, i.e. the lowest id among tied headers by construction
// order. Returns root if the ring is empty.
func chooseNextColumn(root *cover.Header) *cover.Header {
	best := root
	bestCount := -1

	for n := root.Right; n != &root.Node; n = n.Right {
		h := n.Header
		if bestCount == -1 || h.Count < bestCount {
			best = h
			bestCount = h.Count
		}
	}

	return best
}
