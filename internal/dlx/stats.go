package dlx

import (
	"fmt"
	"time"

	"github.com/kpitt/dlxsudoku/internal/cover"
	"github.com/kpitt/dlxsudoku/internal/grid"
)

// Options configures the instrumented solve variants below.
type Options struct {
	EnableDebugging bool
	TimeLimit       time.Duration
}

// DefaultOptions returns sensible default options: no debugging, and a
// generous but finite time limit so a pathological input can't hang a
// long-running caller (e.g. the demo program) forever.
func DefaultOptions() *Options {
	return &Options{TimeLimit: 10 * time.Second}
}

// Stats reports how much work SolveWithStats did.
type Stats struct {
	NodesVisited   int
	BacktrackCount int
	TimeElapsed    time.Duration
	MatrixInfo     MatrixInfo
}

// MatrixInfo describes the size of the cover matrix built for a grid.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64 // percentage of non-zero matrix entries
}

// SolveWithStats behaves like Solve but also returns search
// statistics, and aborts (returning false) if opts.TimeLimit elapses
// before a solution is found.
func SolveWithStats(g *grid.Grid, opts *Options) (bool, *Stats, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	m := cover.Build(g)
	defer m.Destroy()

	stats := &Stats{MatrixInfo: matrixInfo(m)}

	start := time.Now()
	defer func() { stats.TimeElapsed = time.Since(start) }()

	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = start.Add(opts.TimeLimit)
	}

	s := &instrumentedSearch{grid: g, stats: stats, deadline: deadline, debug: opts.EnableDebugging}
	solved := s.search(m.Root)
	return solved, stats, nil
}

type instrumentedSearch struct {
	grid     *grid.Grid
	stats    *Stats
	deadline time.Time
	debug    bool
}

func (s *instrumentedSearch) search(root *cover.Header) bool {
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return false
	}
	s.stats.NodesVisited++

	col := chooseNextColumn(root)
	if col == root {
		return true
	}
	if s.debug {
		fmt.Printf("dlx: choosing column %d with %d options\n", col.ID, col.Count)
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
			if err := s.grid.Set(r.Row, r.Col, r.Value); err != nil {
				panic("dlx: internal invariant violated: " + err.Error())
			}
			break
		}
		s.stats.BacktrackCount++
	}

	cover.Uncover(col)
	return solved
}

func matrixInfo(m *cover.Matrix) MatrixInfo {
	info := MatrixInfo{}

	for n := m.Root.Right; n != &m.Root.Node; n = n.Right {
		info.Columns++
	}

	totalNodes := 0
	for n := m.Root.Right; n != &m.Root.Node; n = n.Right {
		h := n.Header
		for d := h.Down; d != &h.Node; d = d.Down {
			totalNodes++
		}
	}
	// Every row contributes exactly one node per constraint family.
	info.Rows = totalNodes / cover.NumConstraintFamilies
	info.TotalNodes = totalNodes

	if info.Columns > 0 && info.Rows > 0 {
		info.Density = float64(totalNodes) / float64(info.Columns*info.Rows) * 100.0
	}
	return info
}

// CountSolutions extends the same search to keep backtracking past the
// first solution, stopping once limit solutions have been counted (or
// the search space is exhausted). It leaves g unmodified. This answers
// §9's open question about detecting non-unique puzzles; Solve itself
// still stops at the first solution.
func CountSolutions(g *grid.Grid, limit int) (int, error) {
	m := cover.Build(g)
	defer m.Destroy()

	count := 0
	countSolutionsRecursive(m.Root, limit, &count)
	return count, nil
}

func countSolutionsRecursive(root *cover.Header, limit int, count *int) {
	if *count >= limit {
		return
	}

	col := chooseNextColumn(root)
	if col == root {
		*count++
		return
	}

	cover.Cover(col)

	for r := col.Down; r != &col.Node && *count < limit; r = r.Down {
		for j := r.Right; j != r; j = j.Right {
			cover.Cover(j.Header)
		}

		countSolutionsRecursive(root, limit, count)

		for j := r.Left; j != r; j = j.Left {
			cover.Uncover(j.Header)
		}
	}

	cover.Uncover(col)
}
