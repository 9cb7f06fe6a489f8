package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kpitt/dlxsudoku/internal/cli"
	"github.com/kpitt/dlxsudoku/internal/dlx"
	"github.com/kpitt/dlxsudoku/internal/grid"
)

func main() {
	fmt.Println("Dancing Links Algorithm Demonstration")
	fmt.Println("=====================================")

	testCases := []struct {
		name       string
		repr       string
		regionRows int
		regionCols int
	}{
		{
			name:       "Classic 9x9",
			repr:       "42xx6xxxx5xx084xxxx87xxxx5x7xxx5xxx23xx7x2xx06xxx1xxx5x5xxxx17xxxx308xx4xxxx7xx68",
			regionRows: 3,
			regionCols: 3,
		},
		{
			name:       "Empty 9x9",
			repr:       repeat('x', 81),
			regionRows: 3,
			regionCols: 3,
		},
		{
			name:       "Non-square 6x6 regions",
			repr:       "x1234534x0121234x04x012323450x501x34",
			regionRows: 2,
			regionCols: 3,
		},
	}

	for i, tc := range testCases {
		fmt.Printf("\n%s %d: %s\n", color.HiBlueString("Test Case"), i+1, color.HiYellowString(tc.name))

		g, err := grid.Construct(tc.repr, tc.regionRows, tc.regionCols)
		if err != nil {
			fmt.Println(color.HiRedString("invalid puzzle: %v", err))
			continue
		}
		// Snapshot the givens now, so solved cells still render in the
		// "solved" color after the solver fills them in.
		n := g.Size()
		givenCells := make([][]bool, n)
		for r := 0; r < n; r++ {
			givenCells[r] = make([]bool, n)
			for c := 0; c < n; c++ {
				givenCells[r][c], _ = g.IsSet(r, c)
			}
		}
		given := func(r, c int) bool { return givenCells[r][c] }

		fmt.Println(color.HiBlueString("Original Puzzle:"))
		cli.Print(g, given)

		fmt.Println(color.HiGreenString("\nSolving with Dancing Links..."))
		solved, stats, err := dlx.SolveWithStats(g, nil)
		if err != nil {
			fmt.Println(color.HiRedString("solve error: %v", err))
			continue
		}

		if solved {
			fmt.Printf("%s (%v, %d nodes visited, %d backtracks)\n",
				color.HiGreenString("✓ Solved successfully!"),
				stats.TimeElapsed, stats.NodesVisited, stats.BacktrackCount)
			fmt.Println(color.HiBlueString("Solution:"))
			cli.Print(g, given)
		} else {
			fmt.Println(color.HiRedString("✗ No solution exists"))
		}

		fmt.Printf("%s columns=%d rows=%d nodes=%d density=%.2f%%\n",
			color.HiBlackString("Matrix:"),
			stats.MatrixInfo.Columns, stats.MatrixInfo.Rows,
			stats.MatrixInfo.TotalNodes, stats.MatrixInfo.Density)
		fmt.Println(color.HiBlackString("─────────────────────────────────────"))
	}

	demonstrateUniquenessCheck()
	demonstrateAlgorithmDetails()
}

// demonstrateUniquenessCheck shows CountSolutions distinguishing a
// puzzle with a single solution from one with several.
func demonstrateUniquenessCheck() {
	fmt.Printf("\n%s\n", color.HiCyanString("Uniqueness Check"))
	fmt.Println(color.HiCyanString("================="))

	repr := "xxxxxxxx120xx3x1"
	g, err := grid.Construct(repr, 2, 2)
	if err != nil {
		fmt.Println(color.HiRedString("invalid puzzle: %v", err))
		return
	}

	count, err := dlx.CountSolutions(g, 10)
	if err != nil {
		fmt.Println(color.HiRedString("count error: %v", err))
		return
	}

	if count == 1 {
		fmt.Println(color.HiGreenString("Puzzle has a unique solution."))
	} else {
		fmt.Printf("%s: found %d solutions (searched up to 10)\n",
			color.HiYellowString("Puzzle is not uniquely solvable"), count)
	}
}

func demonstrateAlgorithmDetails() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Algorithm Details"))
	fmt.Println(color.HiCyanString("================================"))

	fmt.Println("\nThe Dancing Links algorithm (also known as Algorithm X) solves exact")
	fmt.Println("cover problems. A generalized R x C grid of size N = R*C is modeled as")
	fmt.Println("an exact cover problem with four constraint families, each holding N²")
	fmt.Println("columns: one cell per (row, col), one value per row, one value per")
	fmt.Println("column, and one value per region.")

	fmt.Printf("\n%s\n", color.HiYellowString("Matrix Rows:"))
	fmt.Println("   • Up to N³ rows representing all possible (row, col, value) assignments")
	fmt.Println("   • Each row has exactly 4 nodes, one per constraint family")
	fmt.Println("   • An already-set cell contributes a single row, for its existing value")

	fmt.Printf("\n%s\n", color.HiYellowString("Dancing Links Operations:"))
	fmt.Println("   • Cover: remove a column and every row intersecting it")
	fmt.Println("   • Uncover: restore a column and its rows, in reverse, for backtracking")
	fmt.Println("   • Search: recursively choose a column, cover it, and try each of its rows")

	fmt.Printf("\n%s\n", color.HiYellowString("Key Optimizations:"))
	fmt.Println("   • Minimum Remaining Values heuristic: always choose the column with fewest live rows")
	fmt.Println("   • Doubly-linked circular lists give O(1) cover/uncover operations")
}

func repeat(b byte, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return string(buf)
}
