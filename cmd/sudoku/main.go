package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kpitt/dlxsudoku/internal/cli"
	"github.com/kpitt/dlxsudoku/internal/dlx"
	"github.com/kpitt/dlxsudoku/internal/grid"
	"github.com/mattn/go-isatty"
)

func main() {
	regionRows := flag.Int("region-rows", 3, "number of rows per region")
	regionCols := flag.Int("region-cols", 3, "number of columns per region")
	flag.Parse()

	if isStdinTTY() {
		n := *regionRows * *regionCols
		fmt.Printf("Enter the %d x %d grid as a single block of %d characters", n, n, n*n)
		fmt.Println(" (rows may be split across lines).")
		fmt.Println("Use '0'-'9' and 'a'-'w' for values, 'x' or space for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	g, err := cli.ReadGrid(os.Stdin, *regionRows, *regionCols)
	if err != nil {
		cli.Fatal("could not read grid", err.Error())
	}

	given := snapshotGivens(g)

	solved, err := dlx.Solve(g)
	if err != nil {
		cli.Fatal("solve failed", err.Error())
	}

	if solved {
		color.HiWhite("\nSolution:")
	} else {
		color.HiWhite("\nNo solution exists for this puzzle.")
	}
	cli.Print(g, given)
}

// snapshotGivens captures which cells were already set before solving,
// so the printer can render them in a different color from the cells
// the solver fills in.
func snapshotGivens(g *grid.Grid) func(r, c int) bool {
	n := g.Size()
	given := make([][]bool, n)
	for r := 0; r < n; r++ {
		given[r] = make([]bool, n)
		for c := 0; c < n; c++ {
			given[r][c], _ = g.IsSet(r, c)
		}
	}
	return func(r, c int) bool { return given[r][c] }
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
