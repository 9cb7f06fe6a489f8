package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/kpitt/dlxsudoku/internal/grid"
)

var (
	solvedValueColor = color.New(color.Bold, color.FgHiWhite)
	givenValueColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
)

// Print renders g to stdout as an N x N grid, with a heavier border
// every regionCols/regionRows cells marking the region boundaries, the
// way the original puzzle printer drew 3x3 boxes. given identifies
// cells to render in the "given" color rather than the "solved" one;
// it may be nil, in which case every set cell renders as solved.
func Print(g *grid.Grid, given func(r, c int) bool) {
	n := g.Size()
	cellWidth := 3
	if n > 10 {
		cellWidth = 4
	}

	fmt.Println(border(n, g.RegionCols(), cellWidth, '┌', '┬', '╥', '┐'))
	for r := 0; r < n; r++ {
		if r != 0 {
			if r%g.RegionRows() == 0 {
				fmt.Println(border(n, g.RegionCols(), cellWidth, '╞', '╪', '╬', '╡'))
			} else {
				fmt.Println(border(n, g.RegionCols(), cellWidth, '├', '┼', '╫', '┤'))
			}
		}
		printRow(g, r, cellWidth, given)
	}
	fmt.Println(border(n, g.RegionCols(), cellWidth, '└', '┴', '╨', '┘'))
}

func printRow(g *grid.Grid, r, cellWidth int, given func(r, c int) bool) {
	n := g.Size()
	for c := 0; c < n; c++ {
		if c != 0 && c%g.RegionCols() == 0 {
			fmt.Print(color.HiWhiteString("║"))
		} else {
			fmt.Print(color.HiWhiteString("│"))
		}

		isSet, _ := g.IsSet(r, c)
		if !isSet {
			fmt.Print(strings.Repeat(" ", cellWidth))
			continue
		}

		v, _ := g.Get(r, c)
		label := string(grid.EncodeValue(v))

		cellColor := solvedValueColor
		if given != nil && given(r, c) {
			cellColor = givenValueColor
		}
		cellColor.Print(pad(label, cellWidth))
	}
	fmt.Println(color.HiWhiteString("│"))
}

func pad(s string, width int) string {
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func border(n, regionCols, cellWidth int, left, minor, major, right rune) string {
	var sb strings.Builder
	sb.WriteRune(left)
	for c := 0; c < n; c++ {
		sb.WriteString(strings.Repeat("─", cellWidth))
		switch {
		case c == n-1:
			sb.WriteRune(right)
		case (c+1)%regionCols == 0:
			sb.WriteRune(major)
		default:
			sb.WriteRune(minor)
		}
	}
	return color.HiWhiteString(sb.String())
}
