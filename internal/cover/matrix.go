// Package cover builds and manipulates the toroidal, four-way linked
// exact-cover matrix that the Sudoku core reduces a grid to: one header
// per constraint, one row of four data nodes per candidate (row, col,
// value) assignment admitted by the grid.
package cover

import "github.com/kpitt/dlxsudoku/internal/grid"

// Node is one element of the four-way circularly linked matrix. For a
// column header, Header points to itself. For a data node, Header
// points to the owning column; Row, Col and Value identify the
// candidate assignment the node's row represents.
type Node struct {
	Up, Down, Left, Right *Node
	Header                *Header

	Row, Col, Value int
}

// Header is a column header: the entry point into its column's
// vertical ring and the carrier of the live-element count used by the
// choice heuristic. It embeds Node so that Node.Header for a header's
// own node points back to itself, matching the toroidal structure
// described in §3.
type Header struct {
	Node
	Count int
	ID    int
}

// Constraint family boundaries, contiguous in column-id space as
// specified in §3: cell, row, column, region — each family holding N²
// columns.
const (
	familyCell = iota
	familyRow
	familyCol
	familyRegion
	numFamilies
)

// NumConstraintFamilies is the number of constraint families every
// candidate row participates in (cell, row, column, region): every row
// of the matrix contributes exactly this many data nodes.
const NumConstraintFamilies = numFamilies

// Matrix is the exact-cover matrix built from one grid. It is owned
// exclusively by the search that built it: Build, Cover/Uncover, and
// Destroy are not safe for concurrent use, and the matrix must not
// outlive the Destroy call.
type Matrix struct {
	Root *Header

	n int

	headerArena []Header
	nodeArena   []Node
	nextNode    int
}

// Build constructs the cover matrix for g: 4*N² column headers (plus
// the root sentinel), then one row of four data nodes for every
// candidate (r, c, v) assignment g admits — exactly one row, for the
// existing value, when cell (r, c) is already set, or N rows, one per
// possible value, when it is unset. Column insertion is O(1): every
// data node is linked in at the bottom of its column, immediately
// above the header.
func Build(g *grid.Grid) *Matrix {
	n := g.Size()
	numCols := numFamilies * n * n

	rowCount, presetCount := countCandidateRows(g)
	m := &Matrix{
		n:           n,
		headerArena: make([]Header, numCols+1), // +1 for the root sentinel
		nodeArena:   make([]Node, 4*rowCount),
	}

	m.buildHeaders(numCols)
	m.buildRows(g, presetCount)
	return m
}

// countCandidateRows returns the total number of candidate rows the
// grid admits (one per pre-set cell, N per unset cell) and the number
// of pre-set cells.
func countCandidateRows(g *grid.Grid) (rows, preset int) {
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			isSet, _ := g.IsSet(r, c)
			if isSet {
				rows++
				preset++
			} else {
				rows += n
			}
		}
	}
	return rows, preset
}

func (m *Matrix) buildHeaders(numCols int) {
	root := &m.headerArena[0]
	root.ID = -1
	root.Left = &root.Node
	root.Right = &root.Node
	root.Header = root
	m.Root = root

	prev := &root.Node
	for i := 0; i < numCols; i++ {
		h := &m.headerArena[i+1]
		h.ID = i
		h.Header = h
		h.Up = &h.Node
		h.Down = &h.Node

		h.Left = prev
		h.Right = &root.Node
		prev.Right = &h.Node
		root.Left = &h.Node
		prev = &h.Node
	}
}

func (m *Matrix) header(id int) *Header {
	return &m.headerArena[id+1]
}

func (m *Matrix) buildRows(g *grid.Grid, presetCount int) {
	_ = presetCount
	n := m.n
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v, err := g.Get(r, c); err == nil {
				m.addRow(g, r, c, v)
				continue
			}
			for v := 0; v < n; v++ {
				m.addRow(g, r, c, v)
			}
		}
	}
}

// addRow allocates the four data nodes for candidate assignment
// (r, c, v) and links them into their columns and into one circular
// row.
func (m *Matrix) addRow(g *grid.Grid, r, c, v int) {
	n := m.n
	region := g.Region(r, c)

	colIDs := [4]int{
		familyCell*n*n + r*n + c,
		familyRow*n*n + r*n + v,
		familyCol*n*n + c*n + v,
		familyRegion*n*n + region*n + v,
	}

	base := m.nextNode
	m.nextNode += 4

	for i, colID := range colIDs {
		node := &m.nodeArena[base+i]
		node.Row, node.Col, node.Value = r, c, v

		h := m.header(colID)
		node.Header = h
		node.Down = &h.Node
		node.Up = h.Up
		h.Up.Down = node
		h.Up = node
		h.Count++
	}

	for i := 0; i < 4; i++ {
		node := &m.nodeArena[base+i]
		node.Left = &m.nodeArena[base+(i+3)%4]
		node.Right = &m.nodeArena[base+(i+1)%4]
	}
}

// Destroy releases the matrix's arenas. Go's garbage collector
// reclaims the cyclic node mesh on its own once nothing references it;
// clearing the arena slices here just makes that memory eligible for
// collection without waiting for the Matrix value itself to go out of
// scope.
func (m *Matrix) Destroy() {
	m.Root = nil
	m.headerArena = nil
	m.nodeArena = nil
}

// Cover removes header from the header ring, then removes every row
// that intersects header's column from every other column it
// participates in. Horizontal links of the removed rows are left
// untouched, which is what lets Uncover restore them exactly.
func Cover(header *Header) {
	header.Right.Left = header.Left
	header.Left.Right = header.Right

	for i := header.Down; i != &header.Node; i = i.Down {
		for j := i.Right; j != i; j = j.Right {
			j.Down.Up = j.Up
			j.Up.Down = j.Down
			j.Header.Count--
		}
	}
}

// Uncover is the strict inverse of Cover: it restores header's column
// rows bottom-to-top and, within each row, right-to-left — the reverse
// of the traversal order Cover used — then reinserts header into the
// header ring.
func Uncover(header *Header) {
	for i := header.Up; i != &header.Node; i = i.Up {
		for j := i.Left; j != i; j = j.Left {
			j.Header.Count++
			j.Down.Up = j
			j.Up.Down = j
		}
	}

	header.Right.Left = &header.Node
	header.Left.Right = &header.Node
}
