// Package board implements the minesweeper board engine: the cell grid,
// lazy mine placement, neighbor counts, and the reveal/flag/chord state
// machine. It is pure logic with no rendering or input dependencies.
package board

import (
	"fmt"
	"math/rand"
	"strings"
)

// CellState is the visible state of a single cell.
type CellState uint8

const (
	Covered CellState = iota
	Uncovered
	Flagged
	Exploded
)

// String returns a human-readable name for the cell state.
func (s CellState) String() string {
	switch s {
	case Covered:
		return "covered"
	case Uncovered:
		return "uncovered"
	case Flagged:
		return "flagged"
	case Exploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// Cell is one grid position. Mine is fixed at generation time; Neighbors is
// computed once after generation and stays valid because the mine layout is
// immutable until the next reset.
type Cell struct {
	Mine      bool
	State     CellState
	Neighbors int
}

// Board owns a width×height grid of cells. Mines are placed lazily on the
// first reveal so that the first uncovered cell is never a mine.
//
// Board is not safe for concurrent use; it is driven by the single
// input-handling goroutine.
type Board struct {
	width    int
	height   int
	numMines int
	cells    []Cell // row-major, cells[y*width+x]

	generated bool
	rng       *rand.Rand
}

// New allocates a board with all cells covered and no mines placed yet.
//
// Panics if width or height is not positive, or if numMines is negative or
// leaves no room for the excluded first-reveal cell (numMines >= width*height).
// Callers validate user input before constructing a board; violating these
// preconditions is a programming error, not a runtime condition.
func New(width, height, numMines int, rng *rand.Rand) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d", width, height))
	}
	if numMines < 0 || numMines >= width*height {
		panic(fmt.Sprintf("board: %d mines do not fit a %dx%d grid with a safe first reveal", numMines, width, height))
	}
	return &Board{
		width:    width,
		height:   height,
		numMines: numMines,
		cells:    make([]Cell, width*height),
		rng:      rng,
	}
}

// DefaultMines returns the default mine count for a grid: one sixth of the
// cells, rounded down.
func DefaultMines(width, height int) int {
	return width * height / 6
}

// Width returns the grid width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the grid height in cells.
func (b *Board) Height() int {
	return b.height
}

// NumMines returns the number of mines the board places per round.
func (b *Board) NumMines() int {
	return b.numMines
}

// Generated reports whether mines have been placed this round.
func (b *Board) Generated() bool {
	return b.generated
}

// CellAt returns a copy of the cell at (x, y).
// Panics on out-of-range coordinates.
func (b *Board) CellAt(x, y int) Cell {
	return *b.at(x, y)
}

// at returns the addressable cell at (x, y), enforcing the caller contract
// that coordinates are in range.
func (b *Board) at(x, y int) *Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("board: coordinates (%d, %d) outside %dx%d grid", x, y, b.width, b.height))
	}
	return &b.cells[y*b.width+x]
}

// eachNeighbor calls fn for every cell in the Moore neighborhood of (x, y),
// clipped at the grid edges. Corner cells get three neighbors, edge cells
// five, interior cells eight.
func (b *Board) eachNeighbor(x, y int, fn func(nx, ny int)) {
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if nx < 0 || nx >= b.width || ny < 0 || ny >= b.height {
				continue
			}
			if nx == x && ny == y {
				continue
			}
			fn(nx, ny)
		}
	}
}

// Reset returns every cell to its default covered state and re-arms mine
// generation for the next first reveal. Dimensions and mine count persist.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
	b.generated = false
}

// Status is the derived game status, recomputed from a full grid scan on
// every call. No counters are cached.
type Status struct {
	MinesRemaining int  // numMines minus placed flags; may go negative when over-flagged
	CellsRemaining int  // safe cells still covered
	Exploded       bool // a mine has been revealed
}

// Won reports the win condition: every safe cell uncovered, nothing exploded.
func (s Status) Won() bool {
	return s.CellsRemaining == 0 && !s.Exploded
}

// Status scans the grid and derives the mines-remaining and cells-remaining
// counters plus the loss flag.
func (b *Board) Status() Status {
	flagged, uncovered, exploded := 0, 0, false
	for i := range b.cells {
		switch b.cells[i].State {
		case Flagged:
			flagged++
		case Uncovered:
			uncovered++
		case Exploded:
			exploded = true
		}
	}
	return Status{
		MinesRemaining: b.numMines - flagged,
		CellsRemaining: b.width*b.height - b.numMines - uncovered,
		Exploded:       exploded,
	}
}

// String serializes the grid for debugging and tests: '#' covered,
// 'F' flagged, '*' exploded, a digit or '.' for uncovered cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			c := b.at(x, y)
			switch c.State {
			case Covered:
				sb.WriteByte('#')
			case Flagged:
				sb.WriteByte('F')
			case Exploded:
				sb.WriteByte('*')
			case Uncovered:
				if c.Neighbors == 0 {
					sb.WriteByte('.')
				} else {
					sb.WriteByte(byte('0' + c.Neighbors))
				}
			}
		}
	}
	return sb.String()
}
