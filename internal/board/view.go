package board

// CellView is the renderer-facing projection of a cell. It deliberately
// omits mine placement for covered and flagged cells: the only cell that
// ever shows a mine is the one that exploded.
type CellView struct {
	State     CellState
	Neighbors int  // only meaningful when State == Uncovered
	Mine      bool // true only when State == Exploded
}

// View returns the renderer projection of the cell at (x, y).
// Panics on out-of-range coordinates.
func (b *Board) View(x, y int) CellView {
	c := b.at(x, y)
	v := CellView{State: c.State}
	switch c.State {
	case Uncovered:
		v.Neighbors = c.Neighbors
	case Exploded:
		v.Mine = true
	}
	return v
}
