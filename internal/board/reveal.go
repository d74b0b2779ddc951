package board

// point is a worklist entry for the iterative flood fill.
type point struct {
	x, y int
}

// Reveal processes a reveal action at (x, y). On the first reveal of a round
// it also places mines, excluding (x, y) from eligibility.
//
// A covered cell is uncovered (or explodes if mined). An uncovered cell is a
// chord: when its flagged-neighbor count matches its mine-neighbor count,
// all remaining covered neighbors are uncovered. Flagged and exploded cells
// ignore reveals.
func (b *Board) Reveal(x, y int) {
	b.ensureGenerated(x, y)

	switch b.at(x, y).State {
	case Covered:
		b.uncover(x, y)
	case Uncovered:
		b.chord(x, y)
	}
}

// uncover reveals the covered cell at (x, y). Revealing a mine sets it to
// Exploded and stops; revealing a zero-neighbor cell cascades through its
// whole zero-region plus the numbered border around it.
//
// The cascade runs on an explicit worklist instead of call-stack recursion,
// so it is safe for boards of any size. A cell is only ever expanded while
// still covered; once uncovered it is skipped on re-encounter, which
// terminates the fill.
func (b *Board) uncover(x, y int) {
	work := []point{{x, y}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		c := b.at(p.x, p.y)
		if c.State != Covered {
			continue
		}
		if c.Mine {
			c.State = Exploded
			continue
		}
		c.State = Uncovered
		if c.Neighbors == 0 {
			b.eachNeighbor(p.x, p.y, func(nx, ny int) {
				work = append(work, point{nx, ny})
			})
		}
	}
}

// chord mass-reveals around the uncovered cell at (x, y) when the player has
// placed exactly as many flags next to it as it has mine neighbors. Flagged
// neighbors stay flagged; each covered neighbor is uncovered and may cascade.
//
// The flags are trusted, not verified: a mis-flagged chord can uncover a
// mine and lose the game.
func (b *Board) chord(x, y int) {
	flagged := 0
	b.eachNeighbor(x, y, func(nx, ny int) {
		if b.at(nx, ny).State == Flagged {
			flagged++
		}
	})
	if flagged != b.at(x, y).Neighbors {
		return
	}
	b.eachNeighbor(x, y, func(nx, ny int) {
		if b.at(nx, ny).State == Covered {
			b.uncover(nx, ny)
		}
	})
}

// Flag toggles the cell at (x, y) between Covered and Flagged.
// Uncovered and exploded cells are unaffected.
func (b *Board) Flag(x, y int) {
	c := b.at(x, y)
	switch c.State {
	case Covered:
		c.State = Flagged
	case Flagged:
		c.State = Covered
	}
}
