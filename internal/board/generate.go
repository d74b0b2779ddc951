package board

// ensureGenerated lazily places mines on the first reveal of a round,
// excluding the revealed coordinate so the first uncover can never explode.
func (b *Board) ensureGenerated(excludeX, excludeY int) {
	if b.generated {
		return
	}
	b.placeMines(excludeX, excludeY)
	b.calculateNeighbors()
	b.generated = true
}

// placeMines marks numMines distinct cells as mines, chosen uniformly at
// random by rejection sampling, never choosing (excludeX, excludeY).
// New guarantees numMines < width*height, so the loop terminates.
func (b *Board) placeMines(excludeX, excludeY int) {
	placed := 0
	for placed < b.numMines {
		x := b.rng.Intn(b.width)
		y := b.rng.Intn(b.height)
		if x == excludeX && y == excludeY {
			continue
		}
		c := b.at(x, y)
		if c.Mine {
			continue
		}
		c.Mine = true
		placed++
	}
}

// calculateNeighbors sets every cell's mine-neighbor count. Runs once per
// round, right after mine placement; the counts stay correct because the
// mine layout never changes until the next reset.
func (b *Board) calculateNeighbors() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			count := 0
			b.eachNeighbor(x, y, func(nx, ny int) {
				if b.at(nx, ny).Mine {
					count++
				}
			})
			b.at(x, y).Neighbors = count
		}
	}
}
