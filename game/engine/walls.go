package engine

// CollidesWith reports whether two placements cannot both stand on the board.
// Two walls collide when they share an anchor, in either orientation.
// Differently anchored walls never collide, even when a same-orientation
// neighbour would overlap one covered edge.
func (w Wall) CollidesWith(o Wall) bool {
	return w.Anchor == o.Anchor
}

// Blocks reports whether the wall covers the edge between adjacent squares a and b
func (w Wall) Blocks(a, b Square) bool {
	switch {
	case a.X == b.X && abs(a.Y-b.Y) == 1:
		if w.Orientation != Horizontal {
			return false
		}
		return w.Anchor.Y == min(a.Y, b.Y) && (w.Anchor.X == a.X || w.Anchor.X+1 == a.X)

	case a.Y == b.Y && abs(a.X-b.X) == 1:
		if w.Orientation != Vertical {
			return false
		}
		return w.Anchor.X == min(a.X, b.X) && (w.Anchor.Y == a.Y || w.Anchor.Y+1 == a.Y)
	}
	return false
}

// blocked checks if any wall covers the edge between a and b
func blocked(walls []Wall, a, b Square) bool {
	for _, w := range walls {
		if w.Blocks(a, b) {
			return true
		}
	}
	return false
}

// ValidAnchor reports whether a wall anchored at s stays on the board.
// Both orientations span two cells, so the last row and column are excluded.
func (r *Rules) ValidAnchor(s Square) bool {
	return s.X >= 0 && s.X < r.BoardSize-1 && s.Y >= 0 && s.Y < r.BoardSize-1
}

// AllWalls returns every on-board placement, ordered by row, column, then
// horizontal before vertical.
func (r *Rules) AllWalls() []Wall {
	n := r.BoardSize - 1
	walls := make([]Wall, 0, 2*n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			anchor := Square{X: x, Y: y}
			walls = append(walls,
				Wall{Anchor: anchor, Orientation: Horizontal},
				Wall{Anchor: anchor, Orientation: Vertical},
			)
		}
	}
	return walls
}

// WallsRemaining returns how many walls a player may still place, or -1
// when the rules set no limit.
func (r *Rules) WallsRemaining(player int, h History) int {
	if r.WallsPerPlayer == 0 {
		return -1
	}
	left := r.WallsPerPlayer - h.WallsPlacedBy(player)
	if left < 0 {
		return 0
	}
	return left
}

// LegalWallMoves returns every placement that collides with no placed wall.
// Placements that cut a pawn off from its goal are included.
func (r *Rules) LegalWallMoves(h History) []Wall {
	if r.WallsRemaining(h.NextPlayer(), h) == 0 {
		return nil
	}

	placed := h.Walls()
	all := r.AllWalls()
	legal := make([]Wall, 0, len(all))

	for _, candidate := range all {
		colliding := false
		for _, w := range placed {
			if candidate.CollidesWith(w) {
				colliding = true
				break
			}
		}
		if !colliding {
			legal = append(legal, candidate)
		}
	}

	return legal
}
