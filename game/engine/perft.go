package engine

// Perft counts the leaves of the legal move tree below h to the given depth.
// Goal rows are ignored, matching IsValidMove; depth 0 counts h itself.
func (r *Rules) Perft(h History, depth int) int {
	if depth <= 0 {
		return 1
	}

	moves := r.LegalMoves(h)
	if depth == 1 {
		return len(moves)
	}

	// One backing buffer reused across siblings
	buf := make(History, len(h), len(h)+depth)
	copy(buf, h)

	total := 0
	for _, m := range moves {
		total += r.Perft(append(buf, m), depth-1)
	}
	return total
}
