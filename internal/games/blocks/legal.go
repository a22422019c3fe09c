package blocks

// IsLegal reports whether every cell of candidate lies inside the field and
// on an empty cell of g. It is the single check behind every move, fall and
// rotation. The grid never holds the active piece, so a candidate cannot
// collide with the piece it was derived from.
func IsLegal(g *Grid, candidate Piece) bool {
	for _, c := range candidate.Cells() {
		if !g.InBounds(c) || g.Occupied(c) {
			return false
		}
	}
	return true
}
