// Package forest provides the hiding grid and its coordinates.
package forest

// Cell represents what a single grid square shows.
type Cell int

const (
	// CellTree is an empty square of forest.
	CellTree Cell = iota
	// CellBrother is the little brother's hiding spot.
	CellBrother
	// CellSister is the sister's hiding spot.
	CellSister
	// CellBrotherHit marks an explosion that hit the little brother.
	CellBrotherHit
	// CellSisterHit marks an explosion that hit the sister.
	CellSisterHit
)

// String returns the cell name used as its key in the glyph data.
func (c Cell) String() string {
	switch c {
	case CellTree:
		return "tree"
	case CellBrother:
		return "brother"
	case CellSister:
		return "sister"
	case CellBrotherHit:
		return "brother_hit"
	case CellSisterHit:
		return "sister_hit"
	default:
		return "unknown"
	}
}

// IsHit returns true if the cell shows an explosion.
func (c Cell) IsHit() bool {
	return c == CellBrotherHit || c == CellSisterHit
}

// Cells lists every cell kind in display order.
func Cells() []Cell {
	return []Cell{CellTree, CellBrother, CellSister, CellBrotherHit, CellSisterHit}
}
