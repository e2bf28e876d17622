// Package entity provides the siblings hiding in the forest.
package entity

import "github.com/samdwyer/forestblast/internal/forest"

// Sibling is someone hiding in the forest.
// Hit is only meaningful for the turn it was set in.
type Sibling struct {
	Name string
	Pos  forest.Coord
	Hit  bool
}

// NewSibling creates a sibling hiding at the given square.
func NewSibling(name string, pos forest.Coord) *Sibling {
	return &Sibling{
		Name: name,
		Pos:  pos,
	}
}

// MoveTo teleports the sibling to a new square.
func (s *Sibling) MoveTo(pos forest.Coord) {
	s.Pos = pos
}

// At returns true if the sibling hides at the given square.
func (s *Sibling) At(pos forest.Coord) bool {
	return s.Pos == pos
}

// Cell returns how the sibling's square is displayed, given the cells for the
// normal and hit states.
func (s *Sibling) Cell(normal, hit forest.Cell) forest.Cell {
	if s.Hit {
		return hit
	}
	return normal
}
