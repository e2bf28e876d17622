package game

import (
	"fmt"

	"github.com/samdwyer/forestblast/internal/entity"
	"github.com/samdwyer/forestblast/internal/forest"
)

const (
	// MaxExplosions is how many explosions the older brother starts with.
	MaxExplosions = 36
	// MaxHits is how many hits on the little brother end the game.
	MaxHits = 3
	// AllyPenalty is how many extra explosions are lost when the sister is hit.
	AllyPenalty = 3
)

// Messages printed by the game.
const (
	MsgAllyHit      = "Sister got hit! Lose 3 explosions!"
	MsgTargetHit    = "Brother got hit! Move him!"
	MsgTargetMissed = "Brother was not hit!"
	MsgPlayerWins   = "You Won!"
	MsgOpponentWins = "Your brother won!"
	MsgNotOver      = "Game not yet over!"
)

// TurnResult describes what a single explosion did.
type TurnResult struct {
	Turn           int
	Explosion      forest.Coord
	TargetHit      bool
	AllyHit        bool
	Penalty        int // explosions lost on top of the per-turn one
	ExplosionsLeft int
}

// GameState holds everything about one game of hide and seek.
type GameState struct {
	ExplosionsLeft int
	Hits           int
	Turn           int
	LastExplosion  forest.Coord

	target *entity.Sibling // the little brother
	ally   *entity.Sibling // the sister
	rng    forest.Source
}

// NewGameState creates a game with both siblings hidden at distinct random squares.
func NewGameState(rng forest.Source) *GameState {
	target := entity.NewSibling("brother", forest.RandomCoord(rng))
	ally := entity.NewSibling("sister", forest.RandomCoord(rng))

	for ally.At(target.Pos) {
		ally.MoveTo(forest.RandomCoord(rng))
	}

	return &GameState{
		ExplosionsLeft: MaxExplosions,
		target:         target,
		ally:           ally,
		rng:            rng,
	}
}

// TargetLocation returns where the little brother is hiding.
func (s *GameState) TargetLocation() forest.Coord {
	return s.target.Pos
}

// AllyLocation returns where the sister is hiding.
func (s *GameState) AllyLocation() forest.Coord {
	return s.ally.Pos
}

// TargetHit reports whether the last explosion hit the little brother.
func (s *GameState) TargetHit() bool {
	return s.target.Hit
}

// AllyHit reports whether the last explosion hit the sister.
func (s *GameState) AllyHit() bool {
	return s.ally.Hit
}

// RelocateTarget moves the little brother to a random square. The new square
// may be his old one or the sister's.
func (s *GameState) RelocateTarget() {
	s.target.MoveTo(forest.RandomCoord(s.rng))
}

// FireExplosion fires one explosion at a random square. It returns true when
// the little brother was hit and should be relocated.
//
// The little brother is checked first, so a square shared by both siblings
// counts as a hit on him only. Hitting the sister costs AllyPenalty explosions
// on top of the one spent every turn; the count never drops below zero.
func (s *GameState) FireExplosion() (bool, TurnResult) {
	s.target.Hit = false
	s.ally.Hit = false

	pos := forest.RandomCoord(s.rng)
	s.LastExplosion = pos
	s.Turn++

	res := TurnResult{Turn: s.Turn, Explosion: pos}

	switch {
	case s.target.At(pos):
		s.Hits++
		s.target.Hit = true
		res.TargetHit = true
	case s.ally.At(pos):
		s.ally.Hit = true
		res.AllyHit = true
		res.Penalty = min(AllyPenalty, s.ExplosionsLeft)
		s.ExplosionsLeft -= res.Penalty
	}

	if s.ExplosionsLeft > 0 {
		s.ExplosionsLeft--
	}
	res.ExplosionsLeft = s.ExplosionsLeft

	return res.TargetHit, res
}

// IsTerminal returns true once the brother is out of explosions or has hit
// the little brother MaxHits times.
func (s *GameState) IsTerminal() bool {
	return s.ExplosionsLeft == 0 || s.Hits == MaxHits
}

// Phase returns the current phase of the game.
func (s *GameState) Phase() Phase {
	switch {
	case s.Hits == MaxHits:
		return PhaseWin
	case s.ExplosionsLeft == 0:
		return PhaseLose
	default:
		return PhaseRunning
	}
}

// Grid returns the forest as it should be displayed, indexed [y][x].
func (s *GameState) Grid() [][]forest.Cell {
	grid := make([][]forest.Cell, forest.GridSize)
	for y := range grid {
		grid[y] = make([]forest.Cell, forest.GridSize)
	}

	forest.Each(func(c forest.Coord) {
		cell := forest.CellTree
		switch {
		case s.target.At(c):
			cell = s.target.Cell(forest.CellBrother, forest.CellBrotherHit)
		case s.ally.At(c):
			cell = s.ally.Cell(forest.CellSister, forest.CellSisterHit)
		}
		grid[c.Y][c.X] = cell
	})

	return grid
}

// Status returns the score lines shown after every turn.
func (s *GameState) Status() []string {
	return []string{
		fmt.Sprintf("Explosions left: %d", s.ExplosionsLeft),
		fmt.Sprintf("Little brother hits: %d", s.Hits),
	}
}

// Outcome returns the line announcing the winner.
func (s *GameState) Outcome() string {
	switch s.Phase() {
	case PhaseWin:
		return MsgPlayerWins
	case PhaseLose:
		return MsgOpponentWins
	default:
		return MsgNotOver
	}
}
