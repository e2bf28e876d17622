// Package game provides the main game loop and state management.
package game

// Phase represents where a game is in its lifecycle.
type Phase int

const (
	// PhaseRunning means explosions are still being fired.
	PhaseRunning Phase = iota
	// PhaseWin means the little brother was hit MaxHits times.
	PhaseWin
	// PhaseLose means the brother ran out of explosions.
	PhaseLose
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}

// IsTerminal returns true for the phases no game leaves.
func (p Phase) IsTerminal() bool {
	return p == PhaseWin || p == PhaseLose
}
