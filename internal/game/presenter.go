package game

import (
	"context"
	"errors"
	"time"

	"github.com/samdwyer/forestblast/internal/forest"
)

// ErrQuit is returned by a Presenter when the user asks to leave the game.
var ErrQuit = errors.New("quit requested")

// Presenter shows the game to the player.
type Presenter interface {
	// Clear wipes the previous frame. Failure aborts the game.
	Clear() error
	// DrawGrid draws the forest, indexed [y][x].
	DrawGrid(grid [][]forest.Cell)
	// Println adds a line of text below the grid.
	Println(line string)
	// Pause keeps the frame visible for d.
	Pause(ctx context.Context, d time.Duration) error
	// Close ends the presentation.
	Close() error
}
