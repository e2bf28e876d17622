package ui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/forestblast/internal/forest"
	"github.com/samdwyer/forestblast/internal/game"
	"github.com/samdwyer/forestblast/internal/gamedata"
)

func newSimRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := newScreen(sim)
	require.NoError(t, err)
	sim.SetSize(80, 24)

	return NewRenderer(screen, gamedata.MustLoadGlyphs()), sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := sim.GetContents()
	cell := cells[y*width+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func testGrid() [][]forest.Cell {
	grid := make([][]forest.Cell, forest.GridSize)
	for y := range grid {
		grid[y] = make([]forest.Cell, forest.GridSize)
	}
	grid[0][1] = forest.CellBrother
	grid[2][3] = forest.CellSisterHit
	return grid
}

func TestRendererDrawsFrame(t *testing.T) {
	r, sim := newSimRenderer(t)
	defer sim.Fini()

	require.NoError(t, r.Clear())
	r.Println(game.MsgAllyHit)
	r.DrawGrid(testGrid())
	r.Println("Explosions left: 32")
	sim.Show()

	assert.Equal(t, 'S', runeAt(sim, 0, 0))
	assert.Equal(t, '\U0001F332', runeAt(sim, 0, 1))
	assert.Equal(t, '\U0001F466', runeAt(sim, 2, 1))
	assert.Equal(t, '\U0001F4A5', runeAt(sim, 6, 3))
	assert.Equal(t, 'E', runeAt(sim, 0, 1+forest.GridSize))
}

func TestRendererClearStartsAtTop(t *testing.T) {
	r, sim := newSimRenderer(t)
	defer sim.Fini()

	r.Println("first frame")
	require.NoError(t, r.Clear())
	r.Println("second")
	sim.Show()

	assert.Equal(t, 's', runeAt(sim, 0, 0))
	assert.Equal(t, ' ', runeAt(sim, 0, 1))
}

func TestRendererPauseTimesOut(t *testing.T) {
	r, sim := newSimRenderer(t)
	defer sim.Fini()

	assert.NoError(t, r.Pause(context.Background(), 10*time.Millisecond))
	assert.False(t, r.stopped)
}

func TestRendererPauseQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"Q", tcell.KeyRune, 'Q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, sim := newSimRenderer(t)
			defer sim.Fini()

			sim.InjectKey(tt.key, tt.ch, tcell.ModNone)

			err := r.Pause(context.Background(), time.Minute)
			assert.ErrorIs(t, err, game.ErrQuit)
			assert.True(t, r.stopped)
		})
	}
}

func TestRendererPauseIgnoresOtherKeys(t *testing.T) {
	r, sim := newSimRenderer(t)
	defer sim.Fini()

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	assert.NoError(t, r.Pause(context.Background(), 20*time.Millisecond))
}

func TestRendererPauseCancelled(t *testing.T) {
	r, sim := newSimRenderer(t)
	defer sim.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Pause(ctx, time.Minute), context.Canceled)
	assert.True(t, r.stopped)
}

func TestRendererCloseWaitsForKey(t *testing.T) {
	r, sim := newSimRenderer(t)

	r.Println("You Won!")
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	assert.NoError(t, r.Close())
}

func TestRendererCloseAfterQuit(t *testing.T) {
	r, _ := newSimRenderer(t)
	r.stopped = true

	assert.NoError(t, r.Close())
}
