package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/forestblast/internal/forest"
)

// recordingPresenter records everything the game shows.
type recordingPresenter struct {
	events   []string
	grids    [][][]forest.Cell
	clearErr error
	pauseErr error
	pauses   int
	closed   bool
}

func (p *recordingPresenter) Clear() error {
	p.events = append(p.events, "<clear>")
	return p.clearErr
}

func (p *recordingPresenter) DrawGrid(grid [][]forest.Cell) {
	p.events = append(p.events, "<grid>")
	p.grids = append(p.grids, grid)
}

func (p *recordingPresenter) Println(line string) {
	p.events = append(p.events, line)
}

func (p *recordingPresenter) Pause(ctx context.Context, d time.Duration) error {
	p.events = append(p.events, "<pause>")
	p.pauses++
	return p.pauseErr
}

func (p *recordingPresenter) Close() error {
	p.closed = true
	return nil
}

func newTestGame(t *testing.T, p Presenter, seed int64) *Game {
	t.Helper()
	return New(Config{Seed: seed}, p, zerolog.Nop())
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, &recordingPresenter{}, 42)

	assert.NotEmpty(t, g.ID())
	assert.Nil(t, g.State())
	assert.Equal(t, int64(42), g.config.Seed)

	other := newTestGame(t, &recordingPresenter{}, 0)
	assert.NotZero(t, other.config.Seed)
	assert.NotEqual(t, g.ID(), other.ID())
}

func TestRunPlaysToTheEnd(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		p := &recordingPresenter{}
		g := newTestGame(t, p, seed)

		require.NoError(t, g.Run(context.Background()))

		s := g.State()
		require.NotNil(t, s)
		assert.True(t, s.IsTerminal())
		assert.True(t, p.closed)
		assert.Equal(t, s.Turn, p.pauses)
		assert.Len(t, p.grids, s.Turn)

		// The outcome is the last line before the final pause.
		require.GreaterOrEqual(t, len(p.events), 2)
		assert.Equal(t, "<pause>", p.events[len(p.events)-1])
		assert.Equal(t, s.Outcome(), p.events[len(p.events)-2])
		assert.Contains(t, []string{MsgPlayerWins, MsgOpponentWins}, s.Outcome())
	}
}

func TestRunIsReproducible(t *testing.T) {
	p1, p2 := &recordingPresenter{}, &recordingPresenter{}
	g1, g2 := newTestGame(t, p1, 777), newTestGame(t, p2, 777)

	require.NoError(t, g1.Run(context.Background()))
	require.NoError(t, g2.Run(context.Background()))

	assert.Equal(t, p1.events, p2.events)
	assert.Equal(t, p1.grids, p2.grids)
}

func TestTurnOutputOrder(t *testing.T) {
	p := &recordingPresenter{}
	g := newTestGame(t, p, 1)
	src := newScriptedSource(t, targetPos, allyPos)
	g.state = NewGameState(src)

	src.push(allyPos)
	require.NoError(t, g.turn(context.Background()))

	assert.Equal(t, []string{
		"<clear>",
		MsgAllyHit,
		"<grid>",
		MsgTargetMissed,
		"Explosions left: 32",
		"Little brother hits: 0",
		"<pause>",
	}, p.events)
	assert.Equal(t, forest.CellSisterHit, p.grids[0][allyPos.Y][allyPos.X])
}

func TestTurnRelocatesAfterDrawing(t *testing.T) {
	p := &recordingPresenter{}
	g := newTestGame(t, p, 1)
	src := newScriptedSource(t, targetPos, allyPos)
	g.state = NewGameState(src)

	newPos := forest.NewCoord(3, 3)
	src.push(targetPos, newPos)
	require.NoError(t, g.turn(context.Background()))

	assert.Equal(t, []string{
		"<clear>",
		"<grid>",
		MsgTargetHit,
		"Explosions left: 35",
		"Little brother hits: 1",
		"<pause>",
	}, p.events)
	assert.Equal(t, forest.CellBrotherHit, p.grids[0][targetPos.Y][targetPos.X])
	assert.Equal(t, newPos, g.state.TargetLocation())
}

func TestRunClearFailureIsFatal(t *testing.T) {
	clearErr := errors.New("no terminal")
	p := &recordingPresenter{clearErr: clearErr}
	g := newTestGame(t, p, 5)

	err := g.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, clearErr)
	assert.Contains(t, err.Error(), "clear screen")
	assert.True(t, p.closed)
	assert.Equal(t, 0, g.State().Turn)
	assert.Empty(t, p.grids)
}

func TestRunQuitStopsEarly(t *testing.T) {
	p := &recordingPresenter{pauseErr: ErrQuit}
	g := newTestGame(t, p, 5)

	require.NoError(t, g.Run(context.Background()))

	assert.Equal(t, 1, g.State().Turn)
	assert.Equal(t, 1, p.pauses)
	assert.True(t, p.closed)
}

func TestRunCancelledContext(t *testing.T) {
	p := &recordingPresenter{}
	g := newTestGame(t, p, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, g.Run(ctx))
	assert.Equal(t, 0, g.State().Turn)
	assert.True(t, p.closed)
}
