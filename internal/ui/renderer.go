package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/forestblast/internal/forest"
	"github.com/samdwyer/forestblast/internal/game"
	"github.com/samdwyer/forestblast/internal/gamedata"
)

// exitPrompt is shown when a finished game waits for the player to leave.
const exitPrompt = "Press any key to exit"

// Renderer draws the game on a full-screen terminal. Text and grid rows are
// stacked top to bottom, like lines on a console.
type Renderer struct {
	screen  *Screen
	glyphs  *gamedata.GlyphSet
	row     int
	stopped bool
}

var _ game.Presenter = (*Renderer)(nil)

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, glyphs *gamedata.GlyphSet) *Renderer {
	return &Renderer{screen: screen, glyphs: glyphs}
}

// Clear wipes the screen buffer and starts a new frame at the top.
func (r *Renderer) Clear() error {
	r.screen.Clear()
	r.row = 0
	return nil
}

// DrawGrid draws the forest. Emoji are two columns wide.
func (r *Renderer) DrawGrid(grid [][]forest.Cell) {
	for _, row := range grid {
		for x, cell := range row {
			def := r.glyphs.Get(cell)
			style := tcell.StyleDefault.Foreground(def.TCellColor())
			if cell.IsHit() {
				style = style.Bold(true)
			}
			r.screen.SetContent(x*2, r.row, def.Rune(), style)
		}
		r.row++
	}
}

// Println writes a line of text under whatever was drawn last.
func (r *Renderer) Println(line string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range line {
		r.screen.SetContent(x, r.row, ch, style)
		x++
	}
	r.row++
}

// Pause shows the frame and waits d. Pressing q, Esc or Ctrl-C ends the wait
// with game.ErrQuit.
func (r *Renderer) Pause(ctx context.Context, d time.Duration) error {
	r.screen.Show()

	// The token tells this wait's wake-up apart from a stale one.
	token := new(int)
	wake := func() { _ = r.screen.PostEvent(tcell.NewEventInterrupt(token)) }

	timer := time.AfterFunc(d, wake)
	defer timer.Stop()
	stop := context.AfterFunc(ctx, wake)
	defer stop()

	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			r.stopped = true
			return game.ErrQuit
		case *tcell.EventInterrupt:
			if ev.Data() != token {
				continue
			}
			if err := ctx.Err(); err != nil {
				r.stopped = true
				return err
			}
			return nil
		case *tcell.EventKey:
			if isQuitKey(ev) {
				r.stopped = true
				return game.ErrQuit
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// Close restores the terminal. After a finished game it first waits for a key
// so the outcome stays readable.
func (r *Renderer) Close() error {
	defer r.screen.Close()

	if r.stopped {
		return nil
	}

	r.row++
	r.Println(exitPrompt)
	r.screen.Show()

	for {
		switch r.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
