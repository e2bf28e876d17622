package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samdwyer/forestblast/internal/forest"
	"github.com/samdwyer/forestblast/internal/game"
	"github.com/samdwyer/forestblast/internal/gamedata"
)

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\x1b[H\x1b[2J"

// Console prints frames as plain lines of emoji to a writer.
type Console struct {
	w      io.Writer
	glyphs *gamedata.GlyphSet
	err    error // first failed write of a frame
}

var _ game.Presenter = (*Console)(nil)

// NewConsole creates a console display writing to w.
func NewConsole(w io.Writer, glyphs *gamedata.GlyphSet) *Console {
	return &Console{w: w, glyphs: glyphs}
}

// Clear erases the terminal. It also reports any write that failed during
// the previous frame.
func (c *Console) Clear() error {
	if c.err != nil {
		return c.err
	}
	_, err := io.WriteString(c.w, clearSequence)
	return err
}

// DrawGrid prints one line per forest row.
func (c *Console) DrawGrid(grid [][]forest.Cell) {
	var b strings.Builder
	for _, row := range grid {
		for _, cell := range row {
			b.WriteString(c.glyphs.Get(cell).Glyph)
		}
		b.WriteByte('\n')
	}
	c.write(b.String())
}

// Println prints a line of text.
func (c *Console) Println(line string) {
	c.write(line + "\n")
}

// Pause sleeps for d or until ctx is done.
func (c *Console) Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Close reports a write failure that no later Clear surfaced.
func (c *Console) Close() error {
	if c.err != nil {
		return fmt.Errorf("write output: %w", c.err)
	}
	return nil
}

func (c *Console) write(s string) {
	if c.err != nil {
		return
	}
	_, c.err = io.WriteString(c.w, s)
}
