package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/forestblast/internal/forest"
)

// GlyphDef defines how one kind of forest cell is drawn.
type GlyphDef struct {
	Cell  string `json:"cell"`  // forest.Cell name (e.g., "tree")
	Glyph string `json:"glyph"` // Emoji drawn for the cell
	Color string `json:"color"` // Hex color code used by the terminal display
}

// Rune returns the first rune of the glyph.
func (d GlyphDef) Rune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (d GlyphDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// GlyphsFile represents the structure of glyphs.json.
type GlyphsFile struct {
	Fallback string     `json:"fallback"`
	Glyphs   []GlyphDef `json:"glyphs"`
}

// GlyphSet looks up how cells are drawn.
type GlyphSet struct {
	byCell   map[forest.Cell]GlyphDef
	fallback GlyphDef
}

// NewGlyphSet builds a lookup from loaded glyph definitions. Every forest cell
// kind must have a definition.
func NewGlyphSet(file GlyphsFile) (*GlyphSet, error) {
	names := make(map[string]forest.Cell)
	for _, c := range forest.Cells() {
		names[c.String()] = c
	}

	set := &GlyphSet{
		byCell:   make(map[forest.Cell]GlyphDef, len(file.Glyphs)),
		fallback: GlyphDef{Cell: "fallback", Glyph: file.Fallback, Color: "#FFFFFF"},
	}
	if set.fallback.Glyph == "" {
		set.fallback.Glyph = "?"
	}

	for _, def := range file.Glyphs {
		cell, ok := names[def.Cell]
		if !ok {
			return nil, fmt.Errorf("unknown cell %q in glyph data", def.Cell)
		}
		if def.Glyph == "" {
			return nil, fmt.Errorf("empty glyph for cell %q", def.Cell)
		}
		set.byCell[cell] = def
	}

	for _, c := range forest.Cells() {
		if _, ok := set.byCell[c]; !ok {
			return nil, fmt.Errorf("missing glyph for cell %q", c)
		}
	}

	return set, nil
}

// LoadGlyphs loads the glyph set from the embedded glyphs.json file.
func LoadGlyphs() (*GlyphSet, error) {
	file, err := Load[GlyphsFile]("glyphs.json")
	if err != nil {
		return nil, err
	}
	return NewGlyphSet(file)
}

// MustLoadGlyphs loads the glyph set, panicking on error.
func MustLoadGlyphs() *GlyphSet {
	set, err := LoadGlyphs()
	if err != nil {
		panic(err)
	}
	return set
}

// Get returns the definition for a cell, or the fallback glyph.
func (s *GlyphSet) Get(c forest.Cell) GlyphDef {
	if def, ok := s.byCell[c]; ok {
		return def
	}
	return s.fallback
}
