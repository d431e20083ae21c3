package core

import (
	"math"
	"strings"
)

// Glyphs used when rasterizing shapes into cells.
const (
	RectGlyph   = '█'
	CircleGlyph = '●'
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer for rendering frames.
// One world unit maps to one cell. It decouples the loop from the terminal:
// the loop draws shapes and text, the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	copyW := min(s.width, width)
	copyH := min(s.height, height)

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune at the given position in the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawRect fills the cells covered by a world-space rectangle.
// Coordinates are rounded to the nearest cell; a rect always covers at least one cell.
func (s *Screen) DrawRect(x, y, w, h float64, c Color) {
	x0, x1 := cellSpan(x, w)
	y0, y1 := cellSpan(y, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.SetCell(cx, cy, Cell{Rune: RectGlyph, Color: c})
		}
	}
}

// DrawCircle fills the cells whose centers lie inside the circle.
// Circles smaller than a cell still mark the cell under their center.
func (s *Screen) DrawCircle(x, y, r float64, c Color) {
	cell := Cell{Rune: CircleGlyph, Color: c}
	s.SetCell(int(math.Floor(x)), int(math.Floor(y)), cell)

	x0, x1 := int(math.Floor(x-r)), int(math.Ceil(x+r))
	y0, y1 := int(math.Floor(y-r)), int(math.Ceil(y+r))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			dx := float64(cx) + 0.5 - x
			dy := float64(cy) + 0.5 - y
			if dx*dx+dy*dy <= r*r {
				s.SetCell(cx, cy, cell)
			}
		}
	}
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(text string, x, y float64) {
	s.DrawTextAt(int(math.Round(x)), int(math.Round(y)), text)
}

// DrawTextAt writes a string at integer cell coordinates.
func (s *Screen) DrawTextAt(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextAt(x, y, text)
}

// Fill fills a cell-space rectangle with the given rune.
func (s *Screen) Fill(x, y, w, h int, r rune) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			s.Set(cx, cy, r)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int) {
	right, bottom := x+w-1, y+h-1

	s.Set(x, y, '┌')
	s.Set(right, y, '┐')
	s.Set(x, bottom, '└')
	s.Set(right, bottom, '┘')

	for cx := x + 1; cx < right; cx++ {
		s.Set(cx, y, '─')
		s.Set(cx, bottom, '─')
	}
	for cy := y + 1; cy < bottom; cy++ {
		s.Set(x, cy, '│')
		s.Set(right, cy, '│')
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// cellSpan converts a world-space interval to a half-open cell range.
func cellSpan(pos, size float64) (int, int) {
	start := int(math.Round(pos))
	end := int(math.Round(pos + size))
	if end <= start {
		end = start + 1
	}
	return start, end
}
