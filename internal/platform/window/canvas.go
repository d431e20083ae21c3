// Package window hosts games in a desktop window through Ebitengine.
//
// Everything that touches ebiten lives behind the "ebiten" build tag so the
// default build stays cgo-free and headless. Canvas is untagged: it records
// one frame of draw calls in world units, which the window replays scaled
// to pixels.
package window

import (
	"image/color"
	"sync"

	"github.com/vovakirdan/frameloop/internal/core"
)

// Cell size in pixels of one world unit.
const (
	CellW = 8
	CellH = 16
)

// OpKind identifies a recorded draw call.
type OpKind uint8

const (
	OpRect OpKind = iota
	OpCircle
	OpText
)

// Op is one recorded draw call, in world units.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	R          float64
	Color      core.Color
	Text       string
}

// Canvas is an engine.Surface that buffers a frame of draw calls. The loop
// writes it from Update and the window reads it from Draw.
type Canvas struct {
	mu  sync.Mutex
	ops []Op
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) Clear() {
	c.mu.Lock()
	c.ops = c.ops[:0]
	c.mu.Unlock()
}

func (c *Canvas) DrawRect(x, y, w, h float64, col core.Color) {
	c.add(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: col})
}

func (c *Canvas) DrawCircle(x, y, r float64, col core.Color) {
	c.add(Op{Kind: OpCircle, X: x, Y: y, R: r, Color: col})
}

func (c *Canvas) DrawText(s string, x, y float64) {
	c.add(Op{Kind: OpText, X: x, Y: y, Text: s, Color: core.ColorWhite})
}

func (c *Canvas) add(op Op) {
	c.mu.Lock()
	c.ops = append(c.ops, op)
	c.mu.Unlock()
}

// Ops returns a copy of the current frame.
func (c *Canvas) Ops() []Op {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Op, len(c.ops))
	copy(out, c.ops)
	return out
}

var palette = [...]color.RGBA{
	core.ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
}

// Background is the window clear color.
var Background = color.RGBA{0x10, 0x10, 0x18, 0xff}

// RGBA maps a palette entry to a window color. Unknown entries fall back
// to the default color.
func RGBA(c core.Color) color.RGBA {
	if int(c) >= len(palette) {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// PixelRect converts a world-unit rectangle to pixels.
func PixelRect(x, y, w, h float64) (px, py, pw, ph float32) {
	return float32(x * CellW), float32(y * CellH), float32(w * CellW), float32(h * CellH)
}
