package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
)

var _ engine.Surface = (*Canvas)(nil)

func TestCanvasRecordsFrame(t *testing.T) {
	c := NewCanvas()
	c.DrawRect(1, 2, 3, 4, core.ColorGreen)
	c.DrawCircle(5, 6, 1.5, core.ColorYellow)
	c.DrawText("Score: 3", 2, 0)

	ops := c.Ops()
	require.Len(t, ops, 3)
	assert.Equal(t, Op{Kind: OpRect, X: 1, Y: 2, W: 3, H: 4, Color: core.ColorGreen}, ops[0])
	assert.Equal(t, Op{Kind: OpCircle, X: 5, Y: 6, R: 1.5, Color: core.ColorYellow}, ops[1])
	assert.Equal(t, "Score: 3", ops[2].Text)

	c.Clear()
	assert.Empty(t, c.Ops())
	assert.Len(t, ops, 3, "Ops returns a copy")
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, palette[core.ColorRed], RGBA(core.ColorRed))
	assert.Equal(t, palette[core.ColorDefault], RGBA(core.Color(200)))
	for _, c := range []core.Color{core.ColorGray, core.ColorOrange, core.ColorBrightWhite} {
		assert.Equal(t, uint8(0xff), RGBA(c).A, c.String())
	}
}

func TestPixelRect(t *testing.T) {
	x, y, w, h := PixelRect(2, 3, 1, 2)
	assert.Equal(t, float32(2*CellW), x)
	assert.Equal(t, float32(3*CellH), y)
	assert.Equal(t, float32(CellW), w)
	assert.Equal(t, float32(2*CellH), h)
}
