package flappy

import (
	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
)

// Pipe describes one spawned pipe pair.
type Pipe struct {
	X         float64 // left edge
	GapY      int     // first row of the gap
	GapHeight int
}

// spawnPipes adds a pipe pair at the right edge once the newest pipe has
// moved far enough left.
func (g *Game) spawnPipes(w *engine.World, st *state) {
	spacing := st.diff.Spacing(g.cfg.Obstacles.PipeSpacing, w.Score, w.Frame)

	rightmost := -1.0
	for _, e := range w.Live(KindPipe) {
		rightmost = max(rightmost, e.X)
	}
	if rightmost >= 0 && rightmost >= w.Width-float64(spacing) {
		return
	}

	p := g.nextPipe(w, st)
	g.placePipe(w, st, p)
}

// nextPipe picks the gap for a new pipe using the world's random source.
func (g *Game) nextPipe(w *engine.World, st *state) Pipe {
	ob := g.cfg.Obstacles

	// Gap varies between the minimum and the current difficulty-scaled maximum.
	currentGap := st.diff.GapSize(ob.MaxGapSize, ob.MinGapSize, w.Score, w.Frame)
	gapHeight := ob.MinGapSize
	if r := currentGap - ob.MinGapSize; r > 0 {
		gapHeight += w.Rand().Intn(r + 1)
	}

	minGapY := ob.TopMargin
	maxGapY := int(st.groundY) - ob.BottomMargin - gapHeight
	if maxGapY < minGapY {
		maxGapY = minGapY
	}
	gapY := minGapY
	if maxGapY > minGapY {
		gapY += w.Rand().Intn(maxGapY - minGapY + 1)
	}

	return Pipe{X: w.Width, GapY: gapY, GapHeight: gapHeight}
}

// placePipe spawns the top and bottom halves plus the scoring gate. Halves
// that would have no height on a tiny screen are left out.
func (g *Game) placePipe(w *engine.World, st *state, p Pipe) {
	width := float64(g.cfg.Obstacles.PipeWidth)
	bottomY := float64(p.GapY + p.GapHeight)

	if p.GapY > 0 {
		top := w.Spawn(engine.NewRect(KindPipe, p.X, 0, width, float64(p.GapY)))
		top.VX = -st.speed
		top.Color = core.ColorGreen
	}
	if h := st.groundY - bottomY; h > 0 {
		bottom := w.Spawn(engine.NewRect(KindPipe, p.X, bottomY, width, h))
		bottom.VX = -st.speed
		bottom.Color = core.ColorGreen
	}

	gate := w.Spawn(engine.NewRect(KindGate, p.X+width, float64(p.GapY), 1, float64(p.GapHeight)))
	gate.VX = -st.speed
	gate.Hidden = true
}
