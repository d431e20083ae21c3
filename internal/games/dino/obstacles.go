package dino

import (
	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
)

// spawnCactus places a cactus at the right edge, standing on the ground,
// and returns the distance to the next one.
func (g *Game) spawnCactus(w *engine.World, st *state) float64 {
	ob := g.cfg.Obstacles
	rng := w.Rand()

	width := ob.MinWidth
	if ob.MaxWidth > ob.MinWidth {
		width += rng.Intn(ob.MaxWidth - ob.MinWidth + 1)
	}
	height := ob.MinHeight
	if ob.MaxHeight > ob.MinHeight {
		height += rng.Intn(ob.MaxHeight - ob.MinHeight + 1)
	}

	cactus := w.Spawn(engine.NewRect(KindCactus, w.Width, st.groundY-float64(height), float64(width), float64(height)))
	cactus.VX = -st.speed
	cactus.Color = core.ColorGreen

	// Spacing varies between the minimum and the difficulty-scaled maximum.
	current := max(st.diff.Spacing(ob.MaxSpacing, w.Score, w.Frame), ob.MinSpacing)
	spacing := ob.MinSpacing
	if r := current - ob.MinSpacing; r > 0 {
		spacing += rng.Intn(r + 1)
	}
	return float64(width + spacing)
}
