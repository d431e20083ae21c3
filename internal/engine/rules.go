package engine

import "github.com/vovakirdan/frameloop/internal/core"

// Surface is the drawing target of phase 5. The loop depends only on this
// interface; hosts supply a terminal cell buffer, a window, or nothing.
type Surface interface {
	Clear()
	DrawRect(x, y, w, h float64, c core.Color)
	DrawCircle(x, y, r float64, c core.Color)
	DrawText(s string, x, y float64)
}

// Response resolves one collision. a has the first kind of the registered
// pair and b the second, whatever order the entities were detected in.
type Response func(w *World, a, b *Entity)

// Pair is an ordered pair of kinds used as a response table key.
type Pair struct {
	A, B Kind
}

// Responses is the collision response table. Only kind pairs present in the
// table are tested for overlap.
type Responses map[Pair]Response

// On registers the response for kinds a and b and returns the table for chaining.
func (r Responses) On(a, b Kind, fn Response) Responses {
	r[Pair{A: a, B: b}] = fn
	return r
}

// lookup finds the response for two entities, swapping them when the table
// lists their kinds in the other order.
func (r Responses) lookup(x, y *Entity) (Response, *Entity, *Entity, bool) {
	if fn, ok := r[Pair{A: x.Kind, B: y.Kind}]; ok {
		return fn, x, y, true
	}
	if fn, ok := r[Pair{A: y.Kind, B: x.Kind}]; ok {
		return fn, y, x, true
	}
	return nil, nil, nil, false
}

// Rules configures a Loop for one game. Every field is optional.
type Rules struct {
	// Setup populates a fresh world: initial entities and Data.
	Setup func(w *World)

	// Control applies the frame's input to entities (phase 1).
	Control func(w *World, in core.InputFrame)

	// Spawn is the spawn rule, run after Control (phase 1).
	Spawn func(w *World)

	// Integrate adjusts an entity before it moves (gravity, drag). Phase 2.
	Integrate func(w *World, e *Entity)

	// Exit is called for entities culled for leaving the world. Phase 2.
	Exit func(w *World, e *Entity)

	// Responses resolves collisions between kinds (phases 3 and 4).
	Responses Responses

	// Terminal reports a win or loss not already raised by Damage, Lose or Win.
	Terminal func(w *World) Outcome

	// Draw renders HUD and overlays after the entities (phase 5).
	Draw func(w *World, dst Surface)
}
