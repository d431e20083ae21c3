package engine

import "github.com/vovakirdan/frameloop/internal/core"

// Contact is a detected collision between two alive entities, already
// ordered to match its response.
type Contact struct {
	A, B     *Entity
	response Response
}

// Step advances the world by one frame: input and spawning, movement,
// collision detection, then resolution and removal of dead entities.
// It reads no clock and draws nothing, so equal worlds, rules and inputs
// always produce equal results.
func Step(w *World, r Rules, in core.InputFrame) {
	if w.Over() {
		return
	}
	w.Frame++

	if r.Control != nil {
		r.Control(w, in)
	}
	if r.Spawn != nil {
		r.Spawn(w)
	}

	advance(w, r)

	contacts := Detect(w.entities, r.Responses)
	Resolve(w, contacts)
	w.sweep()

	if !w.Over() && r.Terminal != nil {
		w.finish(r.Terminal(w))
	}
}

// advance moves every alive entity by its velocity, then clamps or culls it.
func advance(w *World, r Rules) {
	// Entities spawned by Integrate or Exit start moving next frame.
	n := len(w.entities)
	for i := 0; i < n; i++ {
		e := w.entities[i]
		if !e.Alive {
			continue
		}
		if r.Integrate != nil {
			r.Integrate(w, e)
			if !e.Alive {
				continue
			}
		}
		e.X += e.VX
		e.Y += e.VY

		if e.Clamp {
			clampInto(w, e)
			continue
		}
		if outside(w, e) {
			e.Alive = false
			if r.Exit != nil {
				r.Exit(w, e)
			}
		}
	}
}

// outside reports whether an entity has fully left the world and is not
// heading back in. Entities spawned just off-screen moving inward survive.
func outside(w *World, e *Entity) bool {
	b := e.Bounds()
	switch {
	case b.Right() <= 0 && e.VX <= 0:
		return true
	case b.X >= w.Width && e.VX >= 0:
		return true
	case b.Bottom() <= 0 && e.VY <= 0:
		return true
	case b.Y >= w.Height && e.VY >= 0:
		return true
	}
	return false
}

func clampInto(w *World, e *Entity) {
	if e.Shape == ShapeCircle {
		e.X = core.ClampF(e.X, e.R, w.Width-e.R)
		e.Y = core.ClampF(e.Y, e.R, w.Height-e.R)
		return
	}
	e.X = core.ClampF(e.X, 0, w.Width-e.W)
	e.Y = core.ClampF(e.Y, 0, w.Height-e.H)
}

// Detect tests every pair of alive entities whose kinds have a response.
// Brute force O(n²): entity counts stay around a hundred.
func Detect(entities []*Entity, table Responses) []Contact {
	if len(table) == 0 {
		return nil
	}
	var contacts []Contact
	for i := 0; i < len(entities); i++ {
		x := entities[i]
		if !x.Alive {
			continue
		}
		for j := i + 1; j < len(entities); j++ {
			y := entities[j]
			if !y.Alive {
				continue
			}
			fn, a, b, ok := table.lookup(x, y)
			if !ok || !Overlaps(a, b) {
				continue
			}
			contacts = append(contacts, Contact{A: a, B: b, response: fn})
		}
	}
	return contacts
}

// Resolve applies responses in detection order. A contact is skipped when
// either side died earlier in the same pass, so one collision never scores
// twice and a killed entity never collides again. Resolution stops as soon
// as a response ends the game.
func Resolve(w *World, contacts []Contact) {
	for _, c := range contacts {
		if w.Over() {
			return
		}
		if !c.A.Alive || !c.B.Alive {
			continue
		}
		c.response(w, c.A, c.B)
	}
}
