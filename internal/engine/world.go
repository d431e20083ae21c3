package engine

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/frameloop/internal/core"
)

// Outcome is the terminal result of a game.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// World is the complete simulation state of one running game.
// It is owned by a single Loop and only mutated inside Step.
type World struct {
	Width, Height float64

	Frame     uint64 // simulated frames since reset
	Score     int
	Health    int
	MaxHealth int // 0 disables health tracking
	HighScore int // best stored score at reset, for the HUD
	Outcome   Outcome

	// Data holds game-specific scalars (cooldowns, spawn timers, ...).
	Data any

	entities []*Entity
	nextID   int
	rng      *rand.Rand
	events   []Event
}

// NewWorld creates an empty world. All randomness in a step must come from
// Rand so that equal seeds and inputs give equal worlds.
func NewWorld(width, height float64, seed int64, health int) *World {
	return &World{
		Width:     width,
		Height:    height,
		Health:    health,
		MaxHealth: health,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Rand returns the world's seeded random source.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Bounds returns the world rectangle.
func (w *World) Bounds() core.Rect {
	return core.NewRect(0, 0, w.Width, w.Height)
}

// Spawn adds an entity to the world and returns it.
// A malformed entity is a programming error and panics.
func (w *World) Spawn(e *Entity) *Entity {
	if err := e.validate(); err != nil {
		panic(fmt.Sprintf("engine: invalid %q entity: %v", e.Kind, err))
	}
	w.nextID++
	e.ID = w.nextID
	e.Alive = true
	w.entities = append(w.entities, e)
	return e
}

// Entities returns every entity in spawn order, including ones killed during
// the current step. The slice must not be retained across steps.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Live returns the alive entities of a kind, or of every kind if kind is empty.
func (w *World) Live(kind Kind) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if e.Alive && (kind == "" || e.Kind == kind) {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the first alive entity of a kind, or nil.
func (w *World) Find(kind Kind) *Entity {
	for _, e := range w.entities {
		if e.Alive && e.Kind == kind {
			return e
		}
	}
	return nil
}

// Count returns the number of alive entities of a kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Alive && e.Kind == kind {
			n++
		}
	}
	return n
}

// Kill marks an entity dead. It is removed before the frame is drawn.
func (w *World) Kill(e *Entity) {
	e.Alive = false
}

// AddScore adds points and emits a score event. A finished game keeps
// its score.
func (w *World) AddScore(points int) {
	if points == 0 || w.Over() {
		return
	}
	w.Score += points
	w.Emit(EventScore)
}

// Damage lowers health and ends the game once it reaches zero.
// Without health tracking (MaxHealth 0) it does nothing.
func (w *World) Damage(amount int) {
	if w.MaxHealth == 0 || amount <= 0 || w.Over() {
		return
	}
	w.Health -= amount
	if w.Health < 0 {
		w.Health = 0
	}
	w.Emit(EventDamage)
	if w.Health == 0 {
		w.Lose()
	}
}

// Heal restores health up to MaxHealth.
func (w *World) Heal(amount int) {
	if w.MaxHealth == 0 || amount <= 0 || w.Over() {
		return
	}
	w.Health = min(w.Health+amount, w.MaxHealth)
}

// Lose ends the game as a loss. Only the first terminal call counts.
func (w *World) Lose() {
	w.finish(OutcomeLost)
}

// Win ends the game as a win. Only the first terminal call counts.
func (w *World) Win() {
	w.finish(OutcomeWon)
}

// Over reports whether the game reached a terminal outcome.
func (w *World) Over() bool {
	return w.Outcome != OutcomeNone
}

func (w *World) finish(o Outcome) {
	if w.Over() || o == OutcomeNone {
		return
	}
	w.Outcome = o
	if o == OutcomeWon {
		w.Emit(EventWin)
	} else {
		w.Emit(EventGameOver)
	}
}

// Emit queues an event for dispatch after the current frame.
func (w *World) Emit(name string) {
	w.events = append(w.events, Event{Name: name, Frame: w.Frame})
}

func (w *World) drainEvents() []Event {
	events := w.events
	w.events = nil
	return events
}

// sweep drops dead entities, keeping spawn order.
func (w *World) sweep() {
	live := w.entities[:0]
	for _, e := range w.entities {
		if e.Alive {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = live
}

// Snapshot is a detached copy of the observable state of a world.
type Snapshot struct {
	Frame    uint64
	Score    int
	Health   int
	Outcome  Outcome
	Entities []Entity
}

// Snapshot copies the observable state of the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Frame:    w.Frame,
		Score:    w.Score,
		Health:   w.Health,
		Outcome:  w.Outcome,
		Entities: make([]Entity, 0, len(w.entities)),
	}
	for _, e := range w.entities {
		if e.Alive {
			s.Entities = append(s.Entities, *e)
		}
	}
	return s
}
