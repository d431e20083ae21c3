package engine

// Event names emitted by the world. Games may emit their own names too.
const (
	EventHit      = "hit"
	EventScore    = "score"
	EventDamage   = "damage"
	EventSpawn    = "spawn"
	EventGameOver = "game_over"
	EventWin      = "win"
)

// Event is a side effect request raised during a step and dispatched after
// the frame completes.
type Event struct {
	Name  string
	Frame uint64
}

// SoundPlayer is the fire-and-forget audio hook. Play must not block.
type SoundPlayer interface {
	Play(event string)
}

// ScoreKeeper is the external high-score store the loop reads at reset and
// writes on game over.
type ScoreKeeper interface {
	HighScore(gameID string) (int, error)
	SaveScore(gameID string, score int) (int64, error)
}

// Result describes a finished game.
type Result struct {
	GameID    string
	Outcome   Outcome
	Score     int
	HighScore int  // best score known before this game
	NewBest   bool // Score beat HighScore
	Health    int
	Frames    uint64
}
