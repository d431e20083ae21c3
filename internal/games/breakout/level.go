package breakout

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickEmpty  BrickType = iota
	BrickNormal           // destroyed in one hit
	BrickHard             // two hits
	BrickSolid            // indestructible, does not count toward clearing
)

// Brick is one cell of a level layout.
type Brick struct {
	Type   BrickType
	Points int
	HP     int
}

// Level is a named brick layout. Rows are top to bottom.
type Level struct {
	ID     string
	Name   string
	Width  int // columns
	Bricks [][]Brick
}

// Breakable counts the bricks that must be destroyed to clear the level.
func (l *Level) Breakable() int {
	n := 0
	for _, row := range l.Bricks {
		for _, b := range row {
			if b.Type == BrickNormal || b.Type == BrickHard {
				n++
			}
		}
	}
	return n
}

// ParseLevel creates a Level from an ASCII map:
//
//	'#' = normal brick (10 points)
//	'1'-'9' = normal brick worth 10 * digit
//	'H' = hard brick (2 HP, 20 points)
//	'X' = solid brick
//	anything else = empty
func ParseLevel(id, name string, lines []string) *Level {
	level := &Level{ID: id, Name: name, Bricks: make([][]Brick, len(lines))}
	for _, line := range lines {
		level.Width = max(level.Width, len(line))
	}
	for row, line := range lines {
		level.Bricks[row] = make([]Brick, level.Width)
		for col := 0; col < len(line); col++ {
			ch := line[col]
			var b Brick
			switch {
			case ch == '#':
				b = Brick{Type: BrickNormal, Points: 10, HP: 1}
			case ch >= '1' && ch <= '9':
				b = Brick{Type: BrickNormal, Points: int(ch-'0') * 10, HP: 1}
			case ch == 'H' || ch == 'h':
				b = Brick{Type: BrickHard, Points: 20, HP: 2}
			case ch == 'X' || ch == 'x':
				b = Brick{Type: BrickSolid}
			}
			level.Bricks[row][col] = b
		}
	}
	return level
}

// Levels returns the campaign in play order.
func Levels() []*Level {
	return []*Level{
		ParseLevel("classic", "Classic", []string{
			"####################",
			"####################",
			"####################",
			"####################",
			"####################",
		}),
		ParseLevel("pyramid", "Pyramid", []string{
			"........####........",
			"......########......",
			"....############....",
			"..################..",
			"####################",
		}),
		ParseLevel("checker", "Checkerboard", []string{
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
		}),
		ParseLevel("fortress", "Fortress", []string{
			"HHHHHHHHHHHHHHHHHHHH",
			"H..................H",
			"H.######5555######.H",
			"H.################.H",
			"H..................H",
			"HHHHHHHHHHHHHHHHHHHH",
		}),
		ParseLevel("castle", "Castle", []string{
			"X..X....X..X....X..X",
			"XXXX....XXXX....XXXX",
			"....................",
			"HHHHHHHHHHHHHHHHHHHH",
			"####################",
			"####################",
		}),
	}
}
