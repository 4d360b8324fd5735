package tictactoe

import "fmt"

// Mark is the content of a single board cell.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

// String returns the display glyph for the mark.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing player's mark. Empty has no opponent.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Board is a 3x3 grid in row-major order, cells indexed 0 through 8.
type Board [9]Mark

// winningLines lists every row, column and diagonal by cell index.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // Rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // Columns
	{0, 4, 8}, {2, 4, 6}, // Diagonals
}

// Available returns the indices of all empty cells in ascending order.
func (b Board) Available() []int {
	var cells []int
	for i, m := range b {
		if m == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

// IsFull reports whether no empty cell remains.
func (b Board) IsFull() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Apply places m at cell idx. It rejects out-of-range indices, occupied
// cells and non-player marks.
func (b *Board) Apply(idx int, m Mark) error {
	if idx < 0 || idx >= len(b) {
		return fmt.Errorf("cell %d out of range", idx)
	}
	if m != X && m != O {
		return fmt.Errorf("cannot place mark %q", m)
	}
	if b[idx] != Empty {
		return fmt.Errorf("cell %d already occupied by %s", idx, b[idx])
	}
	b[idx] = m
	return nil
}

// Status describes whether a match is still running or how it ended.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusDraw
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "playing"
	}
}

// Verdict is the evaluation of a board position.
type Verdict struct {
	Status Status
	Winner Mark  // Set only when Status is StatusWon
	Line   []int // Winning cell indices, nil unless won
}

// Evaluate scans the board for a completed line, then for a draw. A
// full board with a completed line counts as won, not drawn.
func (b Board) Evaluate() Verdict {
	for _, line := range winningLines {
		m := b[line[0]]
		if m != Empty && m == b[line[1]] && m == b[line[2]] {
			return Verdict{
				Status: StatusWon,
				Winner: m,
				Line:   []int{line[0], line[1], line[2]},
			}
		}
	}
	if b.IsFull() {
		return Verdict{Status: StatusDraw}
	}
	return Verdict{Status: StatusPlaying}
}

// Replay applies a recorded move sequence to an empty board. Any move
// that would be illegal on the reconstructed board fails the replay.
func Replay(moves []Move) (Board, error) {
	var b Board
	for i, mv := range moves {
		if err := b.Apply(mv.Pos, mv.Player); err != nil {
			return Board{}, fmt.Errorf("replay move %d: %w", i, err)
		}
	}
	return b, nil
}
