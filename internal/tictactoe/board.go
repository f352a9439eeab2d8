package tictactoe

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Size - the number of rows and columns.
const Size = 3

// Cell - the content of one square of the board.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

// Player - the side to move. It is never used to describe an empty square.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Outcome - the state of the game as seen from the board alone.
type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

// Board - a value type: assigning or passing it copies all nine cells.
type Board [Size][Size]Cell

// Move - addresses a cell by row and column, both in [0, Size).
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// lines lists every winning triple in precedence order: rows, columns, diagonals.
var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// InitialState - the empty board.
func InitialState() Board {
	return Board{}
}

// CurrentPlayer - X moves when both sides have the same number of marks, O otherwise.
// The board is assumed reachable; see Validate.
func (that Board) CurrentPlayer() Player {
	x, o := that.counts()
	if x == o {
		return PlayerX
	}

	return PlayerO
}

// LegalMoves - one move per empty cell in row-major order.
// Callers that pick among equally good moves must not rely on this order.
func (that Board) LegalMoves() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range that {
		for col, cell := range that[row] {
			if cell == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Apply - returns a new board with the current player's mark placed at move.
// The receiver is a copy, so the caller's board is never modified.
func (that Board) Apply(move Move) (Board, error) {
	if !move.inBounds() {
		return that, &IllegalMoveError{Move: move, Err: apperror.ErrInvalidCell}
	}

	if that[move.Row][move.Col] != Empty {
		return that, &IllegalMoveError{Move: move, Err: apperror.ErrCellOccupied}
	}

	return that.place(move), nil
}

// place sets the current player's mark without checking legality.
func (that Board) place(move Move) Board {
	that[move.Row][move.Col] = that.CurrentPlayer().Mark()
	return that
}

// Winner - the mark of the first complete line, checking rows, then columns, then diagonals.
func (that Board) Winner() (Player, bool) {
	for _, line := range lines {
		a := that[line[0].Row][line[0].Col]
		b := that[line[1].Row][line[1].Col]
		c := that[line[2].Row][line[2].Col]

		if a != Empty && a == b && b == c {
			return a.Player(), true
		}
	}

	return 0, false
}

// IsFull - no empty cell remains.
func (that Board) IsFull() bool {
	for row := range that {
		for _, cell := range that[row] {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// IsTerminal - somebody has won or no empty cell remains.
func (that Board) IsTerminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}

	return that.IsFull()
}

// Utility - scores the board from X's point of view: +1 X won, -1 O won, 0 otherwise.
func (that Board) Utility() int {
	winner, ok := that.Winner()
	switch {
	case !ok:
		return 0
	case winner == PlayerX:
		return 1
	default:
		return -1
	}
}

// Outcome - the winner if there is one, a draw on a full board, in progress otherwise.
func (that Board) Outcome() Outcome {
	if winner, ok := that.Winner(); ok {
		if winner == PlayerX {
			return XWins
		}
		return OWins
	}

	if that.IsFull() {
		return Draw
	}

	return InProgress
}

// Validate - checks that the board can be reached from the initial state by alternating legal moves
// that stop once somebody wins: X has as many marks as O or one more, at most one side has a
// complete line, and the winner made the last move.
func (that Board) Validate() error {
	x, o := that.counts()
	if x-o != 0 && x-o != 1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrUnreachableBoard, x, o)
	}

	seen := Empty
	for _, line := range lines {
		a := that[line[0].Row][line[0].Col]
		if a == Empty || a != that[line[1].Row][line[1].Col] || a != that[line[2].Row][line[2].Col] {
			continue
		}

		if seen != Empty && seen != a {
			return fmt.Errorf("%w: both sides have a complete line", apperror.ErrUnreachableBoard)
		}
		seen = a
	}

	switch {
	case seen == MarkX && x == o:
		return fmt.Errorf("%w: O moved after X had won", apperror.ErrUnreachableBoard)
	case seen == MarkO && x != o:
		return fmt.Errorf("%w: X moved after O had won", apperror.ErrUnreachableBoard)
	}

	return nil
}

// UnmarshalJSON - decodes exactly Size rows of Size cells, anything else is an ErrInvalidBoardShape.
func (that *Board) UnmarshalJSON(data []byte) error {
	var rows [][]Cell
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to decode board: %w", err)
	}

	if len(rows) != Size {
		return fmt.Errorf("%w: %d rows", ErrInvalidBoardShape, len(rows))
	}

	var board Board
	for row, cells := range rows {
		if len(cells) != Size {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoardShape, row, len(cells))
		}
		copy(board[row][:], cells)
	}

	*that = board

	return nil
}

// Key - encodes the board row-major as nine characters: X, O or '.' for an empty cell.
func (that Board) Key() string {
	var sb strings.Builder
	sb.Grow(Size * Size)

	for row := range that {
		for _, cell := range that[row] {
			sb.WriteByte(cell.symbol())
		}
	}

	return sb.String()
}

// String - the key split into rows, e.g. XO./.X./..O.
func (that Board) String() string {
	key := that.Key()
	return key[0:3] + "/" + key[3:6] + "/" + key[6:9]
}

// ParseBoard - decodes the format produced by Key.
func ParseBoard(key string) (Board, error) {
	var board Board

	if len(key) != Size*Size {
		return board, fmt.Errorf("%w: %q must be %d characters", ErrInvalidBoardKey, key, Size*Size)
	}

	for i := 0; i < len(key); i++ {
		switch key[i] {
		case 'X':
			board[i/Size][i%Size] = MarkX
		case 'O':
			board[i/Size][i%Size] = MarkO
		case '.':
		default:
			return board, fmt.Errorf("%w: unexpected symbol %q", ErrInvalidBoardKey, key[i])
		}
	}

	return board, nil
}

func (that Board) counts() (int, int) {
	var x, o int
	for row := range that {
		for _, cell := range that[row] {
			switch cell {
			case MarkX:
				x++
			case MarkO:
				o++
			}
		}
	}

	return x, o
}

func (that Move) inBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// String - (row,col).
func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Mark - the cell value this player writes on the board.
func (that Player) Mark() Cell {
	if that == PlayerX {
		return MarkX
	}

	return MarkO
}

// String - X, O or empty for the zero value.
func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Player - converts a non-empty mark to the side that owns it.
func (that Cell) Player() Player {
	switch that {
	case MarkX:
		return PlayerX
	case MarkO:
		return PlayerO
	default:
		return 0
	}
}

func (that Cell) symbol() byte {
	switch that {
	case MarkX:
		return 'X'
	case MarkO:
		return 'O'
	default:
		return '.'
	}
}

// MarshalText - X, O or an empty string for an empty cell.
func (that Cell) MarshalText() ([]byte, error) {
	switch that {
	case Empty:
		return []byte{}, nil
	case MarkX:
		return []byte("X"), nil
	case MarkO:
		return []byte("O"), nil
	default:
		return nil, fmt.Errorf("%w: cell value %d", apperror.ErrInvalidCell, that)
	}
}

// UnmarshalText - accepts the marks in either case and an empty string.
func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = Empty
	case "X", "x":
		*that = MarkX
	case "O", "o":
		*that = MarkO
	default:
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidCell, text)
	}

	return nil
}

// MarshalText - same as String.
func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// UnmarshalText - the inverse of MarshalText.
func (that *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "X":
		*that = PlayerX
	case "O":
		*that = PlayerO
	case "":
		*that = 0
	default:
		return fmt.Errorf("unknown player %q", text)
	}

	return nil
}

// String - in_progress, x_wins, o_wins or draw.
func (that Outcome) String() string {
	switch that {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// MarshalText - same as String.
func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// UnmarshalText - the inverse of MarshalText.
func (that *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "in_progress":
		*that = InProgress
	case "x_wins":
		*that = XWins
	case "o_wins":
		*that = OWins
	case "draw":
		*that = Draw
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}

	return nil
}
