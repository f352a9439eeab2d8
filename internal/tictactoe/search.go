package tictactoe

import "math"

const (
	maxUtility = 1
	minUtility = -1
)

// SearchResult - the minimax value of a board and the move that achieves it.
// Move is nil only when the board is terminal.
type SearchResult struct {
	Value int
	Move  *Move
}

// Analysis - a single search run over a board.
type Analysis struct {
	Player  Player
	Outcome Outcome
	Value   int
	Move    *Move
	Visited int
}

type searcher struct {
	visited int
}

// MaxValue - searches for X, the maximizing side.
func MaxValue(board Board) SearchResult {
	return new(searcher).maxValue(board)
}

// MinValue - searches for O, the minimizing side.
func MinValue(board Board) SearchResult {
	return new(searcher).minValue(board)
}

// Minimax - returns the optimal move for the side to play.
// It reports false on a terminal board, where there is nothing to play.
//
// Among equally valued moves the first one in LegalMoves order wins.
func Minimax(board Board) (Move, bool) {
	if board.IsTerminal() {
		return Move{}, false
	}

	result := new(searcher).search(board)
	if result.Move == nil {
		return Move{}, false
	}

	return *result.Move, true
}

// Analyze - runs the search once and reports how many boards it visited.
func Analyze(board Board) Analysis {
	s := new(searcher)

	analysis := Analysis{
		Player:  board.CurrentPlayer(),
		Outcome: board.Outcome(),
	}

	result := s.search(board)
	analysis.Value = result.Value
	analysis.Move = result.Move
	analysis.Visited = s.visited

	if analysis.Outcome != InProgress {
		analysis.Player = 0
	}

	return analysis
}

func (that *searcher) search(board Board) SearchResult {
	if board.CurrentPlayer() == PlayerX {
		return that.maxValue(board)
	}

	return that.minValue(board)
}

func (that *searcher) maxValue(board Board) SearchResult {
	that.visited++

	if board.IsTerminal() {
		return SearchResult{Value: board.Utility()}
	}

	best := SearchResult{Value: math.MinInt}
	for _, move := range board.LegalMoves() {
		value := that.minValue(board.place(move)).Value
		if value > best.Value {
			best.Value, best.Move = value, &move

			// nothing scores higher than a forced win
			if value == maxUtility {
				return best
			}
		}
	}

	return best
}

func (that *searcher) minValue(board Board) SearchResult {
	that.visited++

	if board.IsTerminal() {
		return SearchResult{Value: board.Utility()}
	}

	best := SearchResult{Value: math.MaxInt}
	for _, move := range board.LegalMoves() {
		value := that.maxValue(board.place(move)).Value
		if value < best.Value {
			best.Value, best.Move = value, &move

			if value == minUtility {
				return best
			}
		}
	}

	return best
}
