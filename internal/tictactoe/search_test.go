package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimax(t *testing.T) {
	t.Run("Takes the immediate win", func(t *testing.T) {
		// Given: X to move with two in the top row
		board := Board{{x, x, e}, {o, o, e}, {e, e, e}}
		require.Equal(t, PlayerX, board.CurrentPlayer())

		// When: asking for the best move
		move, ok := Minimax(board)

		// Then: X completes the top row and wins
		require.True(t, ok)
		assert.Equal(t, Move{Row: 0, Col: 2}, move)

		next, err := board.Apply(move)
		require.NoError(t, err)
		assert.Equal(t, 1, next.Utility())
	})

	t.Run("O blocks a forced loss", func(t *testing.T) {
		// Given: X threatens the top row and O has no win of its own
		board := Board{{x, x, e}, {e, o, e}, {e, e, e}}
		require.Equal(t, PlayerO, board.CurrentPlayer())

		// When: asking for O's best move
		move, ok := Minimax(board)

		// Then: O must take the corner, every other move loses
		require.True(t, ok)
		assert.Equal(t, Move{Row: 0, Col: 2}, move)
		assert.Equal(t, 0, MinValue(board).Value)
	})

	t.Run("No move on a terminal board", func(t *testing.T) {
		board := Board{{x, o, x}, {x, o, e}, {e, o, e}}

		_, ok := Minimax(board)

		assert.False(t, ok)
	})

	t.Run("No move on a full board", func(t *testing.T) {
		board := Board{{x, o, x}, {x, o, o}, {o, x, x}}

		_, ok := Minimax(board)

		assert.False(t, ok)
	})

	t.Run("Perfect play from the initial state is a draw", func(t *testing.T) {
		// Given: the initial board
		board := InitialState()

		// When: both sides play the engine's move until the game ends
		for !board.IsTerminal() {
			move, ok := Minimax(board)
			require.True(t, ok)

			next, err := board.Apply(move)
			require.NoError(t, err)
			board = next
		}

		// Then: nobody wins
		assert.Equal(t, 0, board.Utility())
		assert.Equal(t, Draw, board.Outcome())
	})
}

func TestValueFunctions(t *testing.T) {
	t.Run("Terminal boards return their utility and no move", func(t *testing.T) {
		board := Board{{o, x, x}, {e, x, o}, {x, o, e}}

		maxResult := MaxValue(board)
		minResult := MinValue(board)

		assert.Equal(t, SearchResult{Value: 1}, maxResult)
		assert.Equal(t, SearchResult{Value: 1}, minResult)
	})

	t.Run("Initial state is worth zero", func(t *testing.T) {
		result := MaxValue(InitialState())

		assert.Equal(t, 0, result.Value)
		require.NotNil(t, result.Move)
	})

	t.Run("O finds a forced win", func(t *testing.T) {
		// Given: O to move with two in the middle column
		board := Board{{x, o, x}, {x, o, e}, {e, e, e}}
		require.Equal(t, PlayerO, board.CurrentPlayer())

		// When: minimizing
		result := MinValue(board)

		// Then: the value is a win for O, reached by completing the column
		assert.Equal(t, -1, result.Value)
		require.NotNil(t, result.Move)
		assert.Equal(t, Move{Row: 2, Col: 1}, *result.Move)
	})
}

func TestAnalyze(t *testing.T) {
	t.Run("Stops searching after a forced win", func(t *testing.T) {
		// Given: the first legal move in row-major order wins outright
		board := Board{{x, x, e}, {o, o, e}, {e, e, e}}

		// When: analysing the board
		analysis := Analyze(board)

		// Then: only the root and the winning child are visited
		assert.Equal(t, PlayerX, analysis.Player)
		assert.Equal(t, InProgress, analysis.Outcome)
		assert.Equal(t, 1, analysis.Value)
		require.NotNil(t, analysis.Move)
		assert.Equal(t, Move{Row: 0, Col: 2}, *analysis.Move)
		assert.Equal(t, 2, analysis.Visited)
	})

	t.Run("Terminal board", func(t *testing.T) {
		board := Board{{x, x, x}, {o, o, e}, {e, e, e}}

		analysis := Analyze(board)

		assert.Equal(t, Player(0), analysis.Player)
		assert.Equal(t, XWins, analysis.Outcome)
		assert.Equal(t, 1, analysis.Value)
		assert.Nil(t, analysis.Move)
		assert.Equal(t, 1, analysis.Visited)
	})
}

// TestMinimaxIsOptimal compares the engine with an exhaustive, memoized
// reference on every reachable board. Only values are compared, since the
// move chosen among equally good ones depends on enumeration order.
func TestMinimaxIsOptimal(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search")
	}

	memo := make(map[Board]int)
	var reference func(board Board) int
	reference = func(board Board) int {
		if value, ok := memo[board]; ok {
			return value
		}

		if board.IsTerminal() {
			memo[board] = board.Utility()
			return memo[board]
		}

		maximizing := board.CurrentPlayer() == PlayerX
		best := 2
		if maximizing {
			best = -2
		}

		for _, move := range board.LegalMoves() {
			value := reference(board.place(move))
			if (maximizing && value > best) || (!maximizing && value < best) {
				best = value
			}
		}

		memo[board] = best
		return best
	}

	require.Equal(t, 0, reference(InitialState()))

	for board, want := range memo {
		if board.IsTerminal() {
			continue
		}

		var got SearchResult
		if board.CurrentPlayer() == PlayerX {
			got = MaxValue(board)
		} else {
			got = MinValue(board)
		}
		require.Equal(t, want, got.Value, board.String())

		move, ok := Minimax(board)
		require.True(t, ok, board.String())

		next, err := board.Apply(move)
		require.NoError(t, err)
		require.Equal(t, want, reference(next), "move %s on %s", move, board)
	}
}
