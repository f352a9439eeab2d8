package entity

import "github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"

// Solution - the searched value of a board and the move to play on it.
type Solution struct {
	Board   tictactoe.Board   `json:"board"`
	Player  tictactoe.Player  `json:"player,omitempty"`
	Outcome tictactoe.Outcome `json:"outcome"`
	Value   int               `json:"value"`
	Move    *tictactoe.Move   `json:"move,omitempty"`
	Visited int               `json:"visited,omitempty"`
	Cached  bool              `json:"cached"`
}

// Turn - the result of a caller's move followed by the engine's reply.
type Turn struct {
	Board      tictactoe.Board   `json:"board"`
	PlayerMove tictactoe.Move    `json:"player_move"`
	BotMove    *tictactoe.Move   `json:"bot_move,omitempty"`
	Outcome    tictactoe.Outcome `json:"outcome"`
	Winner     tictactoe.Player  `json:"winner,omitempty"`
	Turn       tictactoe.Player  `json:"player_turn,omitempty"`
}

func NewSolution(board tictactoe.Board, analysis tictactoe.Analysis) *Solution {
	return &Solution{
		Board:   board,
		Player:  analysis.Player,
		Outcome: analysis.Outcome,
		Value:   analysis.Value,
		Move:    analysis.Move,
		Visited: analysis.Visited,
	}
}

func (that *Solution) IsFinished() bool {
	return that.Outcome != tictactoe.InProgress
}

func (that *Turn) IsFinished() bool {
	return that.Outcome != tictactoe.InProgress
}
