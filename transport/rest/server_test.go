package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	advisor := usecase.NewAdvisor(logger, repository.NewMemorySolutionRepository())

	return New(logger, advisor)
}

func doRequest(server *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	return rec
}

func TestPing(t *testing.T) {
	rec := doRequest(newTestServer(), http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestGameHandler_InitialBoard(t *testing.T) {
	// When: asking for the initial board
	rec := doRequest(newTestServer(), http.MethodGet, "/api/v1/board", "")

	// Then: it is empty, X is to move and the value is a draw
	require.Equal(t, http.StatusOK, rec.Code)

	var solution entity.Solution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &solution))
	assert.Equal(t, tictactoe.InitialState(), solution.Board)
	assert.Equal(t, tictactoe.PlayerX, solution.Player)
	assert.Equal(t, 0, solution.Value)
	assert.NotNil(t, solution.Move)
}

func TestGameHandler_Minimax(t *testing.T) {
	t.Run("Returns the winning move", func(t *testing.T) {
		// Given: X to move with two in the top row
		body := `{"board": [["X","X",""],["O","O",""],["","",""]]}`

		// When: posting the board
		rec := doRequest(newTestServer(), http.MethodPost, "/api/v1/minimax", body)

		// Then: the engine completes the row
		require.Equal(t, http.StatusOK, rec.Code)

		var solution entity.Solution
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &solution))
		require.NotNil(t, solution.Move)
		assert.Equal(t, tictactoe.Move{Row: 0, Col: 2}, *solution.Move)
		assert.Equal(t, 1, solution.Value)
	})

	t.Run("Unreachable board is a bad request", func(t *testing.T) {
		body := `{"board": [["O","O",""],["","",""],["","",""]]}`

		rec := doRequest(newTestServer(), http.MethodPost, "/api/v1/minimax", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "not reachable")
	})

	t.Run("Play after a win is a bad request", func(t *testing.T) {
		// Given: X completed the top row and O moved anyway
		body := `{"board": [["X","X","X"],["O","O",""],["O","",""]]}`

		// When: posting the board
		rec := doRequest(newTestServer(), http.MethodPost, "/api/v1/minimax", body)

		// Then: it is refused as unreachable
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "not reachable")
	})

	t.Run("Unknown mark is a bad request", func(t *testing.T) {
		body := `{"board": [["Z","",""],["","",""],["","",""]]}`

		rec := doRequest(newTestServer(), http.MethodPost, "/api/v1/minimax", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGameHandler_MalformedBoard(t *testing.T) {
	cases := []struct {
		name  string
		board string
	}{
		{name: "Missing board", board: ``},
		{name: "Null board", board: `"board": null`},
		{name: "Single short row", board: `"board": [["X"]]`},
		{name: "Long row", board: `"board": [["X","O","X","O"],["","",""],["","",""]]`},
		{name: "Short row", board: `"board": [["X","O"],["","",""],["","",""]]`},
		{name: "Fourth row", board: `"board": [["X","",""],["","O",""],["","",""],["X","X","X"]]`},
		{name: "Two rows", board: `"board": [["","",""],["","",""]]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a server and a board that is not 3 rows of 3 cells
			server := newTestServer()

			turnFields := `"move": {"row": 0, "col": 0}`
			if tc.board != "" {
				turnFields += ", " + tc.board
			}

			// When: posting it to both endpoints
			minimax := doRequest(server, http.MethodPost, "/api/v1/minimax", "{"+tc.board+"}")
			turn := doRequest(server, http.MethodPost, "/api/v1/turn", "{"+turnFields+"}")

			// Then: both refuse it instead of searching a reshaped board
			assert.Equal(t, http.StatusBadRequest, minimax.Code, minimax.Body.String())
			assert.Equal(t, http.StatusBadRequest, turn.Code, turn.Body.String())
		})
	}

	t.Run("Missing board is reported", func(t *testing.T) {
		rec := doRequest(newTestServer(), http.MethodPost, "/api/v1/minimax", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "board is required")
	})
}

func TestGameHandler_Turn(t *testing.T) {
	t.Run("Engine replies to a move", func(t *testing.T) {
		// Given: an empty board and a move to the centre
		body := `{"board": [["","",""],["","",""],["","",""]], "move": {"row": 1, "col": 1}}`

		// When: posting the turn
		rec := doRequest(newTestServer(), http.MethodPost, "/api/v1/turn", body)

		// Then: both marks are on the board and X is to move again
		require.Equal(t, http.StatusOK, rec.Code)

		var turn entity.Turn
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &turn))
		require.NotNil(t, turn.BotMove)
		assert.Equal(t, tictactoe.MarkX, turn.Board[1][1])
		assert.Equal(t, tictactoe.PlayerX, turn.Turn)
		assert.Equal(t, tictactoe.InProgress, turn.Outcome)
	})

	t.Run("Occupied cell is a bad request", func(t *testing.T) {
		body := `{"board": [["X","",""],["","O",""],["","",""]], "move": {"row": 1, "col": 1}}`

		rec := doRequest(newTestServer(), http.MethodPost, "/api/v1/turn", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "occupied")
	})

	t.Run("Out of range cell is a bad request", func(t *testing.T) {
		body := `{"board": [["","",""],["","",""],["","",""]], "move": {"row": 5, "col": 0}}`

		rec := doRequest(newTestServer(), http.MethodPost, "/api/v1/turn", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Missing move is a bad request", func(t *testing.T) {
		body := `{"board": [["","",""],["","",""],["","",""]]}`

		rec := doRequest(newTestServer(), http.MethodPost, "/api/v1/turn", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "move is required")
	})
}
