package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-engine/internal/apperror"
	"github.com/rocketscienceinc/connectfour-engine/internal/entity"
)

// winLength is how many marks in a row win the game.
const winLength = 4

const (
	player1 = 0
	player2 = 1
)

// Game is a single Connect Four match between two players. It owns the
// board, the per-column fill cursors and the turn state; all mutation goes
// through MakeMove.
type Game struct {
	board   entity.Board
	next    [entity.Columns]int
	players [2]*entity.Player
	mover   int
	status  entity.Status
}

// NewGame creates a match between the two named players with an empty
// board. Player 1 always moves first.
func NewGame(playerName1, playerName2 string) *Game {
	game := &Game{
		players: [2]*entity.Player{
			{Name: playerName1},
			{Name: playerName2},
		},
		mover:  player1,
		status: entity.StatusPlaying,
	}

	for col := range game.next {
		game.next[col] = entity.Rows - 1
	}

	return game
}

// MakeMove drops the current player's mark into the given 1-based column.
// A rejected move leaves the game completely unchanged.
func (that *Game) MakeMove(column int) error {
	if that.status.IsFinished() {
		return apperror.ErrGameFinished
	}

	if column < 1 || column > entity.Columns {
		return fmt.Errorf("%w: column %d, want 1 to %d", apperror.ErrInvalidColumn, column, entity.Columns)
	}

	col := column - 1

	row := that.next[col]
	if row < 0 {
		return fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	mark := that.markOf(that.mover)
	that.board[row][col] = mark
	that.next[col] = row - 1

	switch {
	case that.hasWinningLine(mark):
		that.players[that.mover].Winner = true
		that.status = that.winStatusOf(that.mover)
	case that.board.IsFull():
		that.status = entity.StatusDraw
	}

	// the turn pointer advances even on the final move, so once the game
	// is over CurrentPlayer reports whoever was about to move next
	that.mover = (that.mover + 1) % 2

	return nil
}

// Status returns the current game status.
func (that *Game) Status() entity.Status {
	return that.status
}

// Board returns an independent copy of the grid; mutating it never affects
// the game.
func (that *Game) Board() entity.Board {
	return that.board
}

// CurrentPlayer returns the player whose move it is next.
func (that *Game) CurrentPlayer() *entity.Player {
	return that.players[that.mover]
}

func (that *Game) markOf(mover int) entity.Mark {
	if mover == player1 {
		return entity.Player1Mark
	}
	return entity.Player2Mark
}

func (that *Game) winStatusOf(mover int) entity.Status {
	if mover == player1 {
		return entity.StatusPlayer1Won
	}
	return entity.StatusPlayer2Won
}
