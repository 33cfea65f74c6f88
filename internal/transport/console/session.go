package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour-engine/internal/apperror"
	"github.com/rocketscienceinc/connectfour-engine/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-engine/internal/entity"
)

// Session plays a single two-seat game on one terminal: both players type
// their column numbers into the same input. The session is a client of the
// engine, not part of the rules.
type Session struct {
	logger *slog.Logger
	game   *connectfour.Game
	in     *bufio.Scanner
	out    io.Writer
}

func NewSession(logger *slog.Logger, game *connectfour.Game, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger: logger.With("component", "console"),
		game:   game,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run drives the game until it finishes or input runs out.
func (that *Session) Run() error {
	that.writeBoard()

	for that.game.Status().IsPlaying() {
		mover := that.game.CurrentPlayer()
		fmt.Fprintf(that.out, "%s, choose a column [1-%d]: ", mover.Name, entity.Columns)

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			fmt.Fprintln(that.out, "\ninput closed, game abandoned")
			return nil
		}

		line := strings.TrimSpace(that.in.Text())

		column, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(that.out, "%q is not a column number\n", line)
			continue
		}

		if err = that.game.MakeMove(column); err != nil {
			that.writeMoveError(column, err)
			continue
		}

		that.logger.Debug("move accepted", "player", mover.Name, "column", column)
		that.writeBoard()

		if that.game.Status().IsFinished() {
			that.writeResult(mover)
		}
	}

	return nil
}

func (that *Session) writeMoveError(column int, err error) {
	switch {
	case errors.Is(err, apperror.ErrInvalidColumn):
		fmt.Fprintf(that.out, "column %d is out of range, enter 1 to %d\n", column, entity.Columns)
	case errors.Is(err, apperror.ErrColumnFull):
		fmt.Fprintf(that.out, "column %d is full, choose another\n", column)
	default:
		fmt.Fprintf(that.out, "move rejected: %v\n", err)
	}
}

func (that *Session) writeBoard() {
	board := that.game.Board()

	for row := 0; row < entity.Rows; row++ {
		cells := make([]string, entity.Columns)
		for col := 0; col < entity.Columns; col++ {
			cells[col] = cellRune(board[row][col])
		}
		fmt.Fprintln(that.out, strings.Join(cells, " "))
	}
	fmt.Fprintln(that.out, "1 2 3 4 5 6 7")
}

func (that *Session) writeResult(mover *entity.Player) {
	if that.game.Status().IsDraw() {
		fmt.Fprintln(that.out, "the board is full, it's a draw")
		return
	}

	fmt.Fprintf(that.out, "%s wins!\n", mover.Name)
}

func cellRune(mark entity.Mark) string {
	switch mark {
	case entity.Player1Mark:
		return "1"
	case entity.Player2Mark:
		return "2"
	default:
		return "."
	}
}
