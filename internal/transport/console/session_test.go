package console

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/connectfour-engine/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, game *connectfour.Game, lines ...string) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	out := &bytes.Buffer{}

	session := NewSession(logger, game, strings.NewReader(strings.Join(lines, "\n")), out)
	require.NoError(t, session.Run())

	return out.String()
}

func TestSession_Run(t *testing.T) {
	t.Run("Plays a full game to a win", func(t *testing.T) {
		// Given: a scripted bottom-row win for player 1
		game := connectfour.NewGame("Lisa", "Luna")

		// When: the session consumes the moves
		output := runScript(t, game, "1", "5", "2", "5", "3", "5", "4")

		// Then: the game finished and the winner was announced
		assert.Equal(t, entity.StatusPlayer1Won, game.Status())
		assert.Contains(t, output, "Lisa wins!")
	})

	t.Run("Skips bad input and keeps playing", func(t *testing.T) {
		// Given: a script with junk, an out-of-range column and a legal move
		game := connectfour.NewGame("Lisa", "Luna")

		// When: the session consumes it
		output := runScript(t, game, "first", "9", "4")

		// Then: the complaints show up and only the legal move landed
		assert.Contains(t, output, `"first" is not a column number`)
		assert.Contains(t, output, "column 9 is out of range")
		assert.Equal(t, entity.Player1Mark, game.Board()[5][3])
		assert.Equal(t, "Luna", game.CurrentPlayer().Name)
	})

	t.Run("Reports a full column", func(t *testing.T) {
		// Given: column 1 filled by alternating drops, then one more attempt
		game := connectfour.NewGame("Lisa", "Luna")

		// When: the seventh drop hits the same column
		output := runScript(t, game, "1", "1", "1", "1", "1", "1", "1")

		// Then: the session explains and the game is still on
		assert.Contains(t, output, "column 1 is full")
		assert.Equal(t, entity.StatusPlaying, game.Status())
	})

	t.Run("Stops cleanly when input ends mid-game", func(t *testing.T) {
		// Given: a single move and then EOF
		game := connectfour.NewGame("Lisa", "Luna")

		// When: the session runs out of input
		output := runScript(t, game, "4")

		// Then: it reports the abandoned game without error
		assert.Contains(t, output, "input closed, game abandoned")
		assert.Equal(t, entity.StatusPlaying, game.Status())
	})

	t.Run("Renders the grid with 1-based column footer", func(t *testing.T) {
		// Given: an untouched game and immediate EOF
		game := connectfour.NewGame("Lisa", "Luna")

		// When: the session starts
		output := runScript(t, game)

		// Then: the empty grid and the column ruler are printed
		assert.Contains(t, output, ". . . . . . .")
		assert.Contains(t, output, "1 2 3 4 5 6 7")
	})
}
