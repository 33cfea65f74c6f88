package repository

import (
	"testing"

	"github.com/rocketscienceinc/connectfour-engine/internal/apperror"
	"github.com/rocketscienceinc/connectfour-engine/internal/connectfour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository(t *testing.T) {
	t.Run("Save and get round trip", func(t *testing.T) {
		// Given: an empty repository and a game
		repo := NewGameRepository()
		game := connectfour.NewGame("Lisa", "Luna")

		// When: saving and fetching it back
		require.NoError(t, repo.Save("match-1", game))
		got, err := repo.GetByID("match-1")

		// Then: the same game instance comes back
		require.NoError(t, err)
		assert.Same(t, game, got)
	})

	t.Run("Get unknown id", func(t *testing.T) {
		// Given: an empty repository
		repo := NewGameRepository()

		// When: fetching a game that was never saved
		_, err := repo.GetByID("missing")

		// Then: a not-found error is returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Delete removes the game", func(t *testing.T) {
		// Given: a repository holding one game
		repo := NewGameRepository()
		require.NoError(t, repo.Save("match-1", connectfour.NewGame("Lisa", "Luna")))

		// When: deleting it
		require.NoError(t, repo.DeleteByID("match-1"))

		// Then: it is gone, and a second delete reports not found
		_, err := repo.GetByID("match-1")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		require.ErrorIs(t, repo.DeleteByID("match-1"), apperror.ErrGameNotFound)
	})
}
