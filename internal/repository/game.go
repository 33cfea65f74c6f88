package repository

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/connectfour-engine/internal/apperror"
	"github.com/rocketscienceinc/connectfour-engine/internal/connectfour"
)

type GameRepository interface {
	Save(id string, game *connectfour.Game) error
	GetByID(id string) (*connectfour.Game, error)
	DeleteByID(id string) error
}

// inMemoryGames keeps games in a process-local map. Nothing outlives the
// run; a finished or deleted game is simply gone.
type inMemoryGames struct {
	mu    sync.RWMutex
	games map[string]*connectfour.Game
}

func NewGameRepository() GameRepository {
	return &inMemoryGames{
		games: make(map[string]*connectfour.Game),
	}
}

func (that *inMemoryGames) Save(id string, game *connectfour.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[id] = game

	return nil
}

func (that *inMemoryGames) GetByID(id string) (*connectfour.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", apperror.ErrGameNotFound, id)
	}

	return game, nil
}

func (that *inMemoryGames) DeleteByID(id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return fmt.Errorf("%w: id %s", apperror.ErrGameNotFound, id)
	}

	delete(that.games, id)

	return nil
}
