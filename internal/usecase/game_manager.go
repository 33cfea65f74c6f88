package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour-engine/internal/apperror"
	"github.com/rocketscienceinc/connectfour-engine/internal/connectfour"
)

type gameRepo interface {
	Save(id string, game *connectfour.Game) error
	GetByID(id string) (*connectfour.Game, error)
	DeleteByID(id string) error
}

// GameManager runs any number of independent matches keyed by game ID.
// Games share nothing with each other beyond the repository they live in.
type GameManager struct {
	logger *slog.Logger
	games  gameRepo
}

func NewGameManager(logger *slog.Logger, games gameRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		games:  games,
	}
}

func (that *GameManager) CreateGame(id, playerName1, playerName2 string) (*connectfour.Game, error) {
	if _, err := that.games.GetByID(id); err == nil {
		return nil, fmt.Errorf("%w: id %s", apperror.ErrGameAlreadyExists, id)
	} else if !errors.Is(err, apperror.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to check existing game: %w", err)
	}

	game := connectfour.NewGame(playerName1, playerName2)
	if err := that.games.Save(id, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game created", "id", id, "player1", playerName1, "player2", playerName2)

	return game, nil
}

func (that *GameManager) GetGame(id string) (*connectfour.Game, error) {
	game, err := that.games.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *GameManager) MakeMove(id string, column int) (*connectfour.Game, error) {
	game, err := that.games.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.MakeMove(column); err != nil {
		return game, fmt.Errorf("failed to make move: %w", err)
	}

	if game.Status().IsFinished() {
		that.logger.Info("game finished", "id", id, "status", game.Status())
	}

	return game, nil
}

func (that *GameManager) DeleteGame(id string) error {
	if err := that.games.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	that.logger.Info("game deleted", "id", id)

	return nil
}
