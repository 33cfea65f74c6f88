package application

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/connectfour-engine/internal/config"
	"github.com/rocketscienceinc/connectfour-engine/internal/repository"
	"github.com/rocketscienceinc/connectfour-engine/internal/transport/console"
	"github.com/rocketscienceinc/connectfour-engine/internal/usecase"
)

const localGameID = "local"

// RunApp - runs a local two-player game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	gameRepo := repository.NewGameRepository()
	gameManager := usecase.NewGameManager(logger, gameRepo)

	game, err := gameManager.CreateGame(localGameID, conf.Players.Player1, conf.Players.Player2)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	log.Info("Starting game", "player1", conf.Players.Player1, "player2", conf.Players.Player2)

	session := console.NewSession(logger, game, os.Stdin, os.Stdout)
	if err = session.Run(); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	log.Info("Game over", "status", game.Status())

	if err = gameManager.DeleteGame(localGameID); err != nil {
		return fmt.Errorf("could not delete game: %w", err)
	}

	return nil
}
