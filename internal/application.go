package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	playerX := &entity.Player{Mark: entity.PlayerX, Strategy: conf.Players.X}
	playerO := &entity.Player{Mark: entity.PlayerO, Strategy: conf.Players.O}

	consoleServer := console.New(logger, os.Stdin, os.Stdout, playerX, playerO)

	inputX, err := service.NewPlayerInputService(conf.Players.X, consoleServer.Input())
	if err != nil {
		return fmt.Errorf("could not configure player X: %w", err)
	}

	inputO, err := service.NewPlayerInputService(conf.Players.O, consoleServer.Input())
	if err != nil {
		return fmt.Errorf("could not configure player O: %w", err)
	}

	gamePlay := service.NewGamePlayService(logger, inputX, inputO, consoleServer)
	consoleServer.SetGamePlay(gamePlay)

	log.Info("Starting game", "player_x", conf.Players.X, "player_o", conf.Players.O)
	if err = consoleServer.Start(ctx); err != nil {
		return fmt.Errorf("console server error: %w", err)
	}

	return nil
}
