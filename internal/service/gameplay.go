package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Renderer shows the game to whoever is watching the match.
type Renderer interface {
	RenderBoard(game *entity.Game)
	RenderResult(game *entity.Game)
}

type GamePlayService interface {
	Play(ctx context.Context, game *entity.Game) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	inputs   map[string]PlayerInputService
	renderer Renderer
}

func NewGamePlayService(logger *slog.Logger, inputX, inputO PlayerInputService, renderer Renderer) GamePlayService {
	return &gamePlayService{
		logger: logger.With("component", "gameplay"),
		inputs: map[string]PlayerInputService{
			entity.PlayerX: inputX,
			entity.PlayerO: inputO,
		},
		renderer: renderer,
	}
}

// Play - alternates the two configured inputs until the game leaves the
// ongoing state. A rejected move from a search-backed input is a defect and
// aborts the match; the human input recovers from bad moves internally and
// only ever hands back a legal cell.
func (that *gamePlayService) Play(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	that.renderer.RenderBoard(game)

	for game.IsOngoing() {
		select {
		case <-ctx.Done():
			return game, fmt.Errorf("game %s interrupted: %w", game.ID, ctx.Err())
		default:
		}

		mark := game.Turn

		input, ok := that.inputs[mark]
		if !ok {
			return game, fmt.Errorf("no input configured for player %s", mark)
		}

		cell, err := input.NextMove(ctx, game)
		if err != nil {
			return game, fmt.Errorf("player %s failed to choose a move: %w", mark, err)
		}

		if err = game.MakeTurn(mark, cell); err != nil {
			return game, fmt.Errorf("player %s made an illegal move to cell %d: %w", mark, cell, err)
		}

		that.logger.Debug("turn accepted", "game_id", game.ID, "player", mark, "cell", cell)
		that.renderer.RenderBoard(game)
	}

	that.logger.Info("game finished", "game_id", game.ID, "winner", game.Winner)
	that.renderer.RenderResult(game)

	return game, nil
}
