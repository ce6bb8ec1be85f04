package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// PlayerInputService produces a move for the side whose turn it is. The three
// variants (human prompt, minimax, alpha-beta) all satisfy this contract, so
// the game loop treats them uniformly.
type PlayerInputService interface {
	NextMove(ctx context.Context, game *entity.Game) (int, error)
}

// NewPlayerInputService - resolves a configured strategy name into an input
// variant. The human variant is owned by the transport and passed in.
func NewPlayerInputService(strategy string, human PlayerInputService) (PlayerInputService, error) {
	switch strategy {
	case entity.StrategyHuman:
		return human, nil
	case entity.StrategyMinimax:
		return NewMinimaxInputService(), nil
	case entity.StrategyAlphaBeta:
		return NewAlphaBetaInputService(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, strategy)
	}
}

type minimaxInputService struct{}

func NewMinimaxInputService() PlayerInputService {
	return &minimaxInputService{}
}

func (that *minimaxInputService) NextMove(_ context.Context, game *entity.Game) (int, error) {
	if len(game.AvailableCells()) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return tictactoe.BestMoveMinimax(game.Board, game.Turn), nil
}

type alphaBetaInputService struct{}

func NewAlphaBetaInputService() PlayerInputService {
	return &alphaBetaInputService{}
}

func (that *alphaBetaInputService) NextMove(_ context.Context, game *entity.Game) (int, error) {
	if len(game.AvailableCells()) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return tictactoe.BestMoveAlphaBeta(game.Board, game.Turn), nil
}
