package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type stubInput struct {
	cells []int
}

func (that *stubInput) NextMove(_ context.Context, _ *entity.Game) (int, error) {
	cell := that.cells[0]
	that.cells = that.cells[1:]
	return cell, nil
}

func TestNewPlayerInputService(t *testing.T) {
	human := &stubInput{}

	t.Run("Resolves the human strategy to the provided input", func(t *testing.T) {
		// When: resolving "human"
		input, err := NewPlayerInputService(entity.StrategyHuman, human)

		// Then: the transport-owned input is returned as-is
		require.NoError(t, err)
		assert.Same(t, human, input)
	})

	t.Run("Resolves the search strategies", func(t *testing.T) {
		for _, strategy := range []string{entity.StrategyMinimax, entity.StrategyAlphaBeta} {
			// When: resolving a search strategy
			input, err := NewPlayerInputService(strategy, human)

			// Then: a search-backed input is returned
			require.NoError(t, err)
			assert.NotNil(t, input)
			assert.NotSame(t, human, input)
		}
	})

	t.Run("Fails on an unknown strategy", func(t *testing.T) {
		// When: resolving a strategy nobody implements
		_, err := NewPlayerInputService("random", human)

		// Then: it should fail with ErrUnknownStrategy
		assert.ErrorIs(t, err, apperror.ErrUnknownStrategy)
	})
}

func TestSearchInputs_NextMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Takes the winning cell", func(t *testing.T) {
		// Given: a game where O can win on cell 5
		game := entity.NewGame()
		game.Board = [9]string{
			entity.PlayerX, entity.EmptyCell, entity.PlayerX,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
		}
		game.Turn = entity.PlayerO

		for _, input := range []PlayerInputService{NewMinimaxInputService(), NewAlphaBetaInputService()} {
			// When: asking for the next move
			cell, err := input.NextMove(ctx, game)

			// Then: the winning cell is chosen
			require.NoError(t, err)
			assert.Equal(t, 5, cell)
		}
	})

	t.Run("Fails when the board is full", func(t *testing.T) {
		// Given: a game with no empty cells
		game := entity.NewGame()
		game.Board = [9]string{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
		}

		for _, input := range []PlayerInputService{NewMinimaxInputService(), NewAlphaBetaInputService()} {
			// When: asking for the next move
			_, err := input.NextMove(ctx, game)

			// Then: it should fail with ErrNoAvailableMoves
			assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
		}
	})
}
