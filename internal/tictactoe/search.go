package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Terminal scores from the searching player's point of view. The only values a
// finished board can take are -1, 0 and 1; there is no depth term, so a win in
// one move and a win in five score the same.
const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0
)

// BestMoveMinimax - returns the optimal cell for mark using full game-tree
// enumeration. The board must have at least one empty cell and no winner yet.
// Ties are broken by taking the first best cell in row-major order.
func BestMoveMinimax(board [9]string, mark string) int {
	bestScore := math.MinInt
	bestCell := -1

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = mark
		score := minimax(board, mark, false)
		board[cell] = entity.EmptyCell

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell
}

// BestMoveAlphaBeta - same contract and same chosen cell as BestMoveMinimax,
// with alpha-beta pruning inside the recursion. Each root child is searched
// with a fresh full window, so its value is exact and the root comparison is
// identical to the plain search.
func BestMoveAlphaBeta(board [9]string, mark string) int {
	bestScore := math.MinInt
	bestCell := -1

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = mark
		score := alphaBeta(board, mark, false, math.MinInt, math.MaxInt)
		board[cell] = entity.EmptyCell

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell
}

// minimax - scores the board for mark assuming optimal play from both sides.
// The board array is a value, so every frame works on its own copy; moves are
// undone only to reuse the copy across loop iterations.
func minimax(board [9]string, mark string, maximizing bool) int {
	if score, terminal := terminalScore(board, mark); terminal {
		return score
	}

	moverMark := mark
	if !maximizing {
		moverMark = entity.ToggleMark(mark)
	}

	var bestScore int
	if maximizing {
		bestScore = math.MinInt
	} else {
		bestScore = math.MaxInt
	}

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = moverMark
		score := minimax(board, mark, !maximizing)
		board[cell] = entity.EmptyCell

		if maximizing {
			bestScore = max(bestScore, score)
		} else {
			bestScore = min(bestScore, score)
		}
	}

	return bestScore
}

// alphaBeta - minimax with the bounds threaded as explicit parameters. Alpha
// is the best score the maximizer can already guarantee, beta the best for the
// minimizer; once alpha >= beta the remaining siblings cannot change the
// decision available to an ancestor and are skipped.
func alphaBeta(board [9]string, mark string, maximizing bool, alpha, beta int) int {
	if score, terminal := terminalScore(board, mark); terminal {
		return score
	}

	if maximizing {
		bestScore := math.MinInt
		for cell := range board {
			if board[cell] != entity.EmptyCell {
				continue
			}

			board[cell] = mark
			score := alphaBeta(board, mark, false, alpha, beta)
			board[cell] = entity.EmptyCell

			bestScore = max(bestScore, score)
			alpha = max(alpha, score)
			if alpha >= beta {
				return bestScore
			}
		}
		return bestScore
	}

	bestScore := math.MaxInt
	opponentMark := entity.ToggleMark(mark)
	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = opponentMark
		score := alphaBeta(board, mark, true, alpha, beta)
		board[cell] = entity.EmptyCell

		bestScore = min(bestScore, score)
		beta = min(beta, score)
		if alpha >= beta {
			return bestScore
		}
	}
	return bestScore
}

func terminalScore(board [9]string, mark string) (int, bool) {
	switch winner := entity.DetermineBoardResult(board); winner {
	case entity.EmptyCell:
		return 0, false
	case entity.PlayerTie:
		return scoreDraw, true
	case mark:
		return scoreWin, true
	default:
		return scoreLoss, true
	}
}
