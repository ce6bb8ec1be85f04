package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 3
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game represents a single match: the board in row-major order, whose turn it
// is, and the outcome once the match is over.
type Game struct {
	ID      string
	Board   [9]string
	Turn    string
	Winner  string
	Status  string
	Players []*Player
}

// NewGame - creates an empty board with X to move.
func NewGame(players ...*Player) *Game {
	return &Game{
		ID:      uuid.NewString(),
		Board:   [9]string{},
		Turn:    PlayerX,
		Status:  StatusOngoing,
		Players: players,
	}
}

// MakeTurn - places playerMark on the given cell. The board is left untouched
// when the move is rejected.
func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board[cell] = playerMark
	that.Turn = ToggleMark(playerMark)
	that.UpdateGameState()

	return nil
}

// DetermineGameResult - returns the winning mark, PlayerTie when the board is
// full, or EmptyCell while the game continues.
func (that *Game) DetermineGameResult() string {
	return DetermineBoardResult(that.Board)
}

// UpdateGameState - folds the board result into Winner, Status and Turn.
func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	default:
		that.Status = StatusOngoing
	}
}

// AvailableCells - lists the empty cells in row-major order.
func (that *Game) AvailableCells() []int {
	cells := make([]int, 0, len(that.Board))
	for i, cell := range that.Board {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// DetermineBoardResult - checks the 8 winning lines, then looks for a tie.
func DetermineBoardResult(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	for _, cell := range board {
		if cell == EmptyCell {
			return EmptyCell
		}
	}

	return PlayerTie
}

// CellFromCoords - converts a (row, col) pair into a board index.
func CellFromCoords(row, col int) (int, error) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return 0, fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}
	return row*BoardSize + col, nil
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
