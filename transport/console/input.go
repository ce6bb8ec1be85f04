package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
)

var ErrInputClosed = errors.New("input stream is closed")

// Input - returns the human move provider. It shares the server's scanner, so
// both human players may read from the same terminal.
func (that *Server) Input() service.PlayerInputService {
	return &humanInput{server: that}
}

type humanInput struct {
	server *Server
}

// NextMove - prompts until the human supplies a legal move. Malformed lines,
// out-of-range coordinates and occupied cells are reported and re-prompted,
// never returned as errors; the game only stops here when the input stream
// ends or the context is canceled.
func (that *humanInput) NextMove(ctx context.Context, game *entity.Game) (int, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		fmt.Fprintf(that.server.out, "player %s, enter move as: row col (0-2): ", game.Turn)

		if !that.server.in.Scan() {
			if err := that.server.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read move: %w", err)
			}
			return 0, ErrInputClosed
		}

		var row, col int
		if _, err := fmt.Sscanf(that.server.in.Text(), "%d %d", &row, &col); err != nil {
			fmt.Fprintln(that.server.out, "invalid move: expected two numbers, e.g. \"1 2\"")
			continue
		}

		cell, err := entity.CellFromCoords(row, col)
		if err != nil {
			fmt.Fprintf(that.server.out, "invalid move: %v\n", err)
			continue
		}

		if game.Board[cell] != entity.EmptyCell {
			fmt.Fprintf(that.server.out, "invalid move: cell %d %d is already occupied\n", row, col)
			continue
		}

		return cell, nil
	}
}
