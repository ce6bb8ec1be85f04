package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type gamePlay interface {
	Play(ctx context.Context, game *entity.Game) (*entity.Game, error)
}

// Server drives a match over a line-based text terminal: it renders the board
// after every accepted move, prompts the human players and announces the
// result.
type Server struct {
	logger *slog.Logger

	in  *bufio.Scanner
	out io.Writer

	gamePlay gamePlay
	players  []*entity.Player
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, players ...*entity.Player) *Server {
	return &Server{
		logger:  logger.With("component", "console"),
		in:      bufio.NewScanner(in),
		out:     out,
		players: players,
	}
}

// SetGamePlay - attaches the game loop once it has been built; the loop needs
// the server as renderer and human input first.
func (that *Server) SetGamePlay(gp gamePlay) {
	that.gamePlay = gp
}

// Start - runs a single match to completion.
func (that *Server) Start(ctx context.Context) error {
	game := entity.NewGame(that.players...)

	for _, player := range game.Players {
		that.logger.Info("player joined", "game_id", game.ID, "mark", player.Mark, "strategy", player.Strategy)
	}
	that.logger.Info("game started", "game_id", game.ID)

	if _, err := that.gamePlay.Play(ctx, game); err != nil {
		return fmt.Errorf("failed to play game: %w", err)
	}

	return nil
}

// RenderBoard - prints the grid with row and column indices, empty cells
// shown as dots.
func (that *Server) RenderBoard(game *entity.Game) {
	var sb strings.Builder

	sb.WriteString("\n    0   1   2\n")
	for row := 0; row < entity.BoardSize; row++ {
		sb.WriteString(fmt.Sprintf("%d ", row))
		for col := 0; col < entity.BoardSize; col++ {
			mark := game.Board[row*entity.BoardSize+col]
			if mark == entity.EmptyCell {
				mark = "."
			}
			sb.WriteString(fmt.Sprintf("  %s ", mark))
			if col < entity.BoardSize-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
		if row < entity.BoardSize-1 {
			sb.WriteString("  ----+---+----\n")
		}
	}

	fmt.Fprint(that.out, sb.String())
}

// RenderResult - announces the winner or the draw.
func (that *Server) RenderResult(game *entity.Game) {
	if game.Winner == entity.PlayerTie {
		fmt.Fprintln(that.out, "\ngame over: draw")
		return
	}
	fmt.Fprintf(that.out, "\ngame over: player %s wins\n", game.Winner)
}
