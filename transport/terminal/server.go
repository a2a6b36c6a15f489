package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var errQuit = errors.New("player quit")

type gameManager interface {
	CreateGame(ctx context.Context, gameType, humanMark string) (*entity.Game, error)
	HumanTurn(ctx context.Context, gameID, mark string, cell int) (*entity.Game, error)
	BotTurn(ctx context.Context, gameID string) (*entity.Game, int, error)
}

type Server struct {
	logger  *slog.Logger
	manager gameManager

	in  *bufio.Reader
	out io.Writer
}

func New(logger *slog.Logger, manager gameManager, input io.Reader, output io.Writer) *Server {
	return &Server{
		logger:  logger,
		manager: manager,

		in:  bufio.NewReader(input),
		out: output,
	}
}

// Run - drives one interactive game session from the mode prompt to the
// final board.
func (that *Server) Run(ctx context.Context) error {
	if err := that.runSession(ctx); err != nil {
		if errors.Is(err, errQuit) {
			that.printf("Exiting game.\n")
			return nil
		}

		return err
	}

	return nil
}

func (that *Server) runSession(ctx context.Context) error {
	log := that.logger.With("component", "terminal")

	that.printf("=== Tic-Tac-Toe (CLI) with Unbeatable AI ===\n")

	gameType, err := that.promptGameType()
	if err != nil {
		return err
	}

	humanMark := entity.PlayerX
	if gameType == entity.WithBotType {
		if humanMark, err = that.promptMark(); err != nil {
			return err
		}
	}

	game, err := that.manager.CreateGame(ctx, gameType, humanMark)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("session started", "game", game.ID, "type", gameType)

	return that.playGame(ctx, game)
}

func (that *Server) playGame(ctx context.Context, game *entity.Game) error {
	for game.IsOngoing() {
		that.printf("\n%s\n\n", renderBoard(game))

		player, err := game.CurrentPlayer()
		if err != nil {
			return fmt.Errorf("failed to resolve current player: %w", err)
		}

		if player.IsBot() {
			game, err = that.botMove(ctx, game)
		} else {
			game, err = that.humanMove(ctx, game, player.Mark)
		}

		if err != nil {
			return err
		}
	}

	that.printf("\n%s\n\n", renderBoard(game))
	that.printf("%s\n", resultMessage(game))

	return nil
}

func (that *Server) botMove(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	botPlayer, err := game.BotPlayer()
	if err != nil {
		return nil, fmt.Errorf("failed to find bot player: %w", err)
	}

	that.printf("AI (%s) is thinking...\n", botPlayer.Mark)

	updated, cell, err := that.manager.BotTurn(ctx, game.ID)
	if err != nil {
		return nil, fmt.Errorf("bot turn failed: %w", err)
	}

	that.printf("AI played in cell %d.\n", cell+1)

	return updated, nil
}

func (that *Server) humanMove(ctx context.Context, game *entity.Game, mark string) (*entity.Game, error) {
	for {
		that.printf("Player %s, enter your move (1-9): ", mark)

		input, err := that.readLine()
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(input) {
		case "q", "quit", "exit":
			return nil, errQuit
		}

		cell, err := strconv.Atoi(input)
		if err != nil {
			that.printf("Please enter a number 1-9 (or 'q' to quit).\n")
			continue
		}

		if cell < 1 || cell > 9 {
			that.printf("Invalid cell number. Choose 1-9.\n")
			continue
		}

		updated, err := that.manager.HumanTurn(ctx, game.ID, mark, cell-1)
		switch {
		case err == nil:
			return updated, nil
		case errors.Is(err, apperror.ErrCellOccupied):
			that.printf("Cell already taken. Pick another.\n")
		default:
			return nil, fmt.Errorf("failed to make turn: %w", err)
		}
	}
}

func (that *Server) promptGameType() (string, error) {
	for {
		that.printf("Select mode:\n1) Human vs AI\n2) Human vs Human\n")
		that.printf("Choice [1]: ")

		choice, err := that.readLine()
		if err != nil {
			return "", err
		}

		switch choice {
		case "", "1":
			return entity.WithBotType, nil
		case "2":
			return entity.HumansType, nil
		}

		that.printf("Invalid. Enter 1 or 2.\n")
	}
}

func (that *Server) promptMark() (string, error) {
	for {
		that.printf("Choose your symbol (X/O). X goes first. [Default X]: ")

		choice, err := that.readLine()
		if err != nil {
			return "", err
		}

		switch strings.ToUpper(choice) {
		case "", entity.PlayerX:
			return entity.PlayerX, nil
		case entity.PlayerO:
			return entity.PlayerO, nil
		}

		that.printf("Invalid choice; enter X or O.\n")
	}
}

// readLine - reads one trimmed input line; end of input means the player
// is gone.
func (that *Server) readLine() (string, error) {
	line, err := that.in.ReadString('\n')
	trimmed := strings.TrimSpace(line)

	if err != nil {
		if errors.Is(err, io.EOF) && trimmed != "" {
			return trimmed, nil
		}

		if errors.Is(err, io.EOF) {
			return "", errQuit
		}

		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return trimmed, nil
}

func (that *Server) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
