package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
)

var ErrUnknownGameType = errors.New("unknown game type")

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	botService botService
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, botService botService) *GameManager {
	return &GameManager{
		logger: logger,

		gameRepo:   gameRepo,
		botService: botService,
	}
}

// CreateGame - starts a new game of the given type. For games against the
// bot, humanMark decides which side the human plays; X always opens.
func (that *GameManager) CreateGame(ctx context.Context, gameType, humanMark string) (*entity.Game, error) {
	if humanMark != entity.PlayerO {
		humanMark = entity.PlayerX
	}

	newGame := entity.NewGame(pkg.GenerateGameID(), gameType)

	switch gameType {
	case entity.WithBotType:
		newGame.Players = []*entity.Player{
			{ID: pkg.GeneratePlayerID(), Mark: humanMark, Type: entity.HumanPlayerType},
			{ID: pkg.GeneratePlayerID(), Mark: entity.OpponentMark(humanMark), Type: entity.BotPlayerType},
		}
	case entity.HumansType:
		newGame.Players = []*entity.Player{
			{ID: pkg.GeneratePlayerID(), Mark: entity.PlayerX, Type: entity.HumanPlayerType},
			{ID: pkg.GeneratePlayerID(), Mark: entity.PlayerO, Type: entity.HumanPlayerType},
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownGameType, gameType)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, newGame); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game", newGame.ID, "type", gameType)

	return newGame, nil
}

// HumanTurn - applies a human move to the game. A rejected move returns the
// unchanged game along with the error, ready for another try.
func (that *GameManager) HumanTurn(ctx context.Context, gameID, mark string, cell int) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.saveOrFinish(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// BotTurn - lets the bot answer on its turn and returns the cell it took.
func (that *GameManager) BotTurn(ctx context.Context, gameID string) (*entity.Game, int, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, 0, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, 0, err
	}

	cell, err := that.botService.MakeTurn(game)
	if err != nil {
		return game, 0, fmt.Errorf("bot failed to move: %w", err)
	}

	if err = that.saveOrFinish(ctx, game); err != nil {
		return nil, 0, err
	}

	return game, cell, nil
}

// saveOrFinish - persists an ongoing game and drops a finished one. The final
// state keeps living in the returned entity.
func (that *GameManager) saveOrFinish(ctx context.Context, game *entity.Game) error {
	if game.IsFinished() {
		that.deleteGame(ctx, game)
		return nil
	}

	return that.updateGame(ctx, game)
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame")

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	log.Info("game finished", "game", game.ID, "winner", game.Winner)
}
