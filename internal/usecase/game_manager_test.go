package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
)

var errSomeError = errors.New("some error")

type brokenGameRepo struct {
	err error
}

func (that *brokenGameRepo) CreateOrUpdate(_ context.Context, _ *entity.Game) error {
	return that.err
}

func (that *brokenGameRepo) GetByID(_ context.Context, _ string) (*entity.Game, error) {
	return nil, that.err
}

func (that *brokenGameRepo) DeleteByID(_ context.Context, _ string) error {
	return that.err
}

func newManager(t *testing.T) (context.Context, *GameManager, repository.GameRepository) {
	t.Helper()

	ctx, st := suite.New(t)
	gameRepo := repository.NewGameRepository()
	manager := NewGameManager(st.Logger, gameRepo, service.NewBotService(0))

	return ctx, manager, gameRepo
}

func TestGameManager_CreateGame(t *testing.T) {
	t.Run("Creates a game against the bot with the chosen mark", func(t *testing.T) {
		// Given: a manager with an empty repository.
		ctx, manager, gameRepo := newManager(t)

		// When: creating a bot game where the human plays O.
		game, err := manager.CreateGame(ctx, entity.WithBotType, entity.PlayerO)

		// Then: the bot holds X, the game waits for X and is stored.
		require.NoError(t, err)

		botPlayer, err := game.BotPlayer()
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, botPlayer.Mark)
		assert.Equal(t, entity.PlayerX, game.Turn)

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game.ID, stored.ID)
	})

	t.Run("Defaults the human to X", func(t *testing.T) {
		// Given: a manager with an empty repository.
		ctx, manager, _ := newManager(t)

		// When: creating a bot game without picking a mark.
		game, err := manager.CreateGame(ctx, entity.WithBotType, "")

		// Then: the bot takes O.
		require.NoError(t, err)

		botPlayer, err := game.BotPlayer()
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, botPlayer.Mark)
	})

	t.Run("Creates a game for two humans", func(t *testing.T) {
		// Given: a manager with an empty repository.
		ctx, manager, _ := newManager(t)

		// When: creating a human versus human game.
		game, err := manager.CreateGame(ctx, entity.HumansType, "")

		// Then: both players are human and hold opposite marks.
		require.NoError(t, err)
		require.Len(t, game.Players, 2)
		assert.Equal(t, entity.PlayerX, game.Players[0].Mark)
		assert.Equal(t, entity.PlayerO, game.Players[1].Mark)

		_, err = game.BotPlayer()
		require.ErrorIs(t, err, entity.ErrNoBotPlayer)
	})

	t.Run("Rejects an unknown game type", func(t *testing.T) {
		// Given: a manager with an empty repository.
		ctx, manager, _ := newManager(t)

		// When: creating a game of a type nobody knows.
		_, err := manager.CreateGame(ctx, "chess", "")

		// Then: the type is rejected.
		require.ErrorIs(t, err, ErrUnknownGameType)
	})

	t.Run("Fails when the repository fails", func(t *testing.T) {
		// Given: a manager over a repository that rejects writes.
		ctx, st := suite.New(t)
		manager := NewGameManager(st.Logger, &brokenGameRepo{err: errSomeError}, service.NewBotService(0))

		// When: creating a game.
		_, err := manager.CreateGame(ctx, entity.HumansType, "")

		// Then: the failure comes back.
		require.ErrorIs(t, err, errSomeError)
	})
}

func TestGameManager_HumanTurn(t *testing.T) {
	t.Run("Applies a move and flips the turn", func(t *testing.T) {
		// Given: a fresh game between two humans.
		ctx, manager, gameRepo := newManager(t)
		game, err := manager.CreateGame(ctx, entity.HumansType, "")
		require.NoError(t, err)

		// When: X takes the center.
		updated, err := manager.HumanTurn(ctx, game.ID, entity.PlayerX, 4)

		// Then: the move is applied, persisted and the turn passes to O.
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, updated.Board[4])
		assert.Equal(t, entity.PlayerO, updated.Turn)

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, stored.Turn)
	})

	t.Run("Returns the game with a rejected move", func(t *testing.T) {
		// Given: a game where X already took the center.
		ctx, manager, _ := newManager(t)
		game, err := manager.CreateGame(ctx, entity.HumansType, "")
		require.NoError(t, err)

		_, err = manager.HumanTurn(ctx, game.ID, entity.PlayerX, 4)
		require.NoError(t, err)

		// When: O tries the same cell and X tries to move out of turn.
		occupied, errOccupied := manager.HumanTurn(ctx, game.ID, entity.PlayerO, 4)
		outOfTurn, errOutOfTurn := manager.HumanTurn(ctx, game.ID, entity.PlayerX, 5)

		// Then: both moves are rejected but the game comes back for a retry.
		require.ErrorIs(t, errOccupied, apperror.ErrCellOccupied)
		assert.NotNil(t, occupied)

		require.ErrorIs(t, errOutOfTurn, apperror.ErrNotYourTurn)
		assert.NotNil(t, outOfTurn)
	})

	t.Run("Finishes and removes a won game", func(t *testing.T) {
		// Given: a game one move away from X completing the top row.
		ctx, manager, gameRepo := newManager(t)
		game, err := manager.CreateGame(ctx, entity.HumansType, "")
		require.NoError(t, err)

		turns := []struct {
			mark string
			cell int
		}{
			{entity.PlayerX, 0},
			{entity.PlayerO, 3},
			{entity.PlayerX, 1},
			{entity.PlayerO, 4},
		}
		for _, turn := range turns {
			_, err = manager.HumanTurn(ctx, game.ID, turn.mark, turn.cell)
			require.NoError(t, err)
		}

		// When: X completes the row.
		finished, err := manager.HumanTurn(ctx, game.ID, entity.PlayerX, 2)

		// Then: the game is finished, won by X and gone from the repository.
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, finished.Status)
		assert.Equal(t, entity.PlayerX, finished.Winner)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, repository.ErrGameNotFound)
	})

	t.Run("Nine moves with no winner end in a tie", func(t *testing.T) {
		// Given: a game between two humans.
		ctx, manager, _ := newManager(t)
		game, err := manager.CreateGame(ctx, entity.HumansType, "")
		require.NoError(t, err)

		// When: both fill the board without completing a line.
		cells := []int{0, 2, 1, 3, 5, 4, 6, 7, 8}
		mark := entity.PlayerX

		var finished *entity.Game
		for _, cell := range cells {
			finished, err = manager.HumanTurn(ctx, game.ID, mark, cell)
			require.NoError(t, err)

			mark = entity.OpponentMark(mark)
		}

		// Then: the game ends in a tie.
		assert.Equal(t, entity.StatusFinished, finished.Status)
		assert.Equal(t, entity.PlayerTie, finished.Winner)
	})

	t.Run("Fails when the game does not exist", func(t *testing.T) {
		// Given: a manager with an empty repository.
		ctx, manager, _ := newManager(t)

		// When: moving in a game nobody created.
		_, err := manager.HumanTurn(ctx, "missing", entity.PlayerX, 0)

		// Then: the game cannot be found.
		require.ErrorIs(t, err, repository.ErrGameNotFound)
	})
}

func TestGameManager_BotTurn(t *testing.T) {
	t.Run("Bot answers with the strongest move", func(t *testing.T) {
		// Given: a bot game where the human X opened in a corner.
		ctx, manager, _ := newManager(t)
		game, err := manager.CreateGame(ctx, entity.WithBotType, entity.PlayerX)
		require.NoError(t, err)

		_, err = manager.HumanTurn(ctx, game.ID, entity.PlayerX, 0)
		require.NoError(t, err)

		// When: the bot takes its turn.
		updated, cell, err := manager.BotTurn(ctx, game.ID)

		// Then: the bot grabs the center and hands the turn back.
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Equal(t, entity.PlayerO, updated.Board[4])
		assert.Equal(t, entity.PlayerX, updated.Turn)
	})

	t.Run("Fails when the game has no bot", func(t *testing.T) {
		// Given: a game between two humans.
		ctx, manager, _ := newManager(t)
		game, err := manager.CreateGame(ctx, entity.HumansType, "")
		require.NoError(t, err)

		// When: the bot is asked to move anyway.
		_, _, err = manager.BotTurn(ctx, game.ID)

		// Then: there is nobody to move for.
		require.ErrorIs(t, err, service.ErrBotNotFound)
	})

	t.Run("Fails on a finished game", func(t *testing.T) {
		// Given: a bot game that already ended.
		ctx, manager, _ := newManager(t)
		game, err := manager.CreateGame(ctx, entity.WithBotType, entity.PlayerX)
		require.NoError(t, err)

		game.Board = [9]string{entity.PlayerX, entity.PlayerX, entity.PlayerX}
		game.UpdateGameState()

		// When: the bot is asked to move anyway.
		_, _, err = manager.BotTurn(ctx, game.ID)

		// Then: the finished game rejects the turn.
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
