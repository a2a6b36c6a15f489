package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

var ErrBotNotFound = errors.New("bot player not found")

// BotService - picks and plays moves for the bot player of a game.
type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type botService struct {
	thinkingDelay time.Duration
}

// NewBotService - returns a BotService that pauses for thinkingDelay before
// each move.
func NewBotService(thinkingDelay time.Duration) BotService {
	return &botService{thinkingDelay: thinkingDelay}
}

// MakeTurn - plays the strongest available move for the game's bot player and
// returns the cell it took.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	botPlayer, err := game.BotPlayer()
	if err != nil {
		return 0, ErrBotNotFound
	}

	if that.thinkingDelay > 0 {
		time.Sleep(that.thinkingDelay)
	}

	cell, err := tictactoe.BestMove(game.Board, botPlayer.Mark)
	if err != nil {
		return 0, fmt.Errorf("failed to pick a cell: %w", err)
	}

	if err := game.MakeTurn(botPlayer.Mark, cell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}
