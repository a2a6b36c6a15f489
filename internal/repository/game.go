package repository

import (
	"context"
	"errors"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type inMemoryGame struct {
	games *xsync.MapOf[string, *entity.Game]
}

// NewGameRepository - returns a GameRepository that keeps games in process
// memory for the lifetime of the application.
func NewGameRepository() GameRepository {
	return &inMemoryGame{
		games: xsync.NewMapOf[string, *entity.Game](),
	}
}

func (that *inMemoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.games.Store(game.ID, game)
	return nil
}

func (that *inMemoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	game, ok := that.games.Load(id)
	if !ok {
		return &entity.Game{}, ErrGameNotFound
	}

	return game, nil
}

func (that *inMemoryGame) DeleteByID(_ context.Context, id string) error {
	if _, ok := that.games.LoadAndDelete(id); !ok {
		return ErrGameNotFound
	}

	return nil
}
