package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	HumansType  = "humans"
	WithBotType = "bot"
)

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrNoPlayerWithMark  = errors.New("no player with this mark")
	ErrNoBotPlayer       = errors.New("no bot player in game")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

type Game struct {
	ID      string
	Board   [9]string
	Winner  string
	Status  string
	Turn    string
	Players []*Player
	Type    string
}

// NewGame - creates a game with an empty board and X to open.
func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  [9]string{},
		Turn:   PlayerX,
		Status: StatusOngoing,
		Type:   gameType,
	}
}

// BoardResult - returns the winner mark on the board, PlayerTie for a full
// board without one, or EmptyCell while the game continues.
func BoardResult(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell == EmptyCell {
			return EmptyCell
		}
	}

	return PlayerTie
}

// DetermineGameResult - reports the current board result, see BoardResult.
func (that *Game) DetermineGameResult() string {
	return BoardResult(that.Board)
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark
	that.Turn = OpponentMark(playerMark)

	that.UpdateGameState()

	return nil
}

// AvailableCells - lists the empty cell indices in board order.
func (that *Game) AvailableCells() []int {
	cells := make([]int, 0, len(that.Board))
	for i, cell := range that.Board {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// CurrentPlayer - returns the player who owns the current turn.
func (that *Game) CurrentPlayer() (*Player, error) {
	return that.PlayerByMark(that.Turn)
}

func (that *Game) PlayerByMark(mark string) (*Player, error) {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNoPlayerWithMark, mark)
}

func (that *Game) BotPlayer() (*Player, error) {
	for _, player := range that.Players {
		if player.IsBot() {
			return player, nil
		}
	}

	return nil, ErrNoBotPlayer
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// OpponentMark - returns the mark of the other player.
func OpponentMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
