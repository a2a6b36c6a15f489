package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// renderBoard - draws the board with empty cells numbered 1-9, matching the
// numbers players type to move.
func renderBoard(game *entity.Game) string {
	cells := make([]string, len(game.Board))
	for i, mark := range game.Board {
		if mark == entity.EmptyCell {
			cells[i] = strconv.Itoa(i + 1)
			continue
		}

		cells[i] = mark
	}

	rows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		rows = append(rows, fmt.Sprintf(" %s | %s | %s ", cells[row*3], cells[row*3+1], cells[row*3+2]))
	}

	return strings.Join(rows, "\n---+---+---\n")
}

// resultMessage - spells out who won the finished game.
func resultMessage(game *entity.Game) string {
	if game.Winner == entity.PlayerTie {
		return "It's a draw!"
	}

	if game.IsWithBot() {
		winnerName := "Player"
		if botPlayer, err := game.BotPlayer(); err == nil && botPlayer.Mark == game.Winner {
			winnerName = "AI"
		}

		return fmt.Sprintf("%s (%s) wins!", winnerName, game.Winner)
	}

	return fmt.Sprintf("Player %s wins!", game.Winner)
}
