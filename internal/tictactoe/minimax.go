package tictactoe

import (
	"errors"
	"math"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// ErrNoAvailableMoves - returned when the board has no empty cells left to pick from.
var ErrNoAvailableMoves = errors.New("no available moves")

const winScore = 10

// BestMove - returns the cell where mark should play on the given board,
// assuming it is mark's turn. The cell comes from a full minimax search with
// alpha-beta pruning that prefers faster wins and later losses. Among equally
// scored cells the lowest index wins; the pick is deterministic for a given
// board.
func BestMove(board [9]string, mark string) (int, error) {
	bestCell := -1
	bestScore := math.MinInt
	alpha := math.MinInt

	for cell, value := range board {
		if value != entity.EmptyCell {
			continue
		}

		next := board
		next[cell] = mark

		score := minimax(next, entity.OpponentMark(mark), mark, 1, alpha, math.MaxInt)
		if score > bestScore {
			bestScore = score
			bestCell = cell
		}

		alpha = max(alpha, bestScore)
	}

	if bestCell == -1 {
		return 0, ErrNoAvailableMoves
	}

	return bestCell, nil
}

// minimax - scores the board from self's point of view, with mover holding
// the turn. A win is worth winScore minus the depth it takes and a loss is
// worth depth minus winScore, so shallow wins and deep losses come out on
// top. Subtrees are cut as soon as alpha reaches beta.
func minimax(board [9]string, mover, self string, depth, alpha, beta int) int {
	switch result := entity.BoardResult(board); result {
	case self:
		return winScore - depth
	case entity.OpponentMark(self):
		return depth - winScore
	case entity.PlayerTie:
		return 0
	}

	if mover == self {
		best := math.MinInt

		for cell, value := range board {
			if value != entity.EmptyCell {
				continue
			}

			next := board
			next[cell] = mover

			best = max(best, minimax(next, entity.OpponentMark(mover), self, depth+1, alpha, beta))

			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}

		return best
	}

	best := math.MaxInt

	for cell, value := range board {
		if value != entity.EmptyCell {
			continue
		}

		next := board
		next[cell] = mover

		best = min(best, minimax(next, entity.OpponentMark(mover), self, depth+1, alpha, beta))

		beta = min(beta, best)
		if alpha >= beta {
			break
		}
	}

	return best
}
