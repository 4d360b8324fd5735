package tictactoe

import "math/rand"

const center = 4

// Positional preference pools.
var (
	corners = []int{0, 2, 6, 8}
	edges   = []int{1, 3, 5, 7}
)

// ChooseMove picks the next cell for player with a fixed priority:
// complete an own winning line, block the opponent's winning line, take
// a preferred position, otherwise pick any free cell at random. The
// second return is false only when the board has no empty cell.
func ChooseMove(b Board, player Mark, rng *rand.Rand) (int, bool) {
	avail := b.Available()
	if len(avail) == 0 {
		return 0, false
	}

	if idx, ok := findWinningMove(b, player); ok {
		return idx, true
	}

	if idx, ok := findWinningMove(b, player.Other()); ok {
		return idx, true
	}

	if idx, ok := preferredCell(b, player, rng); ok {
		return idx, true
	}

	return avail[rng.Intn(len(avail))], true
}

// findWinningMove returns the lowest empty cell that completes a line
// for m, scanning cells in ascending index order.
func findWinningMove(b Board, m Mark) (int, bool) {
	for idx := range b {
		if b[idx] != Empty {
			continue
		}
		trial := b
		trial[idx] = m
		if v := trial.Evaluate(); v.Status == StatusWon && v.Winner == m {
			return idx, true
		}
	}
	return 0, false
}

// preferredCell applies the asymmetric positional taste: X takes the
// center when free and otherwise a random free corner, O takes a
// random free edge.
func preferredCell(b Board, m Mark, rng *rand.Rand) (int, bool) {
	switch m {
	case X:
		if b[center] == Empty {
			return center, true
		}
		return randomFree(b, corners, rng)
	case O:
		return randomFree(b, edges, rng)
	}
	return 0, false
}

// randomFree picks uniformly among the still-empty cells of candidates.
func randomFree(b Board, candidates []int, rng *rand.Rand) (int, bool) {
	var free []int
	for _, idx := range candidates {
		if b[idx] == Empty {
			free = append(free, idx)
		}
	}
	if len(free) == 0 {
		return 0, false
	}
	return free[rng.Intn(len(free))], true
}
