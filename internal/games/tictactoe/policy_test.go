package tictactoe

import (
	"math/rand"
	"testing"
)

func TestChooseMoveBlocksThreat(t *testing.T) {
	// X threatens the top row; O must block at cell 2
	b := Board{X, X, Empty, Empty, O, Empty, Empty, Empty, Empty}
	rng := rand.New(rand.NewSource(1))

	idx, ok := ChooseMove(b, O, rng)
	if !ok {
		t.Fatal("ChooseMove should find a move")
	}
	if idx != 2 {
		t.Errorf("O should block at 2, got %d", idx)
	}
}

func TestChooseMovePrefersWinOverBlock(t *testing.T) {
	// X can complete the top row at 2; O threatens the middle row at 5.
	// Winning takes priority over blocking.
	b := Board{X, X, Empty, O, O, Empty, Empty, Empty, Empty}
	rng := rand.New(rand.NewSource(1))

	idx, ok := ChooseMove(b, X, rng)
	if !ok {
		t.Fatal("ChooseMove should find a move")
	}
	if idx != 2 {
		t.Errorf("X should win at 2 before blocking, got %d", idx)
	}
}

func TestChooseMoveWinScansAscending(t *testing.T) {
	// X can win at 0 (top row) or at 4 (middle row); the scan picks
	// the lowest index regardless of the rng.
	b := Board{Empty, X, X, X, Empty, X, O, O, Empty}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		idx, ok := ChooseMove(b, X, rng)
		if !ok {
			t.Fatal("ChooseMove should find a move")
		}
		if idx != 0 {
			t.Errorf("Seed %d: expected winning cell 0, got %d", seed, idx)
		}
	}
}

func TestPositionalXTakesCenter(t *testing.T) {
	var b Board
	rng := rand.New(rand.NewSource(7))

	idx, ok := ChooseMove(b, X, rng)
	if !ok {
		t.Fatal("ChooseMove should find a move")
	}
	if idx != center {
		t.Errorf("X should open at the center, got %d", idx)
	}
}

func TestPositionalXFallsBackToCorner(t *testing.T) {
	// Center taken, no threats: X picks among the free corners
	b := Board{Empty, Empty, Empty, Empty, O, Empty, Empty, Empty, Empty}

	seen := make(map[int]bool)
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		idx, ok := ChooseMove(b, X, rng)
		if !ok {
			t.Fatal("ChooseMove should find a move")
		}
		switch idx {
		case 0, 2, 6, 8:
			seen[idx] = true
		default:
			t.Fatalf("Seed %d: expected a corner, got %d", seed, idx)
		}
	}

	// 50 seeds should cover more than one corner
	if len(seen) < 2 {
		t.Errorf("Corner choice looks degenerate: %v", seen)
	}
}

func TestPositionalOTakesEdge(t *testing.T) {
	// X opened at the center, no threats: O picks among the edges
	b := Board{Empty, Empty, Empty, Empty, X, Empty, Empty, Empty, Empty}

	seen := make(map[int]bool)
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		idx, ok := ChooseMove(b, O, rng)
		if !ok {
			t.Fatal("ChooseMove should find a move")
		}
		switch idx {
		case 1, 3, 5, 7:
			seen[idx] = true
		default:
			t.Fatalf("Seed %d: expected an edge, got %d", seed, idx)
		}
	}

	if len(seen) < 2 {
		t.Errorf("Edge choice looks degenerate: %v", seen)
	}
}

func TestChooseMoveRandomFallback(t *testing.T) {
	// All edges taken and no threats on the board: O has no preferred
	// cell left and falls back to a uniform pick among the free cells.
	b := Board{Empty, X, Empty, O, Empty, X, Empty, O, Empty}

	for seed := int64(0); seed < 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		idx, ok := ChooseMove(b, O, rng)
		if !ok {
			t.Fatal("ChooseMove should find a move")
		}
		if b[idx] != Empty {
			t.Errorf("Seed %d: chose occupied cell %d", seed, idx)
		}
	}
}

func TestChooseMoveFullBoard(t *testing.T) {
	b := Board{X, O, X, X, O, O, O, X, X}
	rng := rand.New(rand.NewSource(3))

	if _, ok := ChooseMove(b, X, rng); ok {
		t.Error("ChooseMove on a full board should report no move")
	}
}
