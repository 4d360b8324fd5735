package tictactoe

import (
	"slices"
	"testing"
)

func TestEvaluateWinningLine(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		winner Mark
		line   []int
	}{
		{
			name:   "top row",
			board:  Board{X, X, X, O, O, Empty, Empty, Empty, Empty},
			winner: X,
			line:   []int{0, 1, 2},
		},
		{
			name:   "middle column",
			board:  Board{X, O, Empty, X, O, Empty, Empty, O, X},
			winner: O,
			line:   []int{1, 4, 7},
		},
		{
			name:   "main diagonal",
			board:  Board{X, O, O, Empty, X, Empty, Empty, Empty, X},
			winner: X,
			line:   []int{0, 4, 8},
		},
		{
			name:   "anti diagonal",
			board:  Board{X, X, O, Empty, O, Empty, O, Empty, X},
			winner: O,
			line:   []int{2, 4, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.board.Evaluate()
			if v.Status != StatusWon {
				t.Fatalf("Expected StatusWon, got %v", v.Status)
			}
			if v.Winner != tt.winner {
				t.Errorf("Expected winner %s, got %s", tt.winner, v.Winner)
			}
			if !slices.Equal(v.Line, tt.line) {
				t.Errorf("Expected line %v, got %v", tt.line, v.Line)
			}
		})
	}
}

func TestEvaluateDraw(t *testing.T) {
	b := Board{
		X, O, X,
		X, O, O,
		O, X, X,
	}

	v := b.Evaluate()
	if v.Status != StatusDraw {
		t.Fatalf("Expected StatusDraw, got %v", v.Status)
	}
	if v.Winner != Empty {
		t.Errorf("Draw should have no winner, got %s", v.Winner)
	}
	if v.Line != nil {
		t.Errorf("Draw should have no line, got %v", v.Line)
	}
}

func TestEvaluatePlaying(t *testing.T) {
	b := Board{X, O, Empty, Empty, X, Empty, Empty, Empty, Empty}

	v := b.Evaluate()
	if v.Status != StatusPlaying {
		t.Errorf("Expected StatusPlaying, got %v", v.Status)
	}
	if v.Line != nil {
		t.Errorf("Running game should have no line, got %v", v.Line)
	}
}

func TestAvailable(t *testing.T) {
	b := Board{X, Empty, O, Empty, X, Empty, Empty, O, X}

	want := []int{1, 3, 5, 6}
	if got := b.Available(); !slices.Equal(got, want) {
		t.Errorf("Expected available %v, got %v", want, got)
	}

	var empty Board
	if got := empty.Available(); len(got) != 9 {
		t.Errorf("Empty board should have 9 available cells, got %d", len(got))
	}
}

func TestIsFull(t *testing.T) {
	var b Board
	if b.IsFull() {
		t.Error("Empty board should not be full")
	}

	b = Board{X, O, X, X, O, O, O, X, X}
	if !b.IsFull() {
		t.Error("Board with 9 marks should be full")
	}
}

func TestApply(t *testing.T) {
	var b Board

	if err := b.Apply(4, X); err != nil {
		t.Fatalf("Apply to empty cell failed: %v", err)
	}
	if b[4] != X {
		t.Errorf("Cell 4 should hold X, got %s", b[4])
	}

	if err := b.Apply(4, O); err == nil {
		t.Error("Apply to an occupied cell should fail")
	}
	if err := b.Apply(9, X); err == nil {
		t.Error("Apply out of range should fail")
	}
	if err := b.Apply(-1, X); err == nil {
		t.Error("Apply with negative index should fail")
	}
	if err := b.Apply(0, Empty); err == nil {
		t.Error("Apply with Empty mark should fail")
	}
}

func TestMarkOther(t *testing.T) {
	if X.Other() != O || O.Other() != X {
		t.Error("X and O should oppose each other")
	}
	if Empty.Other() != Empty {
		t.Error("Empty has no opponent")
	}
}

func TestReplay(t *testing.T) {
	moves := []Move{
		{Player: X, Pos: 4},
		{Player: O, Pos: 1},
		{Player: X, Pos: 0},
		{Player: O, Pos: 8},
		{Player: X, Pos: 2},
	}

	b, err := Replay(moves)
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}

	want := Board{X, O, X, Empty, X, Empty, Empty, Empty, O}
	if b != want {
		t.Errorf("Replayed board mismatch:\n got %v\nwant %v", b, want)
	}
}

func TestReplayRejectsIllegalSequence(t *testing.T) {
	moves := []Move{
		{Player: X, Pos: 4},
		{Player: O, Pos: 4}, // Same cell twice
	}

	if _, err := Replay(moves); err == nil {
		t.Error("Replay of a colliding sequence should fail")
	}
}
