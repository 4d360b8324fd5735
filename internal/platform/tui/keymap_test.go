package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndolgikh/gridplay/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"w is up", runeKey('w'), core.ActionUp, false},
		{"up arrow is up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s is down", runeKey('s'), core.ActionDown, false},
		{"down arrow is down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a is left", runeKey('a'), core.ActionLeft, false},
		{"left arrow is left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d is right", runeKey('d'), core.ActionRight, false},
		{"right arrow is right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"plus speeds up", runeKey('+'), core.ActionSpeedUp, false},
		{"equals speeds up", runeKey('='), core.ActionSpeedUp, false},
		{"minus slows down", runeKey('-'), core.ActionSpeedDown, false},
		{"underscore slows down", runeKey('_'), core.ActionSpeedDown, false},
		{"x resets stats", runeKey('x'), core.ActionResetStats, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"b goes back", runeKey('b'), core.ActionBack, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"unmapped key is none", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameDirections(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('d'), &frame); quit {
		t.Fatal("direction key reported as quit")
	}
	if got := frame.Direction(); got != core.ActionRight {
		t.Errorf("Direction() = %v, want ActionRight", got)
	}

	// A second direction in the same frame replaces the first
	km.MapKeyToFrame(runeKey('s'), &frame)
	if got := frame.Direction(); got != core.ActionDown {
		t.Errorf("Direction() after second key = %v, want ActionDown", got)
	}

	// Directions never land in the plain action set
	if frame.Has(core.ActionRight) || frame.Has(core.ActionDown) {
		t.Error("direction keys leaked into the action set")
	}
}

func TestMapKeyToFrameActions(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('p'), &frame)
	if !frame.Has(core.ActionPause) {
		t.Error("pause key did not set ActionPause")
	}

	km.MapKeyToFrame(runeKey('r'), &frame)
	if !frame.Has(core.ActionRestart) {
		t.Error("restart key did not set ActionRestart")
	}

	if quit := km.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Error("q did not report quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"q quits", runeKey('q'), MenuActionQuit},
		{"w is up", runeKey('w'), MenuActionUp},
		{"k is up", runeKey('k'), MenuActionUp},
		{"s is down", runeKey('s'), MenuActionDown},
		{"j is down", runeKey('j'), MenuActionDown},
		{"enter selects", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"space selects", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, MenuActionSelect},
		{"tab opens scoreboard", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"unmapped key is none", runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction() = %v, want %v", got, tt.want)
			}
		})
	}
}
