package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crawler/internal/core"
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
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionInteract, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameHoldsDirections(t *testing.T) {
	km := NewKeyMapper()
	hold := core.NewHoldTracker(3)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('d'), &frame, hold)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, &frame, hold)

	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionInteract) {
		t.Fatal("pressed actions missing from frame")
	}
	held := core.NewInputFrame()
	hold.Apply(&held)
	if !held.IsDown(core.ActionRight) {
		t.Error("direction should be held")
	}
	if held.IsDown(core.ActionInteract) {
		t.Error("interact should not be held")
	}
}

func TestPointerTracker(t *testing.T) {
	var pt PointerTracker
	frame := core.NewInputFrame()

	pt.Apply(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion}, &frame)
	if frame.Hover == nil || frame.Hover.X != 3 || frame.Click != nil {
		t.Fatalf("motion: hover=%v click=%v", frame.Hover, frame.Click)
	}

	frame.Clear()
	pt.Apply(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	if frame.Click != nil {
		t.Error("press alone is not a click")
	}
	pt.Apply(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionRelease}, &frame)
	if frame.Click == nil || frame.Click.X != 5 || frame.Click.Y != 6 {
		t.Errorf("release after press should click, got %v", frame.Click)
	}

	frame.Clear()
	pt.Apply(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease}, &frame)
	if frame.Click != nil {
		t.Error("release without press should not click")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, want scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); got != MenuActionSelect {
		t.Errorf("enter = %v, want select", got)
	}
	if got := km.MapKeyToMenuAction(runeKey('j')); got != MenuActionDown {
		t.Errorf("j = %v, want down", got)
	}
}
