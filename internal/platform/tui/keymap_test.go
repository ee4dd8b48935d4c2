package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/raymaze/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyMovement(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected core.Action
	}{
		{"w", core.ActionForward},
		{"up", core.ActionForward},
		{"s", core.ActionBackward},
		{"down", core.ActionBackward},
		{"a", core.ActionStrafeLeft},
		{"d", core.ActionStrafeRight},
		{"left", core.ActionTurnLeft},
		{"right", core.ActionTurnRight},
		{"+", core.ActionWidenFOV},
		{"-", core.ActionNarrowFOV},
		{"m", core.ActionToggleMap},
		{"p", core.ActionPause},
		{"esc", core.ActionPause},
		{"r", core.ActionRestart},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(keyMsg(tc.key))
		if action != tc.expected {
			t.Errorf("key %q: expected %v, got %v", tc.key, tc.expected, action)
		}
		if isQuit {
			t.Errorf("key %q should not be a quit request", tc.key)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "ctrl+c"} {
		action, isQuit := km.MapKey(keyMsg(key))
		if action != core.ActionQuit || !isQuit {
			t.Errorf("key %q should be a quit request, got %v/%v", key, action, isQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("w"), &frame) {
		t.Error("movement key should not be a quit request")
	}
	if !frame.Has(core.ActionForward) {
		t.Error("frame should record the forward action")
	}

	// Unmapped keys leave the frame alone.
	km.MapKeyToFrame(keyMsg("x"), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("ActionNone should never be recorded")
	}

	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should be a quit request")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"tab", MenuActionScoreboard},
		{"b", MenuActionBack},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"ctrl+c", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.expected {
			t.Errorf("key %q: expected %v, got %v", tc.key, tc.expected, got)
		}
	}
}
