package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rush-arcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"w", runeKey("w"), core.ActionUp, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionCharge, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"1", runeKey("1"), core.ActionDebug, false},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, core.ActionDebug, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tc.msg)
			if got != tc.want || isQuit != tc.isQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tc.msg.String(), got, isQuit, tc.want, tc.isQuit)
			}
		})
	}
}

func TestMapKeyToFrameRoutesHoldables(t *testing.T) {
	km := NewKeyMapper()
	hold := core.NewHoldTracker(5)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey("d"), hold, &frame)
	km.MapKeyToFrame(runeKey("p"), hold, &frame)

	if frame.Has(core.ActionRight) {
		t.Error("movement should go to the hold tracker, not the frame")
	}
	if !hold.Held(core.ActionRight) {
		t.Error("movement key not held")
	}
	if !frame.Has(core.ActionPause) {
		t.Error("pause should be a one-shot frame action")
	}

	// Without a tracker everything lands on the frame.
	frame.Clear()
	km.MapKeyToFrame(runeKey("d"), nil, &frame)
	if !frame.Has(core.ActionRight) {
		t.Error("nil tracker should fall back to the frame")
	}

	if !km.MapKeyToFrame(runeKey("q"), hold, &frame) {
		t.Error("q should report quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tc.msg.String(), got, tc.want)
		}
	}
}
