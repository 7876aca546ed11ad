package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft, false},
		{"a steers left", runeKey("a"), core.ActionMoveLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"p pauses", runeKey("p"), core.ActionPause, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	click := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !km.MapMouse(click, &frame) {
		t.Fatal("MapMouse(left click) = false, expected true")
	}
	if !frame.Has(core.ActionStart) {
		t.Error("left click should request a start")
	}
	if frame.Pointer == nil || frame.Pointer.X != 12 || frame.Pointer.Y != 7 {
		t.Errorf("Pointer = %+v, expected (12, 7)", frame.Pointer)
	}

	frame.Clear()
	motion := tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
	if km.MapMouse(motion, &frame) || frame.Has(core.ActionStart) {
		t.Error("mouse motion should not map to an action")
	}
}

func TestSteeringWindow(t *testing.T) {
	s := NewSteering(60)
	if s.window != 9 {
		t.Fatalf("window = %d ticks, expected 9 at 60 ticks/s", s.window)
	}

	frame := core.NewInputFrame()
	s.Press(core.ActionMoveLeft, &frame)
	if pressed, ok := frame.Held(core.ActionMoveLeft); !ok || !pressed {
		t.Fatalf("Held(MoveLeft) = %v, %v after press", pressed, ok)
	}

	for i := range 8 {
		frame.Clear()
		s.Tick(&frame)
		if _, ok := frame.Held(core.ActionMoveLeft); ok {
			t.Fatalf("tick %d: hold released early", i)
		}
	}

	frame.Clear()
	s.Tick(&frame)
	if pressed, ok := frame.Held(core.ActionMoveLeft); !ok || pressed {
		t.Errorf("Held(MoveLeft) = %v, %v, expected release after the window", pressed, ok)
	}
	if s.Held() != core.ActionNone {
		t.Errorf("Held() = %v after release", s.Held())
	}
}

func TestSteeringRepeatExtendsHold(t *testing.T) {
	s := NewSteering(60)
	frame := core.NewInputFrame()
	s.Press(core.ActionMoveRight, &frame)

	for range 5 {
		s.Tick(&frame)
	}
	frame.Clear()
	s.Press(core.ActionMoveRight, &frame)
	if _, ok := frame.Held(core.ActionMoveRight); ok {
		t.Error("auto-repeat should not record a new level change")
	}

	for range 8 {
		s.Tick(&frame)
	}
	if s.Held() != core.ActionMoveRight {
		t.Error("auto-repeat should extend the hold window")
	}
}

func TestSteeringSwitchDirection(t *testing.T) {
	s := NewSteering(60)
	frame := core.NewInputFrame()
	s.Press(core.ActionMoveLeft, &frame)

	frame.Clear()
	s.Press(core.ActionMoveRight, &frame)
	if pressed, ok := frame.Held(core.ActionMoveLeft); !ok || pressed {
		t.Error("switching direction should release the old one")
	}
	if pressed, ok := frame.Held(core.ActionMoveRight); !ok || !pressed {
		t.Error("switching direction should press the new one")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("b"), MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
