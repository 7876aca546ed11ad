package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// holdWindow is how long a steering key counts as held after its last
// press or auto-repeat. Terminals report no key releases.
const holdWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionMoveLeft, false
	case "right", "d", "l":
		return core.ActionMoveRight, false
	case " ", "up", "w":
		return core.ActionFire, false
	case "enter":
		return core.ActionStart, false
	case "p":
		return core.ActionPause, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// IsSteering reports whether the action is a held level rather than an edge.
func IsSteering(a core.Action) bool {
	return a == core.ActionMoveLeft || a == core.ActionMoveRight
}

// MapMouse translates a left click into a start request at the click position.
// Returns false for every other mouse event.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.SetAt(core.ActionStart, float64(msg.X), float64(msg.Y))
	return true
}

// Steering emulates held steering keys on top of key presses.
// A press holds its direction for a window of ticks and releases the
// opposite direction; each auto-repeat extends the window.
type Steering struct {
	action    core.Action
	ticksLeft int
	window    int
}

// NewSteering creates a steering tracker for the given tick rate.
func NewSteering(tickRate int) Steering {
	if tickRate <= 0 {
		tickRate = 60
	}
	window := int(holdWindow * time.Duration(tickRate) / time.Second)
	if window < 1 {
		window = 1
	}
	return Steering{window: window}
}

// Press records a steering key press into the frame.
func (s *Steering) Press(a core.Action, frame *core.InputFrame) {
	if s.action != core.ActionNone && s.action != a {
		frame.Hold(s.action, false)
	}
	if s.action != a {
		frame.Hold(a, true)
	}
	s.action = a
	s.ticksLeft = s.window
}

// Tick ages the current hold and releases it once its window runs out.
func (s *Steering) Tick(frame *core.InputFrame) {
	if s.action == core.ActionNone {
		return
	}
	s.ticksLeft--
	if s.ticksLeft <= 0 {
		frame.Hold(s.action, false)
		s.action = core.ActionNone
	}
}

// Held returns the direction currently held, or ActionNone.
func (s Steering) Held() core.Action {
	return s.action
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
