package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dronemania/internal/config"
	"github.com/vovakirdan/dronemania/internal/control"
	"github.com/vovakirdan/dronemania/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ", "down", "s":
		return core.ActionCut, false
	case "enter":
		return core.ActionConfirm, false
	case "r":
		return core.ActionRestart, false
	case "p":
		return core.ActionPause, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
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
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// PropellerHold turns key presses into held propeller flags.
//
// Terminals only report key presses (plus auto-repeats), never releases,
// so a press keeps its side running for a short window. The first press
// uses the longer initial window to bridge the terminal's repeat delay;
// each repeat extends the hold by the shorter repeat window. Pointer
// presses latch a side until the pointer is released.
type PropellerHold struct {
	initial time.Duration
	repeat  time.Duration

	leftUntil  time.Time
	rightUntil time.Time

	leftLatched  bool
	rightLatched bool
}

// NewPropellerHold creates a hold tracker with the configured windows.
func NewPropellerHold(cfg config.Input) *PropellerHold {
	return &PropellerHold{
		initial: time.Duration(cfg.KeyHoldInitialMS) * time.Millisecond,
		repeat:  time.Duration(cfg.KeyHoldRepeatMS) * time.Millisecond,
	}
}

// Press registers a key press for the side named by a (ActionLeft or
// ActionRight) and ends the other side's key window, since a terminal
// reports one held key at a time. Pointer latches are kept. Other
// actions are ignored.
func (h *PropellerHold) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.leftUntil = h.extend(h.leftUntil, now)
		h.rightUntil = time.Time{}
	case core.ActionRight:
		h.rightUntil = h.extend(h.rightUntil, now)
		h.leftUntil = time.Time{}
	}
}

func (h *PropellerHold) extend(until, now time.Time) time.Time {
	if now.Before(until) {
		return now.Add(h.repeat)
	}
	return now.Add(h.initial)
}

// Latch holds a side until Release.
func (h *PropellerHold) Latch(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.leftLatched = true
	case core.ActionRight:
		h.rightLatched = true
	}
}

// Release drops both sides immediately.
func (h *PropellerHold) Release() {
	h.leftUntil = time.Time{}
	h.rightUntil = time.Time{}
	h.leftLatched = false
	h.rightLatched = false
}

// Held reports which sides are held at now.
func (h *PropellerHold) Held(now time.Time) (left, right bool) {
	left = h.leftLatched || now.Before(h.leftUntil)
	right = h.rightLatched || now.Before(h.rightUntil)
	return left, right
}

// Apply writes the held sides at now into c.
func (h *PropellerHold) Apply(now time.Time, c *control.State) {
	left, right := h.Held(now)
	c.SetLeft(left)
	c.SetRight(right)
}
