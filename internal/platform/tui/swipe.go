package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-xenzia/internal/core"
)

// SwipeRecognizer turns pointer drags into directional actions.
// It keeps only gesture state (the current anchor), never game state.
type SwipeRecognizer struct {
	threshold int
	anchored  bool
	anchorX   int
	anchorY   int
}

// NewSwipeRecognizer creates a recognizer that needs a drag longer than
// threshold cells on either axis.
func NewSwipeRecognizer(threshold int) *SwipeRecognizer {
	return &SwipeRecognizer{threshold: max(1, threshold)}
}

// Press anchors a new gesture at (x, y).
func (s *SwipeRecognizer) Press(x, y int) {
	s.anchored = true
	s.anchorX, s.anchorY = x, y
}

// Move reports a swipe once the pointer has travelled past the threshold.
// The dominant axis decides the direction, and the anchor moves to (x, y)
// so a continued drag can chain another swipe.
func (s *SwipeRecognizer) Move(x, y int) core.Action {
	if !s.anchored {
		return core.ActionNone
	}

	dx := s.anchorX - x
	dy := s.anchorY - y
	if core.Abs(dx) <= s.threshold && core.Abs(dy) <= s.threshold {
		return core.ActionNone
	}

	var action core.Action
	if core.Abs(dx) > core.Abs(dy) {
		action = core.ActionRight
		if dx > 0 {
			action = core.ActionLeft
		}
	} else {
		action = core.ActionDown
		if dy > 0 {
			action = core.ActionUp
		}
	}

	s.anchorX, s.anchorY = x, y
	return action
}

// Release ends the current gesture.
func (s *SwipeRecognizer) Release() {
	s.anchored = false
}

// HandleMouse feeds a Bubble Tea mouse event through the recognizer.
func (s *SwipeRecognizer) HandleMouse(msg tea.MouseMsg) core.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			s.Press(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		return s.Move(msg.X, msg.Y)
	case tea.MouseActionRelease:
		s.Release()
	}
	return core.ActionNone
}
