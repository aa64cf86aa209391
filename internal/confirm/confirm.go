// Package confirm implements the two-step confirmation used for destructive
// actions: the first trigger arms the gate, a second trigger within the
// window fires the action, and the window elapsing disarms it silently.
package confirm

import (
	"sync"
	"time"
)

// DefaultWindow matches the confirmation timeout of the planner UI.
const DefaultWindow = 3 * time.Second

// Gate guards a single destructive action. Only one confirmation window is
// armed at a time.
type Gate struct {
	window time.Duration

	mu    sync.Mutex
	armed bool
	timer *time.Timer
}

// NewGate creates a gate with the given confirmation window. A zero window
// means DefaultWindow.
func NewGate(window time.Duration) *Gate {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Gate{window: window}
}

// Trigger advances the gate. The first trigger arms it and returns false
// without running action; a second trigger within the window runs action
// exactly once and returns true. After the window elapses the gate is back
// to idle and two fresh triggers are needed.
func (g *Gate) Trigger(action func()) bool {
	g.mu.Lock()

	if !g.armed {
		g.armed = true
		g.timer = time.AfterFunc(g.window, g.disarm)
		g.mu.Unlock()
		return false
	}

	g.armed = false
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.mu.Unlock()

	action()
	return true
}

// Armed reports whether the gate is waiting for a confirming trigger.
func (g *Gate) Armed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.armed
}

func (g *Gate) disarm() {
	g.mu.Lock()
	g.armed = false
	g.timer = nil
	g.mu.Unlock()
}
