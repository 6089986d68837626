package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, A, H - shift piece left
	ActionRight           // Right arrow, D, L - shift piece right
	ActionRotate          // Up arrow, W, K - rotate counter-clockwise
	ActionSoftDrop        // Down arrow, S, J - soft drop while held
	ActionHardDrop        // Space - hard drop
	ActionHold            // C, Shift - swap with hold slot
	ActionRestart         // R key - restart game after game over
	ActionPause           // P, Escape - pause/unpause game
	ActionQuit            // Q, Ctrl+C - exit game

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionSet is a small bit set of actions.
// The zero value is an empty set and is ready to use.
type ActionSet uint32

// NewActionSet builds a set from the given actions.
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return s&(1<<uint(a)) != 0
}

// With returns a copy of the set with a added.
func (s ActionSet) With(a Action) ActionSet {
	if a <= ActionNone || a >= actionCount {
		return s
	}
	return s | 1<<uint(a)
}

// Without returns a copy of the set with a removed.
func (s ActionSet) Without(a Action) ActionSet {
	if a <= ActionNone || a >= actionCount {
		return s
	}
	return s &^ (1 << uint(a))
}

// Empty reports whether no action is set.
func (s ActionSet) Empty() bool {
	return s == 0
}

// InputFrame is the input sample for a single simulation tick.
// Down is the level signal; Pressed and Released are the edges observed
// since the previous sample. Exactly one frame is consumed per tick.
type InputFrame struct {
	Down     ActionSet
	Pressed  ActionSet
	Released ActionSet
}

// IsDown reports whether the action is currently held.
func (f InputFrame) IsDown(a Action) bool {
	return f.Down.Has(a)
}

// IsPressed reports whether the action went down this tick.
func (f InputFrame) IsPressed(a Action) bool {
	return f.Pressed.Has(a)
}

// IsReleased reports whether the action went up this tick.
func (f InputFrame) IsReleased(a Action) bool {
	return f.Released.Has(a)
}

// Press marks the action as pressed and held for this frame.
func (f *InputFrame) Press(a Action) {
	f.Pressed = f.Pressed.With(a)
	f.Down = f.Down.With(a)
}

// Release marks the action as released and no longer held.
func (f *InputFrame) Release(a Action) {
	f.Released = f.Released.With(a)
	f.Down = f.Down.Without(a)
}

// KeyTracker turns per-tick key levels into input frames with edges.
//
// Sources that report real key-up events call Sample with the held set
// every tick. Terminals only report presses and auto-repeats; for them
// Touch is called on every key event and a key counts as held until
// holdTicks ticks pass without another event. With a tap gap set, a
// touch that arrives at least that many ticks after the previous one
// while the key is still held counts as a new press.
type KeyTracker struct {
	holdTicks int
	tapTicks  int
	prev      ActionSet
	touched   ActionSet
	retapped  ActionSet
	lastSeen  [actionCount]int
	tick      int
}

// NewKeyTracker creates a tracker. holdTicks is only used by Touch-driven
// sources; values below 1 are treated as 1.
func NewKeyTracker(holdTicks int) *KeyTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyTracker{holdTicks: holdTicks}
}

// WithTapGap sets the minimum spacing between two touches of a held key
// for the second one to count as a new press. Auto-repeat events arrive
// faster than that. Zero disables re-taps.
func (t *KeyTracker) WithTapGap(ticks int) *KeyTracker {
	t.tapTicks = max(0, ticks)
	return t
}

// Touch records a key event for a press/repeat-only source.
func (t *KeyTracker) Touch(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	if t.tapTicks > 0 && t.touched.Has(a) && t.tick-t.lastSeen[a] >= t.tapTicks {
		t.retapped = t.retapped.With(a)
	}
	t.touched = t.touched.With(a)
	t.lastSeen[a] = t.tick
}

// Frame produces the frame for the current tick from touched keys and
// advances the tracker.
func (t *KeyTracker) Frame() InputFrame {
	var down ActionSet
	for a := ActionNone + 1; a < actionCount; a++ {
		if t.touched.Has(a) && t.tick-t.lastSeen[a] < t.holdTicks {
			down = down.With(a)
		}
	}
	// A touch that arrives while the key is still considered held is a
	// repeat unless it is a re-tap; a touch after expiry is a fresh press.
	frame := t.Sample(down)
	frame.Pressed |= t.retapped & down
	t.retapped = 0
	for a := ActionNone + 1; a < actionCount; a++ {
		if !down.Has(a) {
			t.touched = t.touched.Without(a)
		}
	}
	return frame
}

// Sample produces the frame for a tick given the keys held right now.
func (t *KeyTracker) Sample(down ActionSet) InputFrame {
	frame := InputFrame{
		Down:     down,
		Pressed:  down &^ t.prev,
		Released: t.prev &^ down,
	}
	t.prev = down
	t.tick++
	return frame
}
