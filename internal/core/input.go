package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games read intents from an InputFrame and never see raw keys.
type Action int

const (
	ActionNone       Action = iota
	ActionAccelerate        // W, Up arrow
	ActionBrake             // S, Down arrow - brake, then reverse
	ActionSteerLeft         // A, Left arrow
	ActionSteerRight        // D, Right arrow
	ActionRefuel            // F - refuel at a station
	ActionSelect1           // 1 - pick contract one
	ActionSelect2           // 2
	ActionSelect3           // 3
	ActionConfirm           // Enter, Space
	ActionShop              // U - upgrade shop
	ActionRefresh           // R - new contract offers
	ActionBack              // B - leave shop, retire from contracts
	ActionPause             // P
	ActionRestart           // Ctrl+R after game over
	ActionQuit              // Q, Esc, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:       "None",
	ActionAccelerate: "Accelerate",
	ActionBrake:      "Brake",
	ActionSteerLeft:  "SteerLeft",
	ActionSteerRight: "SteerRight",
	ActionRefuel:     "Refuel",
	ActionSelect1:    "Select1",
	ActionSelect2:    "Select2",
	ActionSelect3:    "Select3",
	ActionConfirm:    "Confirm",
	ActionShop:       "Shop",
	ActionRefresh:    "Refresh",
	ActionBack:       "Back",
	ActionPause:      "Pause",
	ActionRestart:    "Restart",
	ActionQuit:       "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
