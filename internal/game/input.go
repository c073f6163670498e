package game

// Action is a logical input, independent of the device that produced it.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionFire
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionFire:
		return "fire"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}

// InputState is the intent the simulation consumes once per tick.
type InputState struct {
	// MoveDir accumulates held directions: +1 per held right, -1 per held
	// left, so opposite keys held together cancel out.
	MoveDir int
	// FirePressed is a one-shot edge set on fire release.
	FirePressed bool
	Running     bool
}

func NewInputState() *InputState {
	return &InputState{Running: true}
}

// Apply folds one press or release event into the intent.
func (in *InputState) Apply(a Action, pressed bool) {
	switch a {
	case ActionRight:
		if pressed {
			in.MoveDir++
		} else {
			in.MoveDir--
		}
	case ActionLeft:
		if pressed {
			in.MoveDir--
		} else {
			in.MoveDir++
		}
	case ActionFire:
		if !pressed {
			in.FirePressed = true
		}
	case ActionQuit:
		if pressed {
			in.Running = false
		}
	}
}

// ConsumeFire returns the pending fire edge and clears it.
func (in *InputState) ConsumeFire() bool {
	f := in.FirePressed
	in.FirePressed = false
	return f
}
