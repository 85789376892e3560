package components

// InputState mirrors the current input state. The window harness fills it in
// before each tick.
type InputState struct {
	Left  bool
	Right bool
	Fire  bool
}
