package nubik

// Key represents a keyboard key the game polls.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEscape
	KeyCount
)

// Input exposes the keyboard state the game logic polls each tick.
type Input interface {
	IsKeyDown(key Key) bool
	IsKeyUp(key Key) bool
}

// InputState holds keyboard state for the current frame. It is
// populated by the platform layer (GLFW callbacks) and read by the game.
type InputState struct {
	keyDown [KeyCount]bool
}

// NewInputState creates an InputState with no keys held.
func NewInputState() *InputState {
	return &InputState{}
}

// SetKey records the held state of a key.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keyDown[key] = down
}

// IsKeyDown reports whether the key is currently held.
func (s *InputState) IsKeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// IsKeyUp reports whether the key is currently released.
func (s *InputState) IsKeyUp(key Key) bool {
	return !s.IsKeyDown(key)
}
