package nubik

// Audio receives fire-and-forget sound triggers from the game logic.
// Implementations typically cycle through a small pool of players so
// overlapping triggers do not cut each other off; no result is reported
// back to the caller.
type Audio interface {
	// PlayImpact plays the landing sound of a falling tile.
	PlayImpact()

	// PlayDig plays the tile breaking sound.
	PlayDig()
}

// NopAudio discards all sound triggers. Useful for tests and headless
// runs.
type NopAudio struct{}

func (NopAudio) PlayImpact() {}
func (NopAudio) PlayDig()    {}
