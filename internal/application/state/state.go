// Package state holds the phase of a running level.
package state

// GameState is the phase of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the world advances in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}
