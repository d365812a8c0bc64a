// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/redemption/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene.
// tps is the number of updates per second; the initial scene's OnEnter
// is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	dt := 1.0 / 60.0
	if tps > 0 {
		dt = 1.0 / float64(tps)
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      dt,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, scene.ErrQuit) {
			g.current.OnExit()
			return ebiten.Termination
		}
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene; call after the loop returns
func (g *Game) Close() {
	g.current.OnExit()
}

// DT returns the delta time passed to scenes
func (g *Game) DT() float64 {
	return g.dt
}
