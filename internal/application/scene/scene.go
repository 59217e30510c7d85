// Package scene defines the Scene interface for game screens.
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick of dt.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returns an error to terminate the game.
	Update(dt time.Duration) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, also on shutdown.
	OnExit()
}
