// Package game hosts the sidescroll window. It feeds the active Scene a
// fixed tick derived from the display settings.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/sidescroll/internal/application/scene"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
	"github.com/younwookim/sidescroll/internal/infrastructure/logging"
)

// Game implements ebiten.Game on top of a Scene
type Game struct {
	current scene.Scene
	display config.DisplayConfig
	dt      time.Duration
	ticks   uint64
	log     *logrus.Entry
}

// New enters the initial scene. The tick is 1/Framerate, 1/60 s when unset.
func New(initial scene.Scene, display config.DisplayConfig, log *logrus.Entry) *Game {
	if log == nil {
		log = logging.Discard()
	}
	g := &Game{
		current: initial,
		display: display,
		dt:      display.TickDuration(),
		log:     log,
	}
	g.current.OnEnter()
	return g
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return fmt.Errorf("scene failed at tick %d: %w", g.ticks, err)
	}
	g.ticks++

	if next != nil {
		g.log.WithField("tick", g.ticks).Debug("scene changed")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the logical resolution of the display config. Window
// scaling is left to ebiten.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.display.ScreenWidth <= 0 || g.display.ScreenHeight <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.display.ScreenWidth, g.display.ScreenHeight
}

// Ticks returns the number of completed updates
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// TickDuration returns the dt handed to scenes
func (g *Game) TickDuration() time.Duration {
	return g.dt
}

// Run opens the window and blocks until it is closed. The current scene
// gets OnExit on the way out, so pending recordings are flushed.
func (g *Game) Run(title string) error {
	defer g.Close()

	scale := max(g.display.Scale, 1)
	ebiten.SetWindowSize(g.display.ScreenWidth*scale, g.display.ScreenHeight*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(int(time.Second / g.dt))

	g.log.WithFields(logrus.Fields{"title": title, "tps": int(time.Second / g.dt)}).Info("window opened")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	g.log.WithField("ticks", g.ticks).Info("window closed")
	return nil
}

// Close lets the current scene release its resources
func (g *Game) Close() {
	g.current.OnExit()
}
