package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/sidescroll/internal/application/scene"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

var testDisplay = config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Scale: 2, Framerate: 30}

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        time.Duration
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt time.Duration) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testDisplay, nil)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testDisplay, nil)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
	assert.Equal(t, time.Second/30, mockInitial.lastDT, "dt follows the display framerate")
	assert.Equal(t, uint64(1), g.Ticks())
}

func TestGame_DefaultTick(t *testing.T) {
	g := New(&mockScene{}, config.DisplayConfig{}, nil)
	assert.Equal(t, time.Second/60, g.TickDuration())

	w, h := g.Layout(800, 600)
	assert.Equal(t, 800, w, "unset display falls back to the outside size")
	assert.Equal(t, 600, h)
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testDisplay, nil)

	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testDisplay, nil)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := New(scene1, testDisplay, nil)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	// First update triggers transition
	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	// Second update goes to scene2
	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil} // Returns nil, no transition

	g := New(scene1, testDisplay, nil)

	// Multiple updates, no transition
	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	g := New(scene1, testDisplay, nil)

	err := g.Update()
	assert.ErrorIs(t, err, assert.AnError, "Error should propagate from scene")
	assert.Zero(t, g.Ticks(), "a failed update is not counted")
}

func TestGame_Close(t *testing.T) {
	s := &mockScene{}
	g := New(s, testDisplay, nil)

	g.Close()
	assert.Equal(t, 1, s.onExitCalled)
}
