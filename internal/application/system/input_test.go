package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sidescroll/internal/domain/entity"
)

func newTestInput(w *World) *InputSystem {
	return NewInputSystem(&w.Config.Jump, &w.Config.Cast)
}

func TestInput_Movement(t *testing.T) {
	tests := []struct {
		name       string
		in         InputSnapshot
		wantVX     int
		wantFacing entity.Facing
	}{
		{"left", InputSnapshot{Left: true}, -4, entity.FacingLeft},
		{"right", InputSnapshot{Right: true}, 4, entity.FacingRight},
		{"none", InputSnapshot{}, 0, entity.FacingRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(createTestStage())
			p := createTestPlayer(w, 50)
			w.Input = &tt.in

			newTestInput(w).Update(w, p, testTick)

			assert.Equal(t, tt.wantVX, p.Vel.X)
			assert.Equal(t, tt.wantFacing, p.Facing)
		})
	}
}

func TestInput_IdlePose(t *testing.T) {
	w := newTestWorld(createTestStage())
	p := createTestPlayer(w, 50)
	w.Input = &InputSnapshot{}
	sys := newTestInput(w)

	sys.Update(w, p, testTick)
	assert.Equal(t, entity.StripJump, p.NewStrip)
	assert.Equal(t, entity.StageIdle, p.NewStage)

	w.Animate(p, testTick)
	require.Equal(t, entity.StripJump, p.Strip)
	require.Equal(t, entity.StageIdle, p.Stage)

	w.Input = &InputSnapshot{Right: true}
	sys.Update(w, p, testTick)
	assert.Equal(t, entity.StripWalk, p.NewStrip, "moving leaves the idle pose")
}

func TestInput_Crouch(t *testing.T) {
	w := newTestWorld(createTestStage())
	p := createTestPlayer(w, 50)
	sys := newTestInput(w)

	w.Input = &InputSnapshot{Down: true}
	sys.Update(w, p, testTick)

	require.True(t, p.Crouched)
	assert.Equal(t, entity.Shape{OffsetY: 10, Width: 10, Height: 10}, p.Shape)
	assert.Equal(t, entity.StripCrouch, p.NewStrip)

	w.Input = &InputSnapshot{}
	sys.Update(w, p, testTick)

	assert.False(t, p.Crouched)
	assert.Equal(t, p.StandingShape, p.Shape)
}

func TestInput_CrouchRestoreRevertsUnderCeiling(t *testing.T) {
	stage := createTestStage()
	w := newTestWorld(stage)
	p := createTestPlayer(w, 50)
	sys := newTestInput(w)

	w.Input = &InputSnapshot{Down: true}
	sys.Update(w, p, testTick)
	require.True(t, p.Crouched)

	stage.Fill(40, 30, 40, 10)
	w.Input = &InputSnapshot{}
	sys.Update(w, p, testTick)

	assert.True(t, p.Crouched, "standing up would collide")
	assert.Equal(t, 10, p.Shape.Height)
}

func TestInput_CrouchNeedsGround(t *testing.T) {
	w := newTestWorld(createTestStage())
	p := createTestPlayer(w, 50)
	p.Grounded = false
	w.Input = &InputSnapshot{Down: true}

	newTestInput(w).Update(w, p, testTick)

	assert.False(t, p.Crouched)
}

func TestInput_Jump(t *testing.T) {
	w := newTestWorld(createTestStage())
	p := createTestPlayer(w, 50)
	sys := newTestInput(w)

	w.Input = &InputSnapshot{}
	sys.Update(w, p, testTick)
	require.Equal(t, 500*time.Millisecond, p.JumpGrace)

	w.Input = &InputSnapshot{Up: true}
	sys.Update(w, p, testTick)
	assert.Equal(t, -32, p.Vel.Y)
	assert.False(t, p.Grounded)
	assert.Zero(t, p.JumpGrace)

	p.Vel.Y = -10
	sys.Update(w, p, testTick)
	assert.Equal(t, -10, p.Vel.Y, "holding up does not jump again")
}

func TestInput_NoJumpWhileCrouched(t *testing.T) {
	w := newTestWorld(createTestStage())
	p := createTestPlayer(w, 50)
	p.JumpGrace = time.Second
	w.Input = &InputSnapshot{Up: true, Down: true}

	newTestInput(w).Update(w, p, testTick)

	assert.Zero(t, p.Vel.Y)
}

func TestInput_EdgeFlagsAreConsumed(t *testing.T) {
	w := newTestWorld(createTestStage())
	p := createTestPlayer(w, 50)
	in := &InputSnapshot{Enter: true, Space: true}
	w.Input = in

	newTestInput(w).Update(w, p, testTick)

	assert.False(t, in.Enter)
	assert.False(t, in.Space)
	assert.Equal(t, entity.FormAlternate, w.Progression.Form)
}

func TestInput_EnterActivatesInFront(t *testing.T) {
	w := newTestWorld(createTestStage())
	p := createTestPlayer(w, 50)
	p.Size = entity.Size{W: 10, H: 20}

	sage := createTestEntity("sage", "", 58, 30)
	sage.Dialogue = &entity.Dialogue{Lines: []string{"hello"}}
	w.Spawn(sage)

	behind := createTestEntity("behind", "", 40, 30)
	behind.Dialogue = &entity.Dialogue{Lines: []string{"psst"}}
	w.Spawn(behind)

	w.Input = &InputSnapshot{Enter: true}
	newTestInput(w).Update(w, p, testTick)

	assert.True(t, sage.Talking)
	assert.False(t, behind.Talking)
}

func TestInput_AbilitySockets(t *testing.T) {
	w := newTestWorld(createTestStage())
	p := createTestPlayer(w, 50)
	w.Progression = entity.NewProgression("", "Fireball")
	sys := newTestInput(w)

	w.Input = &InputSnapshot{Abilities: [entity.SocketCount]bool{true}}
	sys.Update(w, p, testTick)
	assert.Nil(t, p.PendingSpell, "empty socket")

	w.Input = &InputSnapshot{Abilities: [entity.SocketCount]bool{false, true}}
	sys.Update(w, p, testTick)
	require.NotNil(t, p.PendingSpell)
	assert.Equal(t, entity.StripAction+1, p.NewStrip)
	assert.Equal(t, 1, p.CastSocket)
	assert.Equal(t, w.Config.Cast.PlayerTriggerFrame, p.CastTriggerFrame)
	assert.Equal(t, 2-w.Config.Cast.Lift(1), p.CastOffset.Y)
}

func TestInput_NoCastWhileCrouched(t *testing.T) {
	w := newTestWorld(createTestStage())
	p := createTestPlayer(w, 50)
	w.Progression = entity.NewProgression("Fireball")
	w.Input = &InputSnapshot{Down: true, Abilities: [entity.SocketCount]bool{true}}

	newTestInput(w).Update(w, p, testTick)

	assert.True(t, p.Crouched)
	assert.Nil(t, p.PendingSpell)
}
