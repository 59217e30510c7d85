package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sidescroll/internal/domain/entity"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

func newPhysics(integrator string) *PhysicsSystem {
	cfg := config.DefaultSim().Physics
	cfg.Integrator = integrator
	return NewPhysicsSystem(&cfg)
}

func TestPhysics_WeightlessBodyStaysPut(t *testing.T) {
	w := newTestWorld(entity.NewMask(100, 100))
	e := w.Spawn(createTestEntity("rock", "", 40, 40))
	e.Weight = 0

	sys := newPhysics(IntegratorRefined)
	for i := 0; i < 100; i++ {
		sys.Update(w, e, testTick)
	}

	assert.Equal(t, entity.Point{X: 40, Y: 40}, e.Pos)
	assert.Equal(t, entity.Velocity{}, e.Vel)
}

func TestPhysics_MovesThenFallsOntoFloor(t *testing.T) {
	w := newTestWorld(createTestStage())
	e := w.Spawn(createTestEntity("box", "", 0, 0))
	e.Weight = 0
	e.Vel = entity.Velocity{X: 10}

	sys := newPhysics(IntegratorRefined)
	sys.Update(w, e, testTick)

	assert.Equal(t, entity.Point{X: 10, Y: 0}, e.Pos)
	assert.False(t, e.Grounded)

	e.Weight = 1
	e.Vel.X = 0
	for i := 0; i < 50 && !e.Grounded; i++ {
		sys.Update(w, e, testTick)
	}

	require.True(t, e.Grounded)
	assert.Equal(t, 30, e.Pos.Y, "feet rest flush on the floor")
	assert.Equal(t, entity.Velocity{}, e.Vel)
}

func TestPhysics_LandsOnFirstSurface(t *testing.T) {
	for _, integrator := range []string{IntegratorRefined, IntegratorBasic} {
		t.Run(integrator, func(t *testing.T) {
			stage := entity.NewMask(200, 200)
			stage.Fill(0, 25, 200, 1)
			stage.Fill(0, 59, 200, 141)
			w := newTestWorld(stage)

			e := w.Spawn(createTestEntity("faller", "", 20, 0))
			e.Vel.Y = 38

			newPhysics(integrator).Update(w, e, testTick)

			assert.Equal(t, entity.Point{X: 20, Y: 5}, e.Pos, "rests on the platform, not the floor")
			assert.True(t, e.Grounded)
			assert.Zero(t, e.Vel.Y)
		})
	}
}

func TestPhysics_SlopeClimb(t *testing.T) {
	t.Run("climbs a one pixel step", func(t *testing.T) {
		stage := createTestStage()
		stage.Fill(40, 49, 160, 1)
		w := newTestWorld(stage)

		e := w.Spawn(createTestEntity("walker", "", 25, 30))
		e.Grounded = true
		e.Vel.X = 10

		newPhysics(IntegratorRefined).Update(w, e, testTick)

		assert.Greater(t, e.Pos.X, 25)
		assert.Equal(t, 29, e.Pos.Y)
		assert.True(t, e.Grounded)
	})

	t.Run("halts at a wall taller than the probe", func(t *testing.T) {
		stage := createTestStage()
		stage.Fill(40, 30, 10, 20)
		w := newTestWorld(stage)

		e := w.Spawn(createTestEntity("walker", "", 25, 30))
		e.Grounded = true
		e.Vel.X = 10

		newPhysics(IntegratorRefined).Update(w, e, testTick)

		assert.Equal(t, entity.Point{X: 25, Y: 30}, e.Pos)
		assert.Zero(t, e.Vel.X)
	})
}

func TestPhysics_CeilingStopsUpwardMotion(t *testing.T) {
	stage := createTestStage()
	stage.Fill(0, 0, 200, 10)
	w := newTestWorld(stage)

	e := w.Spawn(createTestEntity("jumper", "", 20, 12))
	e.Vel.Y = -20

	newPhysics(IntegratorRefined).Update(w, e, testTick)

	assert.Equal(t, 12, e.Pos.Y)
	assert.Zero(t, e.Vel.Y)
	assert.False(t, e.Grounded)
}

func TestPhysics_VelocityClamps(t *testing.T) {
	tests := []struct {
		name     string
		vx       int
		crouched bool
		wantVX   int
	}{
		{"clamped right", 100, false, 30},
		{"clamped left", -100, false, -30},
		{"halved while crouched", 20, true, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(entity.NewMask(400, 400))
			e := w.Spawn(createTestEntity("e", "", 150, 100))
			e.Vel.X = tt.vx
			e.Crouched = tt.crouched

			newPhysics(IntegratorRefined).Update(w, e, testTick)

			assert.Equal(t, tt.wantVX, e.Vel.X)
		})
	}
}

func TestPhysics_FallSpeedClamp(t *testing.T) {
	w := newTestWorld(entity.NewMask(100, 1000))
	e := w.Spawn(createTestEntity("e", "", 10, 0))
	e.Weight = 50

	newPhysics(IntegratorRefined).Update(w, e, testTick)

	assert.Equal(t, 40, e.Vel.Y)
	assert.Equal(t, 40, e.Pos.Y)
}

func TestPhysics_DeadEntitySnapsToGround(t *testing.T) {
	w := newTestWorld(createTestStage())
	e := w.Spawn(createTestEntity("corpse", "monster", 60, 5))
	e.Alive = false
	e.Vel = entity.Velocity{X: 7, Y: 3}

	newPhysics(IntegratorRefined).Update(w, e, testTick)

	assert.Equal(t, entity.Point{X: 60, Y: 30}, e.Pos)
	assert.Equal(t, entity.Velocity{}, e.Vel)
}

func TestPhysics_DeadEntityLiftedOutOfFloor(t *testing.T) {
	w := newTestWorld(createTestStage())
	e := w.Spawn(createTestEntity("corpse", "monster", 60, 36))
	e.Alive = false

	FindGround(w, e)

	assert.Equal(t, 30, e.Pos.Y)
}

func TestPhysics_BasicIntegrator(t *testing.T) {
	stage := createTestStage()
	stage.Fill(60, 0, 10, 50)
	w := newTestWorld(stage)

	e := w.Spawn(createTestEntity("legacy", "", 40, 0))
	e.Vel.X = 30

	sys := newPhysics(IntegratorBasic)
	for i := 0; i < 30; i++ {
		sys.Update(w, e, testTick)
	}

	assert.True(t, e.Grounded)
	assert.Equal(t, 30, e.Pos.Y)
	assert.LessOrEqual(t, e.Rect().Right(), 60, "never enters the wall")
}

func TestPhysics_EntitiesBlockAcrossFactions(t *testing.T) {
	tests := []struct {
		name        string
		other       string
		wantBlocked bool
	}{
		{"hostile faction blocks", "monster", true},
		{"same faction walks through", "hero", false},
		{"factionless walks through", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(createTestStage())
			mover := w.Spawn(createTestEntity("mover", "hero", 20, 30))
			mover.Grounded = true
			w.Spawn(createTestEntity("wall", tt.other, 35, 30))

			mover.Vel.X = 10
			newPhysics(IntegratorRefined).Update(w, mover, testTick)

			if tt.wantBlocked {
				assert.Equal(t, 20, mover.Pos.X)
			} else {
				assert.Equal(t, 30, mover.Pos.X)
			}
		})
	}
}

func TestUpdateJumpAnim_Debounce(t *testing.T) {
	e := createTestEntity("e", "", 0, 0)
	e.Grounded = false

	UpdateJumpAnim(e)
	UpdateJumpAnim(e)
	assert.Equal(t, entity.StripWalk, e.NewStrip, "two airborne ticks do not switch")

	UpdateJumpAnim(e)
	assert.Equal(t, entity.StripJump, e.NewStrip)
	assert.Equal(t, entity.StageRising, e.NewStage)

	t.Run("grounded resets the counter", func(t *testing.T) {
		e := createTestEntity("e", "", 0, 0)
		UpdateJumpAnim(e)
		UpdateJumpAnim(e)
		e.Grounded = true
		UpdateJumpAnim(e)
		e.Grounded = false
		UpdateJumpAnim(e)
		UpdateJumpAnim(e)
		assert.Equal(t, entity.StripWalk, e.NewStrip)
	})

	t.Run("landing from the rising pose shows idle", func(t *testing.T) {
		e := createTestEntity("e", "", 0, 0)
		e.Strip, e.Stage = entity.StripJump, entity.StageRising
		e.NewStrip = entity.StripJump
		e.Grounded = true
		UpdateJumpAnim(e)
		assert.Equal(t, entity.StageIdle, e.NewStage)
	})

	t.Run("action strips are left alone", func(t *testing.T) {
		e := createTestEntity("e", "", 0, 0)
		e.NewStrip = entity.StripAction
		for i := 0; i < 5; i++ {
			UpdateJumpAnim(e)
		}
		assert.Equal(t, entity.StripAction, e.NewStrip)
	})
}
