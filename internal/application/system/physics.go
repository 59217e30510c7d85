package system

import (
	"time"

	"github.com/younwookim/sidescroll/internal/domain/entity"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

// Integrator names accepted in sim.json
const (
	IntegratorRefined = "refined"
	IntegratorBasic   = "basic"
)

// JumpDebounceTicks is how many airborne ticks pass before the jump strip shows
const JumpDebounceTicks = 3

// PhysicsSystem advances position and velocity under gravity and collision
type PhysicsSystem struct {
	config *config.PhysicsSettings
	basic  bool
}

// NewPhysicsSystem creates a new physics system using the configured integrator
func NewPhysicsSystem(cfg *config.PhysicsSettings) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		basic:  cfg.Integrator == IntegratorBasic,
	}
}

// Update implements Behavior
func (s *PhysicsSystem) Update(w *World, e *entity.Entity, _ time.Duration) {
	if !e.Alive {
		FindGround(w, e)
		return
	}
	if s.basic {
		s.advanceBasic(w, e)
	} else {
		s.advance(w, e)
	}
	UpdateJumpAnim(e)
}

// advance is the refined integrator: slope climbing on the horizontal step
// and a landing scan on the vertical step.
func (s *PhysicsSystem) advance(w *World, e *entity.Entity) {
	s.applyForces(e)

	pos := e.Pos

	// Horizontal step
	if e.Vel.X != 0 {
		next := entity.Point{X: pos.X + e.Vel.X, Y: pos.Y}
		if w.Blocked(e, next) {
			next = s.climb(w, e, next)
		}
		pos = next
	}

	// Vertical step
	if e.Vel.Y != 0 {
		next := entity.Point{X: pos.X, Y: pos.Y + e.Vel.Y}
		switch {
		case !w.Blocked(e, next):
			e.Grounded = false
			pos = next
		case e.Vel.Y < 0:
			e.Vel.Y = 0
		default:
			pos.Y = s.landingY(w, e, pos)
			e.Grounded = true
		}
	}

	e.Pos = pos

	if e.Vel.Y < 0 {
		e.Grounded = false
	}
	if e.Grounded {
		e.Vel = entity.Velocity{}
	}
}

func (s *PhysicsSystem) applyForces(e *entity.Entity) {
	e.Vel.X = clampInt(e.Vel.X, -s.config.MaxRunSpeed, s.config.MaxRunSpeed)
	if e.Crouched {
		e.Vel.X /= 2
	}

	e.Vel.Y += e.Weight * s.config.Gravity
	if e.Vel.Y > s.config.MaxFallSpeed {
		e.Vel.Y = s.config.MaxFallSpeed
	}
}

// climb probes upward from a blocked destination at a reduced horizontal
// offset. Returns the original x when no free cell is found.
func (s *PhysicsSystem) climb(w *World, e *entity.Entity, blocked entity.Point) entity.Point {
	probe := entity.Point{X: blocked.X - e.Vel.X/3, Y: blocked.Y}
	for i := 0; i < e.Shape.Height/3; i++ {
		probe.Y--
		if !w.Blocked(e, probe) {
			return probe
		}
	}
	e.Vel.X = 0
	return e.Pos
}

// landingY scans down from the start and stops above the first blocked row,
// so the body rests on the first surface it meets.
func (s *PhysicsSystem) landingY(w *World, e *entity.Entity, from entity.Point) int {
	for d := 1; d < e.Vel.Y; d++ {
		if w.Blocked(e, entity.Point{X: from.X, Y: from.Y + d}) {
			return from.Y + d - 1
		}
	}
	return from.Y + e.Vel.Y - 1
}

// advanceBasic is the legacy integrator. Both axes move pixel by pixel
// until blocked; there is no slope climbing.
func (s *PhysicsSystem) advanceBasic(w *World, e *entity.Entity) {
	s.applyForces(e)

	if step := sign(e.Vel.X); step != 0 {
		for i := 0; i < abs(e.Vel.X); i++ {
			next := entity.Point{X: e.Pos.X + step, Y: e.Pos.Y}
			if w.Blocked(e, next) {
				e.Vel.X = 0
				break
			}
			e.Pos = next
		}
	}

	e.Grounded = false
	if step := sign(e.Vel.Y); step != 0 {
		for i := 0; i < abs(e.Vel.Y); i++ {
			next := entity.Point{X: e.Pos.X, Y: e.Pos.Y + step}
			if w.Blocked(e, next) {
				if step > 0 {
					e.Grounded = true
				}
				e.Vel.Y = 0
				break
			}
			e.Pos = next
		}
	}

	if e.Grounded {
		e.Vel.X = 0
	}
}

// FindGround snaps a corpse onto the geometry below it, or lifts it out of
// geometry it is embedded in. Only level geometry is considered.
func FindGround(w *World, e *entity.Entity) {
	if w.Oracle == nil {
		return
	}
	_, bh := w.Oracle.Bounds()

	if w.BlockedByLevel(e, e.Pos) {
		for i := 0; i < e.Shape.Height && w.BlockedByLevel(e, e.Pos); i++ {
			e.Pos.Y--
		}
	} else {
		for i := 0; i < bh; i++ {
			down := entity.Point{X: e.Pos.X, Y: e.Pos.Y + 1}
			if w.BlockedByLevel(e, down) {
				break
			}
			e.Pos = down
		}
	}

	e.Vel = entity.Velocity{}
	e.Grounded = true
}

// UpdateJumpAnim debounces the jump strip: it only shows after
// JumpDebounceTicks consecutive airborne ticks.
func UpdateJumpAnim(e *entity.Entity) {
	if e.NewStrip > entity.StripCrouch {
		return
	}
	if e.Grounded {
		if e.NewStrip != entity.StripWalk && e.Strip == entity.StripJump && e.Stage == entity.StageRising {
			e.NewStrip = entity.StripJump
			e.NewStage = entity.StageIdle
		}
		e.AirborneTicks = 0
		return
	}

	e.AirborneTicks++
	if e.AirborneTicks >= JumpDebounceTicks {
		e.NewStrip = entity.StripJump
		e.NewStage = entity.StageRising
		e.AirborneTicks = 0
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
