package system

import (
	"time"

	"github.com/younwookim/sidescroll/internal/domain/entity"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

// InputSnapshot holds the input state of one tick.
// Enter and Space are edge-triggered: the consumer clears them.
type InputSnapshot struct {
	Left      bool
	Right     bool
	Up        bool
	Down      bool
	Enter     bool
	Space     bool
	Abilities [entity.SocketCount]bool
}

// ConsumeEnter returns the Enter edge and clears it
func (in *InputSnapshot) ConsumeEnter() bool {
	v := in.Enter
	in.Enter = false
	return v
}

// ConsumeSpace returns the Space edge and clears it
func (in *InputSnapshot) ConsumeSpace() bool {
	v := in.Space
	in.Space = false
	return v
}

// InputSystem applies the input snapshot to the player-controlled entity
type InputSystem struct {
	jump *config.JumpConfig
	cast *config.CastConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(jump *config.JumpConfig, cast *config.CastConfig) *InputSystem {
	return &InputSystem{jump: jump, cast: cast}
}

// Update implements Behavior
func (s *InputSystem) Update(w *World, e *entity.Entity, _ time.Duration) {
	in := w.Input
	if in == nil {
		return
	}

	s.handleMovement(e, in)
	s.handleCrouch(w, e, in)
	s.handleJump(e, in)

	if in.ConsumeEnter() {
		s.activateInFront(w, e)
	}
	if in.ConsumeSpace() && w.Progression != nil {
		w.Progression.ToggleForm()
	}

	if !e.Crouched {
		s.handleAbilities(w, e, in)
	}

	if e.Grounded {
		e.JumpGrace = s.jump.Grace()
	}
}

// handleMovement handles horizontal movement and the idle pose
func (s *InputSystem) handleMovement(e *entity.Entity, in *InputSnapshot) {
	leavingIdle := e.Strip == entity.StripJump && e.Stage != entity.StageRising && e.Stage != entity.StageDead

	switch {
	case in.Left || in.Right:
		if in.Left {
			e.Vel.X = -e.Speed
			e.Facing = entity.FacingLeft
		} else {
			e.Vel.X = e.Speed
			e.Facing = entity.FacingRight
		}
		if leavingIdle {
			if e.Crouched {
				e.NewStrip = entity.StripCrouch
			} else {
				e.NewStrip = entity.StripWalk
			}
		}
	case e.Strip == entity.StripWalk:
		e.NewStrip = entity.StripJump
		e.NewStage = entity.StageIdle
	case e.Strip == entity.StripCrouch:
		e.NewStrip = entity.StripJump
		e.NewStage = entity.StageCrouchIdle
	}
}

// handleCrouch halves the shape while Down is held on the ground and
// stands back up on release unless the standing shape would collide.
func (s *InputSystem) handleCrouch(w *World, e *entity.Entity, in *InputSnapshot) {
	switch {
	case in.Down && e.Grounded && !e.Crouched:
		e.Crouched = true
		e.Shape = e.StandingShape.Crouched()
		switch {
		case e.Strip == entity.StripWalk:
			e.NewStrip = entity.StripCrouch
		case e.Strip == entity.StripJump && e.Stage == entity.StageIdle:
			e.NewStage = entity.StageCrouchIdle
		}

	case !in.Down && e.Crouched:
		crouched := e.Shape
		e.Shape = e.StandingShape
		if w.Blocked(e, e.Pos) {
			e.Shape = crouched
			return
		}
		e.Crouched = false
		switch {
		case e.Strip == entity.StripCrouch:
			e.NewStrip = entity.StripWalk
		case e.Strip == entity.StripJump && e.Stage == entity.StageCrouchIdle:
			e.NewStage = entity.StageIdle
		}
	}
}

// handleJump jumps while the grace timer runs. The timer is spent so that
// holding Up cannot extend the jump.
func (s *InputSystem) handleJump(e *entity.Entity, in *InputSnapshot) {
	if !in.Up || e.JumpGrace <= 0 || e.Crouched {
		return
	}
	e.Vel.Y = -s.jump.Velocity
	e.Grounded = false
	e.JumpGrace = 0
}

// activateInFront activates every entity overlapping the area in front of e
func (s *InputSystem) activateInFront(w *World, e *entity.Entity) {
	area := entity.Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.Size.W, H: e.Size.H}
	if e.Facing == entity.FacingLeft {
		area.X -= e.Size.W / 2
	} else {
		area.X += e.Size.W / 2
	}

	for _, o := range w.Registry.Entities() {
		if o == e || !o.Rect().Intersects(area) {
			continue
		}
		w.Activate(o)
	}
}

func (s *InputSystem) handleAbilities(w *World, e *entity.Entity, in *InputSnapshot) {
	if w.Progression == nil {
		return
	}
	for i, pressed := range in.Abilities {
		if !pressed {
			continue
		}
		ability := w.Progression.Socket(i)
		if ability == "" {
			continue
		}
		if w.BeginCast(e, CastIntent{
			Ability:      ability,
			Socket:       i,
			Strip:        entity.StripAction + i,
			TriggerFrame: s.cast.PlayerTriggerFrame,
			Lift:         s.cast.Lift(i),
		}) {
			return
		}
	}
}
