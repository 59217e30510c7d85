package system

import (
	"time"

	"github.com/younwookim/sidescroll/internal/domain/entity"
)

// Animate runs the strip/stage machine on the entity's own clock.
// The pending spell is emitted from here at the cast trigger frame.
func (w *World) Animate(e *entity.Entity, dt time.Duration) {
	if !e.Alive {
		e.SetAnim(entity.StripJump, entity.StageDead)
		e.Passable = true
		return
	}

	e.AnimTimer -= dt
	if e.AnimTimer > 0 {
		return
	}
	e.AnimTimer = e.AnimInterval

	switch {
	case e.IsAnimating:
		e.Stage++
		if e.Strip >= entity.StripAction && e.Stage == e.CastTriggerFrame && e.PendingSpell != nil {
			w.emitSpell(e)
		}
		if e.Stage > e.AnimStages {
			if e.Strip >= entity.StripAction {
				e.IsAnimating = false
				e.PendingSpell = nil
				e.Strip = entity.StripWalk
				e.NewStrip = entity.StripWalk
			}
			e.Stage = 1
		}

	case e.NewStrip != e.Strip:
		e.Strip = clampInt(e.NewStrip, 1, e.TotalStrips)
		e.NewStrip = e.Strip
		switch {
		case e.Strip == entity.StripJump:
			e.Stage = max(e.NewStage, 1)
		case e.Strip >= entity.StripAction:
			e.Stage = 1
			e.IsAnimating = true
		default:
			e.Stage = 1
		}

	case e.Strip == entity.StripWalk || e.Strip == entity.StripCrouch:
		e.Stage++
		if e.Stage > e.AnimStages {
			e.Stage = 1
		}
	}

	if e.NewStage != 0 {
		e.Stage = e.NewStage
		e.NewStage = 0
	}
	e.SetAnim(e.Strip, e.Stage)
}
