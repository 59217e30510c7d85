package system

import (
	"time"

	"github.com/younwookim/sidescroll/internal/domain/entity"
)

// Behavior is one component of an entity's per-tick update
type Behavior interface {
	Update(w *World, e *entity.Entity, dt time.Duration)
}

// BehaviorFunc adapts a function to Behavior
type BehaviorFunc func(w *World, e *entity.Entity, dt time.Duration)

// Update implements Behavior
func (f BehaviorFunc) Update(w *World, e *entity.Entity, dt time.Duration) {
	f(w, e, dt)
}

// CastIntent is the decision to cast. It is stored on the caster and only
// becomes a spell entity at the trigger frame of the action strip.
type CastIntent struct {
	Ability      string
	Socket       int // progression socket, -1 when not bound to one
	Strip        int
	TriggerFrame int
	Lift         int // pixels above the shape's vertical center
}
