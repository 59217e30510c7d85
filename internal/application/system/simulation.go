package system

import (
	"time"

	"github.com/younwookim/sidescroll/internal/domain/entity"
)

type slot struct {
	flag      entity.Behaviors
	behavior  Behavior
	aliveOnly bool
}

// Simulation steps every entity of a world in registry order
type Simulation struct {
	world    *World
	slots    []slot
	dialogue *DialogueSystem
	tick     uint64
}

// NewSimulation wires the behavior systems from the world's config.
// Physics always runs first; the rest only run for living entities.
func NewSimulation(w *World) *Simulation {
	cfg := w.Config
	dialogue := NewDialogueSystem(&cfg.Dialogue)
	return &Simulation{
		world: w,
		slots: []slot{
			{entity.Physics, NewPhysicsSystem(&cfg.Physics), false},
			{entity.PlayerControlled, NewInputSystem(&cfg.Jump, &cfg.Cast), true},
			{entity.SimpleEnemy, NewPerceptionSystem(&cfg.Perception, &cfg.Cast), true},
			{entity.DialogueTrigger, dialogue, true},
			{entity.Projectile, NewProjectileSystem(), true},
			{entity.Pickup, NewPickupSystem(cfg.Combat.Message()), true},
		},
		dialogue: dialogue,
	}
}

// World returns the simulated world
func (s *Simulation) World() *World {
	return s.world
}

// Tick returns the number of completed steps
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Step advances the world by one tick. Entities spawned during the step are
// first updated on the next one; entities removed during it are skipped.
// Edge flags of in are cleared when consumed.
func (s *Simulation) Step(in *InputSnapshot, dt time.Duration) {
	w := s.world
	if in == nil {
		in = &InputSnapshot{}
	}
	w.Input = in

	names := w.Registry.Names()
	for _, name := range names {
		for _, sl := range s.slots {
			e, ok := w.Registry.Get(name)
			if !ok {
				break
			}
			if !e.Has(sl.flag) || (sl.aliveOnly && !e.Alive) {
				continue
			}
			sl.behavior.Update(w, e, dt)
		}
	}

	for _, name := range names {
		if e, ok := w.Registry.Get(name); ok {
			s.updateTimers(e, dt)
		}
	}

	if w.Progression != nil {
		w.Progression.Tick(dt)
	}
	w.tickBroadcasts(dt)
	s.tick++
}

// updateTimers runs the per-entity clocks, then the animation machine
func (s *Simulation) updateTimers(e *entity.Entity, dt time.Duration) {
	e.SpellCooldown = countdown(e.SpellCooldown, dt)
	e.JumpGrace = countdown(e.JumpGrace, dt)
	e.Flinch = countdown(e.Flinch, dt)
	if e.Spell != nil {
		e.Spell.Lifetime -= dt
	}
	s.dialogue.tickTalking(e, dt)

	kept := e.Messages[:0]
	for _, m := range e.Messages {
		m.Remaining -= dt
		if m.Remaining > 0 {
			kept = append(kept, m)
		}
	}
	e.Messages = kept

	s.world.Animate(e, dt)
}

func countdown(v, dt time.Duration) time.Duration {
	if v <= dt {
		return 0
	}
	return v - dt
}
