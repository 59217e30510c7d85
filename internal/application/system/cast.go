package system

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/sidescroll/internal/domain/entity"
)

// BeginCast starts the wind-up of an ability. Returns false when the cast
// is rejected: a spell is already pending, the entity is mid-animation,
// the socket or spell cooldown is running, the strip does not exist or the
// ability is unknown.
func (w *World) BeginCast(e *entity.Entity, in CastIntent) bool {
	if !e.Alive || e.PendingSpell != nil || e.IsAnimating {
		return false
	}
	if in.Socket >= 0 && w.isPlayer(e) && w.Progression != nil {
		if w.Progression.Cooling(in.Socket) {
			return false
		}
	} else if e.SpellCooldown > 0 {
		return false
	}
	if in.Strip < entity.StripAction || in.Strip > e.TotalStrips {
		return false
	}
	if w.Abilities == nil {
		return false
	}

	// enemies store a pick chance in SpellsKnown, not a mastery level
	level := 1
	if w.isPlayer(e) && w.Progression != nil {
		level = w.Progression.SpellLevel(in.Ability)
	}

	spell, ok := w.Abilities.Instantiate(in.Ability, level, entity.Point{}, e.Facing, e.Name, e.Faction)
	if !ok {
		return false
	}

	e.PendingSpell = spell
	e.CastTriggerFrame = in.TriggerFrame
	e.CastSocket = in.Socket
	e.CastOffset = castOffset(e, spell, w.Config.Cast.SpawnGap, in.Lift)
	e.NewStrip = in.Strip
	e.NewStage = 0

	w.Log.WithFields(logrus.Fields{
		"entity":  e.Name,
		"ability": in.Ability,
		"socket":  in.Socket,
	}).Debug("cast begin")
	return true
}

// castOffset places the spell in front of the shape, mirrored by facing
func castOffset(e *entity.Entity, spell *entity.Entity, gap, lift int) entity.Point {
	y := e.Shape.OffsetY + e.Shape.Height/2 - spell.Shape.OffsetY - spell.Shape.Height/2 - lift
	if e.Facing == entity.FacingLeft {
		return entity.Point{X: e.Shape.OffsetX - gap - spell.Shape.OffsetX - spell.Shape.Width, Y: y}
	}
	return entity.Point{X: e.Shape.OffsetX + e.Shape.Width + gap - spell.Shape.OffsetX, Y: y}
}

// emitSpell places the pending spell into the world and starts cooldowns
func (w *World) emitSpell(e *entity.Entity) {
	spell := e.PendingSpell
	e.PendingSpell = nil
	if spell == nil {
		return
	}

	spell.Pos = e.Pos.Add(e.CastOffset)
	spell.Facing = e.Facing
	if spell.Vel.X != 0 {
		spell.Vel.X = abs(spell.Vel.X) * e.Facing.Sign()
	}
	w.Spawn(spell)

	if spell.Spell != nil {
		e.SpellCooldown = spell.Spell.Cooldown
		if e.CastSocket >= 0 && w.isPlayer(e) && w.Progression != nil {
			w.Progression.StartCooldown(e.CastSocket, spell.Spell.Cooldown)
		}
	}

	w.Log.WithFields(logrus.Fields{
		"entity": e.Name,
		"spell":  spell.Name,
		"x":      spell.Pos.X,
		"y":      spell.Pos.Y,
	}).Debug("cast emit")
}
