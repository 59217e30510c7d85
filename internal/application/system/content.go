package system

import (
	"fmt"
	"time"

	"github.com/younwookim/sidescroll/internal/domain/entity"
)

// ProjectileSystem moves spell entities and applies their hits
type ProjectileSystem struct{}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

// Update implements Behavior
func (s *ProjectileSystem) Update(w *World, e *entity.Entity, _ time.Duration) {
	spell := e.Spell
	if spell == nil {
		return
	}
	if spell.Expired() {
		w.Despawn(e.Name)
		return
	}

	if !spell.Melee && e.Vel != (entity.Velocity{}) {
		next := entity.Point{X: e.Pos.X + e.Vel.X, Y: e.Pos.Y + e.Vel.Y}
		if w.BlockedByLevel(e, next) {
			w.Despawn(e.Name)
			return
		}
		e.Pos = next
	}

	area := e.Rect()
	for _, o := range w.Registry.Entities() {
		if !s.canHit(e, o) || !o.Rect().Intersects(area) {
			continue
		}
		if !spell.MarkHit(o.Name) {
			continue
		}
		w.Damage(o, spell.Damage, spell.Element)
		if !spell.Melee {
			w.Despawn(e.Name)
			return
		}
	}
}

func (s *ProjectileSystem) canHit(spell, o *entity.Entity) bool {
	return o != spell &&
		o.Name != spell.Spell.Owner &&
		o.Alive &&
		o.Combatant() &&
		o.Faction != spell.Faction &&
		o.Spell == nil
}

// PickupSystem hands loot to the player on contact
type PickupSystem struct {
	messageTTL time.Duration
}

// NewPickupSystem creates a new pickup system
func NewPickupSystem(messageTTL time.Duration) *PickupSystem {
	return &PickupSystem{messageTTL: messageTTL}
}

// Update implements Behavior
func (s *PickupSystem) Update(w *World, e *entity.Entity, _ time.Duration) {
	loot := e.Loot
	if loot == nil {
		return
	}
	player, ok := w.Player()
	if !ok || !player.Alive || !player.Rect().Intersects(e.Rect()) {
		return
	}

	if w.Progression != nil {
		if loot.Item != "" {
			w.Progression.AddItem(loot.Item, max(loot.Amount, 1))
		}
		if loot.Exp > 0 {
			w.Progression.AddExp(loot.Exp)
		}
	}

	switch {
	case loot.Item != "":
		player.AddMessage(fmt.Sprintf("+%d %s", max(loot.Amount, 1), loot.Item), entity.ColorBroadcast, s.messageTTL)
	case loot.Exp > 0:
		player.AddMessage(fmt.Sprintf("+%d exp", loot.Exp), entity.ColorHeal, s.messageTTL)
	}

	w.Log.WithField("entity", e.Name).WithField("item", loot.Item).Debug("picked up")
	w.Despawn(e.Name)
}
