package system

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/sidescroll/internal/domain/entity"
)

var deathNotices = []string{
	"has fallen!",
	"died!",
	"was defeated!",
	"is no more.",
}

// Damage applies mitigated damage. Returns false for dead or factionless
// targets, which take no damage at all.
func (w *World) Damage(e *entity.Entity, amount float64, el entity.Element) bool {
	if !e.Alive || e.Faction == "" {
		return false
	}

	if def := e.Defense[el]; def != 0 {
		amount *= (100 - def) / 100
	}

	e.Health = math.Max(e.Health-amount, 0)
	e.AddMessage(fmt.Sprintf("-%d", int(math.Round(amount))), entity.ColorDamage, w.Config.Combat.Message())
	e.Flinch = w.Config.Combat.Flinch()

	if e.Health <= 0 {
		e.Alive = false
		w.death(e)
	}
	return true
}

// Heal restores health up to the maximum. A corpse gains health too but
// stays dead: Alive is only ever cleared.
func (w *World) Heal(e *entity.Entity, amount float64) bool {
	if amount <= 0 {
		return false
	}
	e.Health = math.Min(e.Health+amount, e.MaxHealth)
	e.AddMessage(fmt.Sprintf("+%d", int(math.Round(amount))), entity.ColorHeal, w.Config.Combat.Message())
	return true
}

// death pays out drops and experience and leaves a passable corpse.
// Callers guarantee it runs once, by flipping Alive first.
func (w *World) death(e *entity.Entity) {
	if e.ShowDeathMessage && e.Faction != "" {
		w.Broadcast(fmt.Sprintf("%s %s", e.Name, deathNotices[w.Rng.Intn(len(deathNotices))]), w.Config.Combat.Notice())
	}

	center := entity.Point{
		X: e.Pos.X + e.Shape.OffsetX + e.Shape.Width/2,
		Y: e.Pos.Y + e.Shape.OffsetY,
	}

	drops := 0
	if w.Items != nil {
		items := make([]string, 0, len(e.DropTable))
		for item := range e.DropTable {
			items = append(items, item)
		}
		sort.Strings(items)

		for _, item := range items {
			if w.Rng.Intn(100) >= e.DropTable[item] {
				continue
			}
			if loot, ok := w.Items.InstantiateItem(item, center); ok {
				w.Spawn(loot)
				drops++
			}
		}
	}

	orbs := 0
	if n := w.Config.Combat.OrbCount; w.Orbs != nil && e.ExpValue > 0 && n > 0 {
		share := e.ExpValue / n
		for i := 0; i < n; i++ {
			orb := w.Orbs.NewOrb(center, share)
			orb.Vel = entity.Velocity{X: w.Rng.Intn(11) - 5, Y: -w.Rng.Intn(10) - 5}
			w.Spawn(orb)
			orbs++
		}
	}

	e.PendingSpell = nil
	e.IsAnimating = false
	e.Vel = entity.Velocity{}
	e.SetAnim(entity.StripJump, entity.StageDead)
	e.Passable = true

	w.Log.WithFields(logrus.Fields{
		"entity": e.Name,
		"drops":  drops,
		"orbs":   orbs,
	}).Info("entity died")
}
