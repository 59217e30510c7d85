package system

import (
	"math"
	"sort"
	"time"

	"github.com/younwookim/sidescroll/internal/domain/entity"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

// maxAbilityRolls bounds the draws in pickAbility
const maxAbilityRolls = 20

// RayCast walks the Bresenham line from a to b, both ends included.
// Returns false if any sampled point is out of bounds or occupied.
func RayCast(oracle CollisionOracle, a, b entity.Point) bool {
	bw, bh := oracle.Bounds()
	visible := true
	bresenham(a, b, func(x, y int) bool {
		if x < 0 || y < 0 || x >= bw || y >= bh || oracle.IsOccupied(x, y) {
			visible = false
			return false
		}
		return true
	})
	return visible
}

func bresenham(a, b entity.Point, visit func(x, y int) bool) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	errv := dx + dy
	x, y := a.X, a.Y
	for {
		if !visit(x, y) {
			return
		}
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * errv
		if e2 >= dy {
			errv += dy
			x += sx
		}
		if e2 <= dx {
			errv += dx
			y += sy
		}
	}
}

// eye is the point sight lines start from and end at
func eye(e *entity.Entity) entity.Point {
	return entity.Point{
		X: e.Pos.X + e.Shape.OffsetX + e.Shape.Width/2,
		Y: e.Pos.Y + e.Shape.OffsetY + e.Shape.Height/2,
	}
}

// EnemyRayCast returns the nearest hostile, non-passable entity in front of
// e within sight range that has a clear line of sight. Equal distances keep
// the earlier entity in registry order.
func (w *World) EnemyRayCast(e *entity.Entity) (*entity.Entity, bool) {
	if w.Oracle == nil {
		return nil, false
	}
	sight := w.Config.Perception.SightRange
	limit := sight * sight
	from := eye(e)

	var best *entity.Entity
	bestDist := math.MaxInt
	w.Registry.Each(func(o *entity.Entity) bool {
		if !e.Hostile(o) || o.Passable {
			return true
		}
		to := eye(o)
		if (e.Facing == entity.FacingRight && to.X <= from.X) ||
			(e.Facing == entity.FacingLeft && to.X >= from.X) {
			return true
		}
		d := from.DistSq(to)
		if d >= limit || d >= bestDist {
			return true
		}
		if RayCast(w.Oracle, from, to) {
			best, bestDist = o, d
		}
		return true
	})
	return best, best != nil
}

// PerceptionSystem drives simple enemies: patrol, spot, chase and attack
type PerceptionSystem struct {
	config *config.PerceptionConfig
	cast   *config.CastConfig
}

// NewPerceptionSystem creates a new perception system
func NewPerceptionSystem(cfg *config.PerceptionConfig, cast *config.CastConfig) *PerceptionSystem {
	return &PerceptionSystem{config: cfg, cast: cast}
}

// Update implements Behavior
func (s *PerceptionSystem) Update(w *World, e *entity.Entity, _ time.Duration) {
	m := e.Mind
	if m == nil {
		return
	}

	if m.Alerted() {
		s.chase(w, e, m)
	} else {
		s.patrol(w, e, m)
	}

	log := w.Log.WithField("entity", e.Name)
	if target, ok := w.EnemyRayCast(e); ok {
		if m.Alert(target.Name, target.Pos) {
			log.WithField("target", target.Name).Debug("alerted")
		}
	} else if m.Calm() {
		log.Debug("calmed")
	}
}

func (s *PerceptionSystem) patrol(w *World, e *entity.Entity, m *entity.Mind) {
	e.Vel.X = e.Facing.Sign() * e.Speed
	m.PatrolDistance -= s.config.PatrolStep
	if m.PatrolDistance <= 0 {
		span := max(s.config.PatrolMax-s.config.PatrolMin+1, 1)
		m.PatrolDistance = (w.Rng.Intn(span) + s.config.PatrolMin) * s.config.PatrolUnit
		e.Facing = e.Facing.Flip()
	}
}

func (s *PerceptionSystem) chase(w *World, e *entity.Entity, m *entity.Mind) {
	target := m.LastKnownTarget
	if target.X < e.Pos.X {
		e.Facing = entity.FacingLeft
	} else {
		e.Facing = entity.FacingRight
	}
	e.Vel.X = e.Facing.Sign() * (e.Speed + s.config.ChaseBonus)
	if !e.IsAnimating && e.PendingSpell == nil {
		e.NewStrip = entity.StripWalk
	}

	if e.Grounded && s.config.HopChance > 0 && w.Rng.Intn(s.config.HopChance) == 1 {
		e.Vel.Y -= s.config.HopVelocity
	}

	origin := entity.Point{X: e.Pos.X + e.Shape.OffsetX, Y: e.Pos.Y + e.Shape.OffsetY}
	if origin.DistSq(target) >= s.config.EngageRangeSq {
		return
	}
	if abs(e.Pos.X-target.X) < s.config.DisengageDistance {
		if m.Calm() {
			w.Log.WithField("entity", e.Name).Debug("lost interest")
		}
		return
	}
	if e.SpellCooldown > 0 || e.IsAnimating || e.Strip >= entity.StripAction || e.PendingSpell != nil {
		return
	}

	w.BeginCast(e, CastIntent{
		Ability:      s.pickAbility(w, e),
		Socket:       -1,
		Strip:        entity.StripAction,
		TriggerFrame: s.cast.EnemyTriggerFrame,
	})
}

// pickAbility draws a known ability uniformly and keeps it when its chance
// roll passes. Strike always passes and is the fallback once the rolls run out.
func (s *PerceptionSystem) pickAbility(w *World, e *entity.Entity) string {
	names := make([]string, 0, len(e.SpellsKnown)+1)
	for name := range e.SpellsKnown {
		names = append(names, name)
	}
	if _, ok := e.SpellsKnown[entity.StrikeAbility]; !ok {
		names = append(names, entity.StrikeAbility)
	}
	sort.Strings(names)

	for i := 0; i < maxAbilityRolls; i++ {
		name := names[w.Rng.Intn(len(names))]
		if name == entity.StrikeAbility || w.Rng.Intn(100) < e.SpellsKnown[name] {
			return name
		}
	}
	return entity.StrikeAbility
}
