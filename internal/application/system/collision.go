package system

import "github.com/younwookim/sidescroll/internal/domain/entity"

// LevelBlocker is reported when static geometry blocks a shape
const LevelBlocker = "level"

// Edge probes of a collision shape. The interior is never sampled.
const (
	baseProbeRows = 4
	topProbeRows  = 3
	sideProbeCols = 3
)

// CheckCollision reports what blocks e's shape placed at pos.
// Out of bounds reports e itself as the blocker.
func (w *World) CheckCollision(e *entity.Entity, pos entity.Point) (string, bool) {
	r := e.Shape.At(pos)
	if w.outOfBounds(r) {
		return e.Name, true
	}
	if name, ok := w.collideEntitiesOther(e, r); ok {
		return name, true
	}
	if w.levelBlocked(r, e.Facing) {
		return LevelBlocker, true
	}
	return "", false
}

// Blocked is CheckCollision without the blocker name
func (w *World) Blocked(e *entity.Entity, pos entity.Point) bool {
	_, blocked := w.CheckCollision(e, pos)
	return blocked
}

// BlockedByLevel only considers bounds and static geometry
func (w *World) BlockedByLevel(e *entity.Entity, pos entity.Point) bool {
	r := e.Shape.At(pos)
	return w.outOfBounds(r) || w.levelBlocked(r, e.Facing)
}

func (w *World) outOfBounds(r entity.Rect) bool {
	if w.Oracle == nil {
		return false
	}
	bw, bh := w.Oracle.Bounds()
	return r.X < 0 || r.Y < 0 || r.Right() > bw || r.Bottom() > bh
}

// collideEntitiesOther returns the first entity in registry order that
// blocks r. Passable or factionless movers walk through everything, and
// only non-passable entities of a different, non-empty faction block.
func (w *World) collideEntitiesOther(e *entity.Entity, r entity.Rect) (string, bool) {
	if e.Passable || e.Faction == "" {
		return "", false
	}
	var blocker string
	w.Registry.Each(func(o *entity.Entity) bool {
		if o == e || o.Passable || o.Faction == "" || o.Faction == e.Faction {
			return true
		}
		if o.Rect().Intersects(r) {
			blocker = o.Name
			return false
		}
		return true
	})
	return blocker, blocker != ""
}

func (w *World) levelBlocked(r entity.Rect, facing entity.Facing) bool {
	if w.Oracle == nil || r.W <= 0 || r.H <= 0 {
		return false
	}

	// base
	if w.anyOccupied(r.X, r.Bottom()-min(baseProbeRows, r.H), r.W, min(baseProbeRows, r.H)) {
		return true
	}
	// top
	if w.anyOccupied(r.X, r.Y, r.W, min(topProbeRows, r.H)) {
		return true
	}
	// leading edge
	cols := min(sideProbeCols, r.W)
	x := r.X
	if facing == entity.FacingRight {
		x = r.Right() - cols
	}
	return w.anyOccupied(x, r.Y, cols, r.H)
}

func (w *World) anyOccupied(x, y, width, height int) bool {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			if w.Oracle.IsOccupied(px, py) {
				return true
			}
		}
	}
	return false
}
