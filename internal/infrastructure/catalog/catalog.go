// Package catalog turns the content tables into spawnable entities
package catalog

import (
	"time"

	"github.com/younwookim/sidescroll/internal/domain/entity"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

// DefaultStrike is used when the ability table has no Strike row
var DefaultStrike = config.AbilityConfig{
	ID:         entity.StrikeAbility,
	Kind:       "melee",
	Element:    string(entity.Physical),
	Damage:     10,
	LifetimeMs: 100,
	CooldownMs: 800,
	Shape:      config.Rect{Width: 48, Height: 30},
	Stages:     1,
}

// Catalog instantiates spells, items and experience orbs
type Catalog struct {
	abilities map[string]config.AbilityConfig
	items     map[string]config.ItemConfig
	orb       config.OrbConfig
}

// New creates a catalog over the loaded content
func New(content *config.ContentConfig) *Catalog {
	c := &Catalog{
		abilities: make(map[string]config.AbilityConfig, len(content.Abilities)+1),
		items:     make(map[string]config.ItemConfig, len(content.Items)),
		orb:       content.Orb,
	}
	c.abilities[entity.StrikeAbility] = DefaultStrike
	for _, a := range content.Abilities {
		c.abilities[a.ID] = a
	}
	for _, it := range content.Items {
		c.items[it.ID] = it
	}
	if c.orb.Shape.Width == 0 || c.orb.Shape.Height == 0 {
		c.orb.Shape = config.Rect{Width: 8, Height: 8}
	}
	return c
}

// Ability returns the row for an ability id
func (c *Catalog) Ability(id string) (config.AbilityConfig, bool) {
	a, ok := c.abilities[id]
	return a, ok
}

// Instantiate builds a spell entity owned by the caster. Damage grows by
// DamagePerLevel for every mastery level above 1.
func (c *Catalog) Instantiate(id string, level int, spawn entity.Point, facing entity.Facing, owner, faction string) (*entity.Entity, bool) {
	a, ok := c.abilities[id]
	if !ok {
		return nil, false
	}
	melee := a.Kind == "melee"
	lifetime := time.Duration(a.LifetimeMs) * time.Millisecond

	e := entity.New(entity.Template{
		Name:         owner + ":" + id,
		Faction:      faction,
		AnimInterval: time.Duration(a.AnimateMs) * time.Millisecond,
		TotalStrips:  1,
		AnimStages:   a.Stages,
		Pos:          spawn,
		Facing:       facing,
		Shape:        shapeOf(a.Shape),
		Behaviors:    entity.Projectile,
		Passable:     true,
	})
	if !melee {
		e.Vel.X = facing.Sign() * a.Speed
	}
	e.Spell = entity.NewSpellData(
		id,
		owner,
		entity.Element(a.Element),
		a.Damage+a.DamagePerLevel*float64(max(level, 1)-1),
		time.Duration(a.CooldownMs)*time.Millisecond,
		lifetime,
		melee,
	)
	return e, true
}

// InstantiateItem builds a loot entity that falls to the ground
func (c *Catalog) InstantiateItem(id string, spawn entity.Point) (*entity.Entity, bool) {
	it, ok := c.items[id]
	if !ok {
		return nil, false
	}
	e := entity.New(entity.Template{
		Name:      "item:" + id,
		Pos:       spawn,
		Shape:     shapeOf(it.Shape),
		Weight:    weightOr(it.Weight),
		Behaviors: entity.Physics | entity.Pickup,
		Passable:  true,
	})
	e.Loot = &entity.PickupData{Item: id, Amount: max(it.Amount, 1)}
	return e, true
}

// NewOrb builds an experience orb worth exp
func (c *Catalog) NewOrb(spawn entity.Point, exp int) *entity.Entity {
	e := entity.New(entity.Template{
		Name:      "orb",
		Pos:       spawn,
		Shape:     shapeOf(c.orb.Shape),
		Weight:    weightOr(c.orb.Weight),
		Behaviors: entity.Physics | entity.Pickup,
		Passable:  true,
	})
	e.Loot = &entity.PickupData{Exp: exp}
	return e
}

func shapeOf(r config.Rect) entity.Shape {
	return entity.Shape{OffsetX: r.OffsetX, OffsetY: r.OffsetY, Width: r.Width, Height: r.Height}
}

func weightOr(w int) int {
	if w <= 0 {
		return 1
	}
	return w
}
