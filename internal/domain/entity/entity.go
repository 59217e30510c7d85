package entity

import (
	"fmt"
	"image/color"
	"strings"
	"time"
)

// StrikeAbility is the melee fallback every entity knows
const StrikeAbility = "Strike"

// Behaviors is the set of behavior components attached to an entity
type Behaviors uint8

const (
	PlayerControlled Behaviors = 1 << iota
	Physics
	SimpleEnemy
	DialogueTrigger
	Projectile
	Pickup
)

var behaviorNames = []struct {
	flag Behaviors
	name string
}{
	{PlayerControlled, "player"},
	{Physics, "physics"},
	{SimpleEnemy, "enemy"},
	{DialogueTrigger, "dialogue"},
	{Projectile, "projectile"},
	{Pickup, "pickup"},
}

// Has returns true if every flag in b is set
func (s Behaviors) Has(b Behaviors) bool {
	return s&b == b
}

func (s Behaviors) String() string {
	var parts []string
	for _, bn := range behaviorNames {
		if s.Has(bn.flag) {
			parts = append(parts, bn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseBehaviors converts config names ("player", "physics", ...) into a set
func ParseBehaviors(names []string) (Behaviors, error) {
	var s Behaviors
	for _, n := range names {
		found := false
		for _, bn := range behaviorNames {
			if bn.name == n {
				s |= bn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown behavior %q", n)
		}
	}
	return s, nil
}

// FloatingMessage is transient text shown above an entity
type FloatingMessage struct {
	Text      string
	Color     color.RGBA
	Remaining time.Duration
}

// Message colors
var (
	ColorDamage    = color.RGBA{255, 0, 0, 255}
	ColorHeal      = color.RGBA{0, 255, 255, 255}
	ColorBroadcast = color.RGBA{0, 255, 0, 255}
	ColorDebug     = color.RGBA{255, 80, 80, 255}
)

// Entity is the mutable record of every actor in the world
type Entity struct {
	Name    string
	Faction string // empty = neutral, never fights

	// Spatial
	Pos           Point
	Facing        Facing
	Vel           Velocity
	Size          Size
	Shape         Shape
	StandingShape Shape // shape to restore when standing up from a crouch

	// Physical
	Weight   int
	Speed    int
	Grounded bool
	Crouched bool
	Passable bool

	// Animation (stage and strip are 1-indexed)
	AnimStages    int
	TotalStrips   int
	Stage         int
	Strip         int
	NewStage      int // pending explicit stage, 0 = none
	NewStrip      int
	AnimInterval  time.Duration
	AnimTimer     time.Duration
	IsAnimating   bool
	AirborneTicks int

	// Combat
	Health           float64
	MaxHealth        float64
	Defense          map[Element]float64 // percent, 0..100
	Alive            bool
	Flinch           time.Duration
	ShowDeathMessage bool

	// Behavior
	Behaviors Behaviors
	Mind      *Mind
	JumpGrace time.Duration

	// Cast state
	PendingSpell     *Entity
	CastTriggerFrame int
	CastOffset       Point
	CastSocket       int // -1 when the cast is not bound to a progression socket
	SpellCooldown    time.Duration

	// Social
	Dialogue     *Dialogue
	Talking      bool
	TalkingTimer time.Duration

	// Loot
	SpellsKnown map[string]int // ability -> level (Strike) or chance percent
	DropTable   map[string]int // item -> percent chance
	ExpValue    int

	// Content payloads
	Spell    *SpellData
	Loot     *PickupData
	Messages []FloatingMessage
}

// Template holds the construction parameters of an entity
type Template struct {
	Name             string
	Faction          string
	AnimInterval     time.Duration
	TotalStrips      int
	AnimStages       int
	Pos              Point
	Facing           Facing
	Speed            int
	Weight           int
	Size             Size
	Shape            Shape
	Behaviors        Behaviors
	Dialogue         *Dialogue
	MaxHealth        float64
	Defense          map[Element]float64
	SpellsKnown      map[string]int
	DropTable        map[string]int
	ExpValue         int
	ShowDeathMessage bool
	Passable         bool
}

// New creates an entity from a template
func New(t Template) *Entity {
	e := &Entity{
		Name:             t.Name,
		Faction:          t.Faction,
		Pos:              t.Pos,
		Facing:           t.Facing,
		Size:             t.Size,
		Shape:            t.Shape,
		StandingShape:    t.Shape,
		Weight:           t.Weight,
		Speed:            t.Speed,
		Passable:         t.Passable,
		AnimStages:       max(t.AnimStages, 1),
		TotalStrips:      max(t.TotalStrips, 1),
		Stage:            1,
		Strip:            StripWalk,
		NewStrip:         StripWalk,
		AnimInterval:     t.AnimInterval,
		AnimTimer:        t.AnimInterval,
		MaxHealth:        t.MaxHealth,
		Defense:          make(map[Element]float64, len(Elements)),
		Alive:            true,
		ShowDeathMessage: t.ShowDeathMessage,
		Behaviors:        t.Behaviors,
		CastSocket:       -1,
		Dialogue:         t.Dialogue.Clone(),
		SpellsKnown:      make(map[string]int, len(t.SpellsKnown)+1),
		DropTable:        make(map[string]int, len(t.DropTable)),
		ExpValue:         t.ExpValue,
	}

	if e.MaxHealth <= 0 {
		e.MaxHealth = 100
	}
	e.Health = e.MaxHealth

	for _, el := range Elements {
		e.Defense[el] = 0
	}
	for el, v := range t.Defense {
		e.Defense[el] = clampPercent(v)
	}

	e.SpellsKnown[StrikeAbility] = 1
	for k, v := range t.SpellsKnown {
		e.SpellsKnown[k] = v
	}
	for k, v := range t.DropTable {
		e.DropTable[k] = v
	}

	if e.Size == (Size{}) {
		e.Size = Size{W: t.Shape.OffsetX + t.Shape.Width, H: t.Shape.OffsetY + t.Shape.Height}
	}

	if t.Behaviors.Has(SimpleEnemy) {
		e.Mind = NewMind(DefaultPatrolDistance)
	}

	return e
}

// IsAlive returns true until the entity has died
func (e *Entity) IsAlive() bool {
	return e.Alive
}

// Rect returns the collision rectangle at the current position
func (e *Entity) Rect() Rect {
	return e.Shape.At(e.Pos)
}

// Has returns true if the entity carries the behavior
func (e *Entity) Has(b Behaviors) bool {
	return e.Behaviors.Has(b)
}

// Combatant returns true if the entity can fight and block others
func (e *Entity) Combatant() bool {
	return e.Faction != "" && !e.Passable
}

// Hostile returns true if other belongs to a different, non-empty faction
func (e *Entity) Hostile(other *Entity) bool {
	return other != e && other.Name != e.Name &&
		other.Faction != "" && other.Faction != e.Faction
}

// AddMessage pushes a floating message above the entity
func (e *Entity) AddMessage(text string, c color.RGBA, d time.Duration) {
	e.Messages = append(e.Messages, FloatingMessage{Text: text, Color: c, Remaining: d})
}

// SetAnim sets strip and stage, clamped to the sprite sheet
func (e *Entity) SetAnim(strip, stage int) {
	e.Strip = clamp(strip, 1, e.TotalStrips)
	e.Stage = clamp(stage, 1, e.AnimStages)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
