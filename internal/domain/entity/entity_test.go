package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBehaviors(t *testing.T) {
	b, err := ParseBehaviors([]string{"physics", "enemy"})
	require.NoError(t, err)
	assert.True(t, b.Has(Physics))
	assert.True(t, b.Has(SimpleEnemy))
	assert.False(t, b.Has(PlayerControlled))
	assert.Equal(t, "physics|enemy", b.String())

	_, err = ParseBehaviors([]string{"physics", "flying"})
	assert.ErrorContains(t, err, "flying")

	b, err = ParseBehaviors(nil)
	require.NoError(t, err)
	assert.Zero(t, b)
}

func TestNew(t *testing.T) {
	tmpl := Template{
		Name:        "slime",
		Faction:     "monster",
		TotalStrips: 4,
		AnimStages:  3,
		Shape:       Shape{OffsetX: 2, OffsetY: 1, Width: 10, Height: 8},
		MaxHealth:   40,
		Defense:     map[Element]float64{Fire: 150, Water: -5, Air: 30},
		SpellsKnown: map[string]int{"Fireball": 20},
		DropTable:   map[string]int{"Gem": 50},
	}

	e := New(tmpl)

	assert.True(t, e.Alive)
	assert.True(t, e.IsAlive())
	assert.Equal(t, 40.0, e.Health)
	assert.Equal(t, 1, e.Stage)
	assert.Equal(t, StripWalk, e.Strip)
	assert.Equal(t, -1, e.CastSocket)
	assert.Equal(t, e.Shape, e.StandingShape)
	assert.Equal(t, Size{W: 12, H: 9}, e.Size)

	// defense is a clamped percentage with every element present
	assert.Len(t, e.Defense, len(Elements))
	assert.Equal(t, 100.0, e.Defense[Fire])
	assert.Equal(t, 0.0, e.Defense[Water])
	assert.Equal(t, 30.0, e.Defense[Air])

	assert.Equal(t, 1, e.SpellsKnown[StrikeAbility])
	assert.Equal(t, 20, e.SpellsKnown["Fireball"])

	// the template's maps are not shared
	tmpl.DropTable["Gem"] = 99
	assert.Equal(t, 50, e.DropTable["Gem"])
}

func TestNew_Defaults(t *testing.T) {
	e := New(Template{Name: "x"})

	assert.Equal(t, 100.0, e.MaxHealth)
	assert.Equal(t, 1, e.AnimStages)
	assert.Equal(t, 1, e.TotalStrips)
	assert.Nil(t, e.Dialogue)
}

func TestNew_ClonesDialogue(t *testing.T) {
	d := &Dialogue{Lines: []string{"a", "b"}}
	a := New(Template{Name: "a", Dialogue: d})
	b := New(Template{Name: "b", Dialogue: d})

	a.Dialogue.Advance(FormPrimary)
	assert.Equal(t, 1, a.Dialogue.Stage)
	assert.Equal(t, 0, b.Dialogue.Stage)
	assert.Equal(t, 0, d.Stage)
}

func TestEntity_CombatantAndHostile(t *testing.T) {
	hero := New(Template{Name: "hero", Faction: "hero"})
	slime := New(Template{Name: "slime", Faction: "monster"})
	bat := New(Template{Name: "bat", Faction: "monster"})
	sage := New(Template{Name: "sage"})
	ghost := New(Template{Name: "ghost", Faction: "monster", Passable: true})

	assert.True(t, hero.Combatant())
	assert.False(t, sage.Combatant())
	assert.False(t, ghost.Combatant())

	assert.True(t, hero.Hostile(slime))
	assert.True(t, slime.Hostile(hero))
	assert.False(t, slime.Hostile(bat))
	assert.False(t, hero.Hostile(sage))
	assert.False(t, hero.Hostile(hero))
}

func TestEntity_SetAnim(t *testing.T) {
	e := New(Template{Name: "x", TotalStrips: 4, AnimStages: 6})

	e.SetAnim(3, 5)
	assert.Equal(t, 3, e.Strip)
	assert.Equal(t, 5, e.Stage)

	e.SetAnim(9, 0)
	assert.Equal(t, 4, e.Strip)
	assert.Equal(t, 1, e.Stage)
}

func TestEntity_Rect(t *testing.T) {
	e := New(Template{Name: "x", Pos: Point{X: 10, Y: 20}, Shape: Shape{OffsetX: 1, OffsetY: 2, Width: 3, Height: 4}})
	assert.Equal(t, Rect{X: 11, Y: 22, W: 3, H: 4}, e.Rect())
}

func TestEntity_AddMessage(t *testing.T) {
	e := New(Template{Name: "x"})

	e.AddMessage("-5", ColorDamage, time.Second)

	require.Len(t, e.Messages, 1)
	assert.Equal(t, "-5", e.Messages[0].Text)
	assert.Equal(t, ColorDamage, e.Messages[0].Color)
	assert.Equal(t, time.Second, e.Messages[0].Remaining)
}
