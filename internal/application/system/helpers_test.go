package system

import (
	"time"

	"github.com/younwookim/sidescroll/internal/domain/entity"
	"github.com/younwookim/sidescroll/internal/infrastructure/catalog"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

const testTick = time.Second / 60

// createTestStage returns a 200x100 px level with a floor from y=50 down
func createTestStage() *entity.Mask {
	m := entity.NewMask(200, 100)
	m.Fill(0, 50, 200, 50)
	return m
}

func newTestWorld(oracle CollisionOracle) *World {
	w := NewWorld(config.DefaultSim(), oracle, 1, nil)
	c := catalog.Default()
	w.Abilities = c
	w.Items = c
	w.Orbs = c
	return w
}

// createTestEntity builds a 10x20 physics body
func createTestEntity(name, faction string, x, y int) *entity.Entity {
	return entity.New(entity.Template{
		Name:        name,
		Faction:     faction,
		Pos:         entity.Point{X: x, Y: y},
		Facing:      entity.FacingRight,
		Speed:       4,
		Weight:      1,
		Shape:       entity.Shape{Width: 10, Height: 20},
		Behaviors:   entity.Physics,
		TotalStrips: 9,
		AnimStages:  6,
	})
}

// createTestPlayer registers a player standing on the test stage floor
func createTestPlayer(w *World, x int) *entity.Entity {
	p := createTestEntity(PlayerName, "hero", x, 30)
	p.Behaviors |= entity.PlayerControlled
	p.Grounded = true
	w.Spawn(p)
	w.PlayerName = p.Name
	return p
}

// createTestEnemy registers a simple enemy standing on the test stage floor
func createTestEnemy(w *World, name string, x int, facing entity.Facing) *entity.Entity {
	e := entity.New(entity.Template{
		Name:        name,
		Faction:     "monster",
		Pos:         entity.Point{X: x, Y: 30},
		Facing:      facing,
		Speed:       2,
		Weight:      1,
		Shape:       entity.Shape{Width: 10, Height: 20},
		Behaviors:   entity.Physics | entity.SimpleEnemy,
		TotalStrips: 4,
		AnimStages:  4,
	})
	e.Grounded = true
	return w.Spawn(e)
}
