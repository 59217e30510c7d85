package system

import (
	"fmt"
	"time"

	"github.com/younwookim/sidescroll/internal/domain/entity"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

// PlayerName is the registry key of the player entity
const PlayerName = "player"

// LoadStage converts a StageConfig into a tile map
func LoadStage(cfg *config.StageConfig) *entity.TileMap {
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Collision)

	m := entity.NewTileMap(tileWidth, tileHeight, cfg.Size.TileSize)
	for y, row := range cfg.Layers.Collision {
		for x, char := range row {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			case "spike":
				tileType = entity.TileSpike
			default:
				tileType = entity.TileEmpty
			}

			m.SetTile(x, y, entity.Tile{
				Type:   tileType,
				Solid:  mapping.Solid,
				Damage: mapping.Damage,
			})
		}
	}

	m.SpawnX = cfg.PlayerSpawn.X
	m.SpawnY = cfg.PlayerSpawn.Y
	return m
}

// TemplateFromConfig builds an entity template from its config
func TemplateFromConfig(name string, tc config.TemplateConfig) (entity.Template, error) {
	behaviors, err := entity.ParseBehaviors(tc.Behaviors)
	if err != nil {
		return entity.Template{}, fmt.Errorf("template %s: %w", name, err)
	}

	shape := entity.Shape{
		OffsetX: tc.Shape.OffsetX,
		OffsetY: tc.Shape.OffsetY,
		Width:   tc.Shape.Width,
		Height:  tc.Shape.Height,
	}
	if !shape.Valid() {
		return entity.Template{}, fmt.Errorf("template %s: negative shape %+v", name, tc.Shape)
	}

	defense := make(map[entity.Element]float64, len(tc.Defense))
	for el, v := range tc.Defense {
		defense[entity.Element(el)] = v
	}

	t := entity.Template{
		Name:             name,
		Faction:          tc.Faction,
		AnimInterval:     time.Duration(tc.AnimateMs) * time.Millisecond,
		TotalStrips:      tc.Strips,
		AnimStages:       tc.Stages,
		Speed:            tc.Speed,
		Weight:           tc.WeightOrDefault(),
		Size:             entity.Size{W: tc.Sprite.Width, H: tc.Sprite.Height},
		Shape:            shape,
		Behaviors:        behaviors,
		MaxHealth:        tc.MaxHealth,
		Defense:          defense,
		SpellsKnown:      tc.Spells,
		DropTable:        tc.Drops,
		ExpValue:         tc.Exp,
		ShowDeathMessage: tc.ShowDeathMessage,
		Passable:         tc.Passable,
	}
	if tc.Dialogue != nil {
		t.Dialogue = &entity.Dialogue{Lines: tc.Dialogue.Lines, AltLines: tc.Dialogue.AltLines}
	}
	return t, nil
}

// Populate spawns the player and every stage spawn into the world and
// sockets the configured abilities into the progression.
func Populate(w *World, stage *config.StageConfig, ents *config.EntitiesConfig) error {
	pt, err := TemplateFromConfig(PlayerName, ents.Player)
	if err != nil {
		return err
	}
	pt.Pos = entity.Point{X: stage.PlayerSpawn.X, Y: stage.PlayerSpawn.Y}
	pt.Facing = entity.FacingRight
	pt.Behaviors |= entity.PlayerControlled
	player := w.Spawn(entity.New(pt))
	w.PlayerName = player.Name
	w.Progression = entity.NewProgression(ents.Sockets...)

	for i, sp := range stage.Spawns {
		tc, ok := ents.Templates[sp.Template]
		if !ok {
			return fmt.Errorf("spawn %d: unknown template %q", i, sp.Template)
		}
		name := sp.Name
		if name == "" {
			name = sp.Template
		}
		t, err := TemplateFromConfig(name, tc)
		if err != nil {
			return err
		}
		t.Pos = entity.Point{X: sp.X, Y: sp.Y}
		if sp.FacingRight {
			t.Facing = entity.FacingRight
		}
		w.Spawn(entity.New(t))
	}

	w.Log.WithField("stage", stage.ID).WithField("entities", w.Registry.Len()).Info("stage populated")
	return nil
}
