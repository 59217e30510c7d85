package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "../../../cmd/sidescroll/configs"

func TestLoader_LoadSim(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadSim()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 480, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 2, cfg.Physics.Gravity)
	assert.Equal(t, "refined", cfg.Physics.Integrator)
	assert.Equal(t, 500*time.Millisecond, cfg.Jump.Grace())

	// fields absent from the file keep their defaults
	assert.Equal(t, 5, cfg.Cast.PlayerTriggerFrame)
	assert.Len(t, cfg.Cast.SocketLift, 5)
	assert.Equal(t, 340, cfg.Perception.HopChance)
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, "hero", cfg.Player.Faction)
	assert.Equal(t, 100.0, cfg.Player.MaxHealth)
	assert.Equal(t, 16, cfg.Player.Shape.Width)
	assert.Equal(t, 1, cfg.Player.WeightOrDefault())
	assert.Len(t, cfg.Sockets, 5)

	slime, ok := cfg.Templates["slime"]
	require.True(t, ok)
	assert.Equal(t, "monster", slime.Faction)
	assert.Contains(t, slime.Behaviors, "enemy")
	assert.Equal(t, 100, slime.Spells["Strike"])

	crate, ok := cfg.Templates["crate"]
	require.True(t, ok)
	assert.Equal(t, 2, crate.WeightOrDefault())

	sage, ok := cfg.Templates["sage"]
	require.True(t, ok)
	require.NotNil(t, sage.Dialogue)
	assert.NotEmpty(t, sage.Dialogue.Lines)
	assert.Empty(t, sage.Faction)
}

func TestLoader_LoadContent(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadContent()
	require.NoError(t, err)

	ids := make([]string, 0, len(cfg.Abilities))
	for _, a := range cfg.Abilities {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"Strike", "Fireball", "Gust", "Boulder", "Tide"}, ids)
	assert.Equal(t, "melee", cfg.Abilities[0].Kind)
	assert.Equal(t, 48, cfg.Abilities[0].Shape.Width)

	require.Len(t, cfg.Items, 2)
	assert.Equal(t, "Potion", cfg.Items[0].ID)
	assert.Equal(t, 8, cfg.Orb.Shape.Width)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 640, cfg.Size.Width)
	assert.Equal(t, 480, cfg.Size.Height)
	assert.Equal(t, 16, cfg.Size.TileSize)
	assert.Len(t, cfg.Layers.Collision, 30)
	for i, row := range cfg.Layers.Collision {
		assert.Len(t, row, 40, "row %d", i)
	}

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, wall.Solid)
	assert.NotEmpty(t, cfg.Spawns)
}

func TestLoader_LoadStage_Missing(t *testing.T) {
	_, err := NewLoader(configDir).LoadStage("nowhere")
	assert.Error(t, err)
}

func TestLoader_LoadAll(t *testing.T) {
	cfg, err := NewLoader(configDir).LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Sim)
	assert.NotNil(t, cfg.Entities)
	assert.NotNil(t, cfg.Content)
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"sim.json":      {Data: []byte(`{"physics":{"gravity":3}}`)},
		"entities.json": {Data: []byte(`{"player":{"faction":"hero","behaviors":["physics"]},"sockets":["Strike"]}`)},
		"abilities.yaml": {Data: []byte(`
abilities:
  - id: Strike
    kind: melee
`)},
		"items.yaml": {Data: []byte("items: []\n")},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Sim.Physics.Gravity)
	assert.Equal(t, 40, cfg.Sim.Physics.MaxFallSpeed)
	assert.Equal(t, []string{"Strike"}, cfg.Entities.Sockets)
	assert.Len(t, cfg.Content.Abilities, 1)
}

func TestFSLoader_BadJSON(t *testing.T) {
	fsys := fstest.MapFS{"sim.json": {Data: []byte("{")}}

	_, err := NewFSLoader(fsys, "mem").LoadSim()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse sim.json")
}

func TestParseAbilities(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"valid", "abilities:\n  - {id: A, kind: melee}\n  - {id: B, kind: projectile}\n", ""},
		{"missing id", "abilities:\n  - {kind: melee}\n", "without id"},
		{"duplicate", "abilities:\n  - {id: A, kind: melee}\n  - {id: A, kind: melee}\n", "duplicate"},
		{"unknown kind", "abilities:\n  - {id: A, kind: beam}\n", "unknown kind"},
		{"not yaml", "abilities: [", "yaml unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAbilities([]byte(tt.data))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseItems_MissingID(t *testing.T) {
	_, _, err := ParseItems([]byte("items:\n  - {amount: 2}\n"))
	assert.Error(t, err)
}

func TestCastConfig_Lift(t *testing.T) {
	c := DefaultSim().Cast
	assert.Equal(t, 50, c.Lift(0))
	assert.Equal(t, 15, c.Lift(4))
	assert.Equal(t, 0, c.Lift(-1))
	assert.Equal(t, 0, c.Lift(9))
}
