package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Spawns      []SpawnConfig                `json:"spawns"`
}

type StageSizeConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tileSize"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type   string `json:"type"`
	Solid  bool   `json:"solid"`
	Damage int    `json:"damage,omitempty"`
}

// SpawnConfig places an entity built from a template
type SpawnConfig struct {
	Template    string `json:"template"`
	Name        string `json:"name"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	FacingRight bool   `json:"facingRight"`
}
