package entity

// Facing is the horizontal direction an entity looks at
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// Sign returns -1 for left and +1 for right
func (f Facing) Sign() int {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Flip returns the opposite direction
func (f Facing) Flip() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Element tags damage and defense
type Element string

const (
	Physical Element = "physical"
	Fire     Element = "fire"
	Air      Element = "air"
	Earth    Element = "earth"
	Water    Element = "water"
	Death    Element = "death"
	Life     Element = "life"
)

// Elements lists every element in a fixed order
var Elements = []Element{Physical, Fire, Air, Earth, Water, Death, Life}

// Animation strips (1-indexed rows of the sprite sheet).
// Strips from StripAction upward are one per ability socket.
const (
	StripWalk   = 1
	StripJump   = 2
	StripCrouch = 3
	StripAction = 4
)

// Stages of the jump strip that double as poses
const (
	StageRising     = 1
	StageIdle       = 2
	StageDead       = 3
	StageCrouchIdle = 4
)

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileSpike
)

// Tile represents a single tile in the stage
type Tile struct {
	Type   TileType
	Solid  bool
	Damage int
}

// TileMap is a tile grid that answers pixel occupancy queries.
// Anything outside the grid counts as solid wall.
type TileMap struct {
	Width    int // tiles
	Height   int // tiles
	TileSize int // pixels
	Tiles    [][]Tile
	SpawnX   int
	SpawnY   int
}

// NewTileMap creates an empty map of w x h tiles
func NewTileMap(w, h, tileSize int) *TileMap {
	tiles := make([][]Tile, h)
	for y := range tiles {
		tiles[y] = make([]Tile, w)
	}
	return &TileMap{Width: w, Height: h, TileSize: tileSize, Tiles: tiles}
}

// GetTile returns the tile at the given tile coordinates
func (m *TileMap) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= m.Width || ty < 0 || ty >= m.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return m.Tiles[ty][tx]
}

// SetTile replaces the tile at the given tile coordinates
func (m *TileMap) SetTile(tx, ty int, t Tile) {
	if tx < 0 || tx >= m.Width || ty < 0 || ty >= m.Height {
		return
	}
	m.Tiles[ty][tx] = t
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (m *TileMap) GetTileAtPixel(px, py int) Tile {
	if px < 0 || py < 0 {
		return Tile{Type: TileWall, Solid: true}
	}
	return m.GetTile(px/m.TileSize, py/m.TileSize)
}

// IsOccupied checks if the tile at pixel coordinates is solid
func (m *TileMap) IsOccupied(px, py int) bool {
	return m.GetTileAtPixel(px, py).Solid
}

// Bounds returns the map size in pixels
func (m *TileMap) Bounds() (width, height int) {
	return m.Width * m.TileSize, m.Height * m.TileSize
}
