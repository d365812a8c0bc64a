package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileSpike
)

// String returns the string representation of the tile type
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileSpike:
		return "spike"
	default:
		return "unknown"
	}
}

// Tile represents a single tile in the stage
type Tile struct {
	Type   TileType
	Solid  bool
	Damage int
}

// Stage is the tile grid of the loaded level.
// It is shared read-only by every entity and must not be mutated
// while a frame is being updated.
type Stage struct {
	Width    int // in tiles
	Height   int // in tiles
	TileSize int // world units per tile, already scaled
	Tiles    [][]Tile
	SpawnX   float64
	SpawnY   float64
}

// GetTile returns the tile at the given tile coordinates.
// Anything outside the grid is a solid wall.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// GetTileAt returns the tile containing the world point (x, y)
func (s *Stage) GetTileAt(x, y float64) Tile {
	if !s.Contains(x, y) {
		return Tile{Type: TileWall, Solid: true}
	}
	ts := float64(s.TileSize)
	return s.GetTile(int(x/ts), int(y/ts))
}

// IsSolidAt checks if the tile at world coordinates is solid
func (s *Stage) IsSolidAt(x, y float64) bool {
	return s.GetTileAt(x, y).Solid
}

// Contains reports whether the world point lies inside the playable area
func (s *Stage) Contains(x, y float64) bool {
	return x >= 0 && x < s.PixelWidth() && y >= 0 && y < s.PixelHeight()
}

// PixelWidth returns the stage width in world units
func (s *Stage) PixelWidth() float64 {
	return float64(s.Width * s.TileSize)
}

// PixelHeight returns the stage height in world units
func (s *Stage) PixelHeight() float64 {
	return float64(s.Height * s.TileSize)
}
