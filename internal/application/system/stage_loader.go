package system

import (
	"github.com/younwookim/redemption/internal/domain/entity"
	"github.com/younwookim/redemption/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity.
// tileSize is already scaled; the spawn point is scaled here.
// The grid is as wide as the longest row, short rows are padded with empty tiles.
func LoadStage(cfg *config.StageConfig, tileSize int, scale float64) *entity.Stage {
	tileWidth := 0
	for _, row := range cfg.Layers.Collision {
		if n := len([]rune(row)); n > tileWidth {
			tileWidth = n
		}
	}
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		x := 0
		for _, char := range row {
			tiles[y][x] = tileFor(cfg, string(char))
			x++
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: tileSize,
		Tiles:    tiles,
		SpawnX:   float64(cfg.PlayerSpawn.X) * scale,
		SpawnY:   float64(cfg.PlayerSpawn.Y) * scale,
	}
}

func tileFor(cfg *config.StageConfig, char string) entity.Tile {
	mapping, ok := cfg.TileMapping[char]
	if !ok {
		return entity.Tile{Type: entity.TileEmpty}
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

	return entity.Tile{
		Type:   tileType,
		Solid:  mapping.Solid,
		Damage: mapping.Damage,
	}
}
