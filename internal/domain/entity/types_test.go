package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildStage reads '#' as wall and '^' as a 25 damage spike
func buildStage(tileSize int, rows ...string) *Stage {
	s := &Stage{Width: len(rows[0]), Height: len(rows), TileSize: tileSize}
	for _, row := range rows {
		line := make([]Tile, len(row))
		for x, c := range row {
			switch c {
			case '#':
				line[x] = Tile{Type: TileWall, Solid: true}
			case '^':
				line[x] = Tile{Type: TileSpike, Damage: 25}
			}
		}
		s.Tiles = append(s.Tiles, line)
	}
	return s
}

func TestStage_GetTile(t *testing.T) {
	stage := buildStage(48,
		"#.#",
		"...",
		"#^#",
	)

	assert.Equal(t, TileWall, stage.GetTile(0, 0).Type)
	assert.False(t, stage.GetTile(1, 1).Solid)

	spike := stage.GetTile(1, 2)
	assert.Equal(t, TileSpike, spike.Type)
	assert.False(t, spike.Solid)
	assert.Equal(t, 25, spike.Damage)
}

func TestStage_OutsideIsWall(t *testing.T) {
	stage := buildStage(48, "..", "..")

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		tile := stage.GetTile(pt[0], pt[1])
		assert.True(t, tile.Solid, "tile %v", pt)
		assert.Equal(t, TileWall, tile.Type)
	}

	assert.True(t, stage.IsSolidAt(-0.5, 10))
	assert.True(t, stage.IsSolidAt(10, 96), "bottom edge belongs to the outside")
	assert.False(t, stage.IsSolidAt(95.9, 95.9))
}

func TestStage_GetTileAt(t *testing.T) {
	stage := buildStage(48,
		"#...",
		"..^.",
	)

	assert.Equal(t, TileWall, stage.GetTileAt(47.9, 0).Type)
	assert.Equal(t, TileEmpty, stage.GetTileAt(48, 0).Type, "tile edges belong to the next tile")
	assert.Equal(t, TileSpike, stage.GetTileAt(100, 60).Type)
}

func TestStage_PixelSize(t *testing.T) {
	stage := buildStage(48, "....", "....")

	assert.Equal(t, 192.0, stage.PixelWidth())
	assert.Equal(t, 96.0, stage.PixelHeight())
	assert.True(t, stage.Contains(0, 0))
	assert.False(t, stage.Contains(192, 0))
	assert.False(t, stage.Contains(0, 96))
}

func TestTileType_String(t *testing.T) {
	require.Equal(t, TileType(0), TileEmpty, "zero tile is empty")
	assert.Equal(t, "empty", TileEmpty.String())
	assert.Equal(t, "wall", TileWall.String())
	assert.Equal(t, "spike", TileSpike.String())
	assert.Equal(t, "unknown", TileType(42).String())
}
