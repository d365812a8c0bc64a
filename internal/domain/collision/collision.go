// Package collision answers tile-grid occupancy questions for entity hitboxes.
//
// Every function is pure: the stage is passed in explicitly and never
// modified. Rectangles are treated as closed on all sides, so a hitbox
// resting on a floor keeps its bottom edge one unit above the tile
// boundary. Anything outside the grid is solid.
package collision

import (
	"math"

	"github.com/younwookim/redemption/internal/domain/entity"
)

// CanMoveHere reports whether a w x h rect at (x, y) overlaps no solid tile
// and lies entirely inside the stage.
func CanMoveHere(x, y, w, h float64, stage *entity.Stage) bool {
	if !stage.Contains(x, y) || !stage.Contains(x+w, y+h) {
		return false
	}

	ts := float64(stage.TileSize)
	startTX := int(x / ts)
	endTX := int((x + w) / ts)
	startTY := int(y / ts)
	endTY := int((y + h) / ts)

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if stage.GetTile(tx, ty).Solid {
				return false
			}
		}
	}
	return true
}

// IsEntityOnFloor probes one unit below the hitbox at its left and right
// edges. Standing on either probe counts, so an entity can stand on a ledge
// with one foot over the gap.
func IsEntityOnFloor(hitbox entity.Rect, stage *entity.Stage) bool {
	probeY := hitbox.Bottom() + 1
	return stage.IsSolidAt(hitbox.X, probeY) || stage.IsSolidAt(hitbox.Right(), probeY)
}

// EntityYPosUnderRoofOrAboveFloor returns the hitbox y that puts it flush
// against the tile it would enter moving airSpeed vertically: under the roof
// when rising, on top of the floor when falling.
func EntityYPosUnderRoofOrAboveFloor(hitbox entity.Rect, airSpeed float64, tileSize int) float64 {
	ts := float64(tileSize)
	switch {
	case airSpeed > 0:
		floorRow := math.Floor((hitbox.Bottom() + airSpeed) / ts)
		return floorRow*ts - hitbox.H - 1
	case airSpeed < 0:
		roofRow := math.Floor((hitbox.Y + airSpeed) / ts)
		return (roofRow + 1) * ts
	default:
		return hitbox.Y
	}
}

// EntityXPosNextToWall returns the hitbox x that puts it flush against the
// wall it would enter moving xSpeed horizontally.
func EntityXPosNextToWall(hitbox entity.Rect, xSpeed float64, tileSize int) float64 {
	ts := float64(tileSize)
	switch {
	case xSpeed > 0:
		wallCol := math.Floor((hitbox.Right() + xSpeed) / ts)
		return wallCol*ts - hitbox.W - 1
	case xSpeed < 0:
		wallCol := math.Floor((hitbox.X + xSpeed) / ts)
		return (wallCol + 1) * ts
	default:
		return hitbox.X
	}
}

// TouchingTile returns the first tile of the given type the hitbox overlaps.
// Only tiles inside the grid are considered.
func TouchingTile(hitbox entity.Rect, stage *entity.Stage, tileType entity.TileType) (entity.Tile, bool) {
	if stage.Width == 0 || stage.Height == 0 {
		return entity.Tile{}, false
	}
	ts := float64(stage.TileSize)
	startTX := clamp(int(math.Floor(hitbox.X/ts)), 0, stage.Width-1)
	endTX := clamp(int(math.Floor(hitbox.Right()/ts)), 0, stage.Width-1)
	startTY := clamp(int(math.Floor(hitbox.Y/ts)), 0, stage.Height-1)
	endTY := clamp(int(math.Floor(hitbox.Bottom()/ts)), 0, stage.Height-1)

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if tile := stage.GetTile(tx, ty); tile.Type == tileType {
				return tile, true
			}
		}
	}
	return entity.Tile{}, false
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
