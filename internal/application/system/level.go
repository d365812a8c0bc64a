package system

import "github.com/younwookim/redemption/internal/domain/entity"

// LevelController is the level side of the player contract
type LevelController interface {
	// CheckEnemyHit resolves a melee swing against the level's enemies
	CheckEnemyHit(attackBox entity.Rect)
	// SetGameOver is called every tick while the player has no health left
	SetGameOver(over bool)
}
