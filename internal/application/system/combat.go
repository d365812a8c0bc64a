package system

import (
	"github.com/younwookim/redemption/internal/domain/collision"
	"github.com/younwookim/redemption/internal/domain/entity"
	"github.com/younwookim/redemption/internal/infrastructure/config"
)

// CombatSystem resolves melee hits on enemies and spike damage on the player
type CombatSystem struct {
	config  *config.GameConfig
	enemies []*entity.Enemy

	// Ticks until spikes can hurt the player again
	spikeCooldown int

	// Event callbacks
	OnEnemyHit func(enemy *entity.Enemy, killed bool)
	OnSpikeHit func(damage int)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig) *CombatSystem {
	return &CombatSystem{
		config:  cfg,
		enemies: make([]*entity.Enemy, 0, 16),
	}
}

// SpawnEnemy spawns an enemy of a configured type at an unscaled position.
// Unknown types are ignored and reported with false.
func (s *CombatSystem) SpawnEnemy(id entity.EntityID, x, y int, enemyType string) bool {
	enemyCfg, ok := s.config.Entities.Enemies[enemyType]
	if !ok {
		return false
	}

	scale := s.config.Physics.Display.Scale
	enemy := entity.NewEnemy(
		id,
		float64(x+enemyCfg.Hitbox.OffsetX)*scale,
		float64(y+enemyCfg.Hitbox.OffsetY)*scale,
		Scaled(enemyCfg.Hitbox.Width, scale),
		Scaled(enemyCfg.Hitbox.Height, scale),
		enemyType,
		enemyCfg.Stats.MaxHealth,
	)

	s.enemies = append(s.enemies, enemy)
	return true
}

// HitEnemies damages every active enemy overlapping the attack box
// and returns how many were struck
func (s *CombatSystem) HitEnemies(attackBox entity.Rect, damage int) int {
	hits := 0
	for _, enemy := range s.enemies {
		if !enemy.Active || !attackBox.Overlaps(enemy.Hitbox) {
			continue
		}

		killed := enemy.TakeDamage(damage)
		hits++

		if s.OnEnemyHit != nil {
			s.OnEnemyHit(enemy, killed)
		}
	}
	return hits
}

// CheckSpikeDamage hurts the player when its hitbox touches a spike tile.
// Returns the damage dealt, 0 while the cooldown runs.
func (s *CombatSystem) CheckSpikeDamage(player *entity.Player, stage *entity.Stage) int {
	if s.spikeCooldown > 0 || player.IsDead() {
		return 0
	}

	tile, ok := collision.TouchingTile(player.Hitbox, stage, entity.TileSpike)
	if !ok || tile.Damage <= 0 {
		return 0
	}

	player.ChangeHealth(-tile.Damage)
	s.spikeCooldown = s.config.Physics.Combat.SpikeCooldown

	if s.OnSpikeHit != nil {
		s.OnSpikeHit(tile.Damage)
	}
	return tile.Damage
}

// Update advances enemy and cooldown timers by one tick
func (s *CombatSystem) Update() {
	if s.spikeCooldown > 0 {
		s.spikeCooldown--
	}
	for _, enemy := range s.enemies {
		enemy.Tick()
	}
}

// Reset removes all enemies and clears the cooldown
func (s *CombatSystem) Reset() {
	s.enemies = s.enemies[:0]
	s.spikeCooldown = 0
}

// Enemies returns all spawned enemies, dead ones included
func (s *CombatSystem) Enemies() []*entity.Enemy {
	return s.enemies
}

// ActiveEnemies counts the enemies still standing
func (s *CombatSystem) ActiveEnemies() int {
	n := 0
	for _, enemy := range s.enemies {
		if enemy.Active {
			n++
		}
	}
	return n
}
