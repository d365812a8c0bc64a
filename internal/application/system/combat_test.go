package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/redemption/internal/domain/entity"
)

func TestCombatSystem_SpawnEnemy(t *testing.T) {
	sys := NewCombatSystem(createTestGameConfig())

	t.Run("spawns configured type scaled", func(t *testing.T) {
		ok := sys.SpawnEnemy(1, 100, 50, "crabby")

		require.True(t, ok)
		require.Len(t, sys.Enemies(), 1)
		enemy := sys.Enemies()[0]
		assert.Equal(t, entity.Rect{X: 200, Y: 100, W: 44, H: 38}, enemy.Hitbox)
		assert.Equal(t, 20, enemy.Health)
		assert.True(t, enemy.Active)
	})

	t.Run("ignores unknown type", func(t *testing.T) {
		assert.False(t, sys.SpawnEnemy(2, 0, 0, "kraken"))
		assert.Len(t, sys.Enemies(), 1)
	})
}

func TestCombatSystem_HitEnemies(t *testing.T) {
	sys := NewCombatSystem(createTestGameConfig())
	sys.SpawnEnemy(1, 100, 50, "crabby")
	sys.SpawnEnemy(2, 400, 50, "crabby")

	var events []bool
	sys.OnEnemyHit = func(enemy *entity.Enemy, killed bool) {
		events = append(events, killed)
	}

	box := entity.Rect{X: 190, Y: 100, W: 40, H: 40}

	assert.Equal(t, 1, sys.HitEnemies(box, 10))
	assert.Equal(t, 10, sys.Enemies()[0].Health)
	assert.Equal(t, entity.HitFlashTicks, sys.Enemies()[0].HitTimer)
	assert.Equal(t, 20, sys.Enemies()[1].Health)

	assert.Equal(t, 1, sys.HitEnemies(box, 10))
	assert.False(t, sys.Enemies()[0].Active)
	assert.Equal(t, 1, sys.ActiveEnemies())

	assert.Zero(t, sys.HitEnemies(box, 10), "dead enemies are not hit again")
	assert.Equal(t, []bool{false, true}, events)

	t.Run("miss", func(t *testing.T) {
		assert.Zero(t, sys.HitEnemies(entity.Rect{X: 0, Y: 0, W: 10, H: 10}, 10))
	})
}

func TestCombatSystem_SpikeDamage(t *testing.T) {
	cfg := createTestGameConfig()
	stage := createTestStage()

	t.Run("spike hurts then cools down", func(t *testing.T) {
		sys := NewCombatSystem(cfg)
		p := createTestPlayer(390, restY)

		var dealt []int
		sys.OnSpikeHit = func(damage int) { dealt = append(dealt, damage) }

		assert.Equal(t, 25, sys.CheckSpikeDamage(p, stage))
		assert.Equal(t, 75, p.Health.Current)

		assert.Zero(t, sys.CheckSpikeDamage(p, stage))
		assert.Equal(t, 75, p.Health.Current)

		for i := 0; i < cfg.Physics.Combat.SpikeCooldown; i++ {
			sys.Update()
		}
		assert.Equal(t, 25, sys.CheckSpikeDamage(p, stage))
		assert.Equal(t, 50, p.Health.Current)
		assert.Equal(t, []int{25, 25}, dealt)
	})

	t.Run("no spike no damage", func(t *testing.T) {
		sys := NewCombatSystem(cfg)
		p := createTestPlayer(100, restY)

		assert.Zero(t, sys.CheckSpikeDamage(p, stage))
		assert.Equal(t, 100, p.Health.Current)
	})

	t.Run("dead player takes no spike damage", func(t *testing.T) {
		sys := NewCombatSystem(cfg)
		p := createTestPlayer(390, restY)
		p.ChangeHealth(-100)

		assert.Zero(t, sys.CheckSpikeDamage(p, stage))
	})
}

func TestCombatSystem_UpdateAndReset(t *testing.T) {
	sys := NewCombatSystem(createTestGameConfig())
	sys.SpawnEnemy(1, 100, 50, "crabby")
	sys.HitEnemies(entity.Rect{X: 190, Y: 100, W: 40, H: 40}, 1)

	sys.Update()
	assert.Equal(t, entity.HitFlashTicks-1, sys.Enemies()[0].HitTimer)

	sys.Reset()
	assert.Empty(t, sys.Enemies())
}
