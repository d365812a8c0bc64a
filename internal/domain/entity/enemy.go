package entity

// HitFlashTicks is how long an enemy flashes after being struck
const HitFlashTicks = 12

// Enemy is a stationary target the player's attack box can strike.
// Enemy behaviour beyond taking hits lives elsewhere.
type Enemy struct {
	Entity

	ID        EntityID
	EnemyType string
	Active    bool

	Health    int
	MaxHealth int

	// Ticks left of the hit flash
	HitTimer int
}

// NewEnemy creates a new enemy whose hitbox starts at (x, y)
func NewEnemy(id EntityID, x, y float64, width, height int, enemyType string, maxHealth int) *Enemy {
	e := &Enemy{
		Entity:    NewEntity(x, y, width, height),
		ID:        id,
		EnemyType: enemyType,
		Active:    true,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
	e.InitHitbox(x, y, width, height)
	return e
}

// TakeDamage applies damage to the enemy and reports whether it died
func (e *Enemy) TakeDamage(damage int) bool {
	e.Health -= damage
	if e.Health < 0 {
		e.Health = 0
	}
	e.HitTimer = HitFlashTicks
	if e.Health == 0 {
		e.Active = false
		return true
	}
	return false
}

// Tick advances the enemy's timers by one frame
func (e *Enemy) Tick() {
	if e.HitTimer > 0 {
		e.HitTimer--
	}
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.Health > 0 && e.Active
}
