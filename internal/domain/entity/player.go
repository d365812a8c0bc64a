package entity

// Health is the player's hit points, 0 <= Current <= Max
type Health struct {
	Current int
	Max     int
}

// Intent holds the directional input flags set by the input layer
type Intent struct {
	Left, Right bool
	Up, Down    bool
	Jump        bool
}

// Motion is the vertical state. InAir == false implies AirSpeed == 0.
type Motion struct {
	AirSpeed float64
	InAir    bool
}

// Animation is the frame timing of the current action.
// 0 <= Tick < speed, 0 <= Index < frame count of the action.
type Animation struct {
	Tick  int
	Index int
}

// Facing mirrors the sprite: FlipX is the draw offset, FlipW the width sign
type Facing struct {
	FlipX int
	FlipW int
}

// FacingRight reports whether the sprite is drawn unmirrored
func (f Facing) FacingRight() bool {
	return f.FlipW >= 0
}

// Player represents the player entity
type Player struct {
	Entity

	Health Health
	Intent Intent
	Motion Motion

	// Derived each frame; never set from outside the player system
	Action    Action
	Animation Animation

	Moving        bool
	Attacking     bool
	AttackChecked bool
	AttackBox     Rect

	Facing Facing

	// Health bar fill in world units, recomputed at the start of every update
	HealthWidth int
}

// NewPlayer creates a player at (x, y) with the given sprite size and max health.
// The hitbox and attack box sizes are in world units.
func NewPlayer(x, y float64, width, height int, hitboxW, hitboxH int, attackW, attackH int, maxHealth int) *Player {
	p := &Player{
		Entity: NewEntity(x, y, width, height),
		Health: Health{Current: maxHealth, Max: maxHealth},
		Action: ActionIdle,
		Facing: Facing{FlipX: 0, FlipW: 1},
	}
	p.InitHitbox(x, y, hitboxW, hitboxH)
	if attackW <= 0 || attackH <= 0 {
		panic("entity: invalid attack box size")
	}
	p.AttackBox = Rect{X: x, Y: y, W: float64(attackW), H: float64(attackH)}
	return p
}

// SetSpawn moves the base position and the hitbox to the spawn point
func (p *Player) SetSpawn(x, y float64) {
	p.X = x
	p.Y = y
	p.SnapHitboxToBase()
}

// ChangeHealth adds delta to the current health, clamped to [0, Max]
func (p *Player) ChangeHealth(delta int) {
	p.Health.Current += delta
	if p.Health.Current <= 0 {
		p.Health.Current = 0
	} else if p.Health.Current >= p.Health.Max {
		p.Health.Current = p.Health.Max
	}
}

// IsDead returns true once health reaches zero
func (p *Player) IsDead() bool {
	return p.Health.Current <= 0
}

func (p *Player) SetLeft(v bool)  { p.Intent.Left = v }
func (p *Player) SetRight(v bool) { p.Intent.Right = v }
func (p *Player) SetUp(v bool)    { p.Intent.Up = v }
func (p *Player) SetDown(v bool)  { p.Intent.Down = v }
func (p *Player) SetJump(v bool)  { p.Intent.Jump = v }

// SetAttacking starts (or cancels) a melee swing
func (p *Player) SetAttacking(v bool) {
	p.Attacking = v
}

// ResetDirBooleans clears the directional intents (e.g. on focus loss)
func (p *Player) ResetDirBooleans() {
	p.Intent.Left = false
	p.Intent.Right = false
	p.Intent.Up = false
	p.Intent.Down = false
}
