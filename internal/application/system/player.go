package system

import (
	"github.com/younwookim/redemption/internal/domain/collision"
	"github.com/younwookim/redemption/internal/domain/entity"
	"github.com/younwookim/redemption/internal/infrastructure/config"
)

// PlayerSystem runs the per-tick player state machine.
// It holds no level state: the stage is borrowed for the duration of each call.
type PlayerSystem struct {
	tuning PlayerTuning
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(tuning PlayerTuning) *PlayerSystem {
	return &PlayerSystem{tuning: tuning}
}

// Tuning returns the current tuning
func (s *PlayerSystem) Tuning() PlayerTuning {
	return s.tuning
}

// SetTuning swaps the tuning, e.g. after a config reload.
// Takes effect on the next Update.
func (s *PlayerSystem) SetTuning(t PlayerTuning) {
	s.tuning = t
}

// SpawnPlayer creates the player at the stage spawn point with sizes from config
func SpawnPlayer(cfg *config.GameConfig, stage *entity.Stage) *entity.Player {
	scale := cfg.Physics.Display.Scale
	pc := cfg.Entities.Player

	return entity.NewPlayer(
		stage.SpawnX, stage.SpawnY,
		Scaled(pc.Sprite.FrameWidth, scale), Scaled(pc.Sprite.FrameHeight, scale),
		Scaled(pc.Hitbox.Width, scale), Scaled(pc.Hitbox.Height, scale),
		Scaled(pc.AttackBox.Width, scale), Scaled(pc.AttackBox.Height, scale),
		pc.Stats.MaxHealth,
	)
}

// Update advances the player by one tick. Call exactly once per game tick.
func (s *PlayerSystem) Update(p *entity.Player, stage *entity.Stage, level LevelController) {
	s.updateHealthBar(p)

	// A dead player is inert until ResetAll
	if p.Health.Current <= 0 {
		level.SetGameOver(true)
		return
	}

	s.updateAttackBox(p)
	s.updatePos(p, stage)
	if p.Attacking {
		s.checkAttack(p, level)
	}
	s.updateAnimationTick(p)
	s.setAnimation(p)
}

// LoadLevel re-evaluates the floor state against a newly loaded stage
func (s *PlayerSystem) LoadLevel(p *entity.Player, stage *entity.Stage) {
	if !collision.IsEntityOnFloor(p.Hitbox, stage) {
		p.Motion.InAir = true
	}
}

// ResetAll returns the player to a fresh spawn without recreating it
func (s *PlayerSystem) ResetAll(p *entity.Player, stage *entity.Stage) {
	p.ResetDirBooleans()
	p.Intent.Jump = false
	p.Motion = entity.Motion{}
	p.Attacking = false
	p.AttackChecked = false
	p.Moving = false
	p.Action = entity.ActionIdle
	p.Animation = entity.Animation{}
	p.Health.Current = p.Health.Max
	p.SnapHitboxToBase()
	s.updateHealthBar(p)

	s.LoadLevel(p, stage)
}

func (s *PlayerSystem) updateHealthBar(p *entity.Player) {
	if p.Health.Max <= 0 {
		p.HealthWidth = 0
		return
	}
	p.HealthWidth = int(float64(p.Health.Current) / float64(p.Health.Max) * float64(s.tuning.HealthBarWidth))
}

// updateAttackBox keeps the attack box beside the hitbox on the facing side
func (s *PlayerSystem) updateAttackBox(p *entity.Player) {
	if p.Facing.FacingRight() {
		p.AttackBox.X = p.Hitbox.Right() + s.tuning.AttackOffsetX
	} else {
		p.AttackBox.X = p.Hitbox.X - p.AttackBox.W - s.tuning.AttackOffsetX
	}
	p.AttackBox.Y = p.Hitbox.Y + s.tuning.AttackOffsetY
}

// checkAttack hit-tests once per swing, on the impact frame
func (s *PlayerSystem) checkAttack(p *entity.Player, level LevelController) {
	if p.AttackChecked || p.Action != entity.ActionAttack || p.Animation.Index != attackImpactFrame {
		return
	}
	p.AttackChecked = true
	level.CheckEnemyHit(p.AttackBox)
}

func (s *PlayerSystem) updateAnimationTick(p *entity.Player) {
	cur := AnimState{Action: p.Action, Tick: p.Animation.Tick, Index: p.Animation.Index}
	next, wrapped := AdvanceAnimation(cur, s.tuning.AnimationSpeed, s.tuning.Frames.Frames(p.Action))
	p.Animation = entity.Animation{Tick: next.Tick, Index: next.Index}

	// The swing ends when the attack animation has played through
	if wrapped && p.Action == entity.ActionAttack {
		p.Attacking = false
		p.AttackChecked = false
	}
}

func (s *PlayerSystem) setAnimation(p *entity.Player) {
	prev := AnimState{Action: p.Action, Tick: p.Animation.Tick, Index: p.Animation.Index}
	next := NextAnimation(prev, AnimInputs{
		Moving:    p.Moving,
		InAir:     p.Motion.InAir,
		AirSpeed:  p.Motion.AirSpeed,
		Attacking: p.Attacking,
	}, s.tuning.Frames)

	p.Action = next.Action
	p.Animation = entity.Animation{Tick: next.Tick, Index: next.Index}
}
