package system

import (
	"github.com/younwookim/redemption/internal/domain/collision"
	"github.com/younwookim/redemption/internal/domain/entity"
)

// updatePos integrates one tick of movement: jump, gravity and tile collision
func (s *PlayerSystem) updatePos(p *entity.Player, stage *entity.Stage) {
	p.Moving = false

	if p.Intent.Jump {
		s.jump(p)
	}

	// Standing still, or left and right cancelling out
	if !p.Motion.InAir && p.Intent.Left == p.Intent.Right {
		return
	}

	xSpeed := 0.0
	if p.Intent.Left {
		xSpeed -= s.tuning.Speed
		p.Facing = entity.Facing{FlipX: p.Width, FlipW: -1}
	}
	if p.Intent.Right {
		xSpeed += s.tuning.Speed
		p.Facing = entity.Facing{FlipX: 0, FlipW: 1}
	}

	if !p.Motion.InAir && !collision.IsEntityOnFloor(p.Hitbox, stage) {
		p.Motion.InAir = true
	}

	if p.Motion.InAir {
		hb := p.Hitbox
		if collision.CanMoveHere(hb.X, hb.Y+p.Motion.AirSpeed, hb.W, hb.H, stage) {
			p.Hitbox.Y += p.Motion.AirSpeed
			p.Motion.AirSpeed += s.tuning.Gravity
		} else {
			p.Hitbox.Y = collision.EntityYPosUnderRoofOrAboveFloor(hb, p.Motion.AirSpeed, stage.TileSize)
			if p.Motion.AirSpeed > 0 {
				resetInAir(p)
			} else {
				p.Motion.AirSpeed = s.tuning.FallSpeedAfterCollision
			}
		}
	}
	s.updateXPos(p, xSpeed, stage)

	// Set even for a jump with no horizontal input; the run animation
	// is hidden by the jump animation anyway
	p.Moving = true
}

// jump consumes the jump intent; it only launches from the ground
func (s *PlayerSystem) jump(p *entity.Player) {
	p.Intent.Jump = false
	if p.Motion.InAir {
		return
	}
	p.Motion.InAir = true
	p.Motion.AirSpeed = s.tuning.JumpSpeed
}

func resetInAir(p *entity.Player) {
	p.Motion.InAir = false
	p.Motion.AirSpeed = 0
}

// updateXPos moves horizontally, sliding flush against walls
func (s *PlayerSystem) updateXPos(p *entity.Player, xSpeed float64, stage *entity.Stage) {
	hb := p.Hitbox
	if collision.CanMoveHere(hb.X+xSpeed, hb.Y, hb.W, hb.H, stage) {
		p.Hitbox.X += xSpeed
		return
	}
	p.Hitbox.X = collision.EntityXPosNextToWall(hb, xSpeed, stage.TileSize)
}
