package system

import "github.com/younwookim/redemption/internal/domain/entity"

// attackImpactFrame is the frame of the attack animation that lands the hit.
// Entering the attack skips straight to it.
const attackImpactFrame = 1

// AnimState is the animation part of the player state machine
type AnimState struct {
	Action entity.Action
	Tick   int
	Index  int
}

// AnimInputs is what the action selection looks at each frame
type AnimInputs struct {
	Moving    bool
	InAir     bool
	AirSpeed  float64
	Attacking bool
}

// AdvanceAnimation counts one tick. Every speed ticks the frame index moves on;
// it wraps to 0 after the last frame and wrapped reports that.
func AdvanceAnimation(s AnimState, speed, frames int) (next AnimState, wrapped bool) {
	next = s
	next.Tick++
	if next.Tick < speed {
		return next, false
	}

	next.Tick = 0
	next.Index++
	if next.Index >= frames {
		next.Index = 0
		wrapped = true
	}
	return next, wrapped
}

// SelectAction picks the action for the inputs.
// Attack beats airborne, airborne beats running, running beats idle.
func SelectAction(in AnimInputs) entity.Action {
	switch {
	case in.Attacking:
		return entity.ActionAttack
	case in.InAir && in.AirSpeed < 0:
		return entity.ActionJump
	case in.InAir:
		return entity.ActionFalling
	case in.Moving:
		return entity.ActionRunning
	default:
		return entity.ActionIdle
	}
}

// NextAnimation is the transition function of the animation state machine.
// Changing into the attack starts on the impact frame; any other change
// starts from frame 0. Staying in the same action keeps the timing.
func NextAnimation(prev AnimState, in AnimInputs, frames entity.FrameTable) AnimState {
	action := SelectAction(in)
	if action == prev.Action {
		return prev
	}

	if action == entity.ActionAttack {
		index := attackImpactFrame
		if n := frames.Frames(entity.ActionAttack); index >= n {
			index = n - 1
		}
		return AnimState{Action: action, Tick: 0, Index: index}
	}
	return AnimState{Action: action, Tick: 0, Index: 0}
}
