package entity

// Action is the animation category of the player.
// The value doubles as the row of the sprite atlas.
type Action int

const (
	ActionIdle Action = iota
	ActionRunning
	ActionJump
	ActionFalling
	ActionAttack
	ActionHit
	ActionDead
)

// ActionCount is the number of actions (atlas rows)
const ActionCount = 7

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionRunning:
		return "running"
	case ActionJump:
		return "jump"
	case ActionFalling:
		return "falling"
	case ActionAttack:
		return "attack"
	case ActionHit:
		return "hit"
	case ActionDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ParseAction returns the action named s
func ParseAction(s string) (Action, bool) {
	for a := ActionIdle; a <= ActionDead; a++ {
		if a.String() == s {
			return a, true
		}
	}
	return ActionIdle, false
}

// DefaultFrameCount returns the number of sprite frames of an action
// in the stock player atlas.
func DefaultFrameCount(a Action) int {
	switch a {
	case ActionDead:
		return 8
	case ActionRunning:
		return 6
	case ActionIdle:
		return 5
	case ActionHit:
		return 4
	case ActionJump, ActionAttack:
		return 3
	default:
		return 1
	}
}

// FrameTable maps every action to its frame count
type FrameTable [ActionCount]int

// DefaultFrameTable returns the frame counts of the stock player atlas
func DefaultFrameTable() FrameTable {
	var t FrameTable
	for a := ActionIdle; a <= ActionDead; a++ {
		t[a] = DefaultFrameCount(a)
	}
	return t
}

// Frames returns the frame count of a, never less than 1
func (t FrameTable) Frames(a Action) int {
	if a < 0 || int(a) >= len(t) || t[a] < 1 {
		return 1
	}
	return t[a]
}
