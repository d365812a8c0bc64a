package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/redemption/internal/domain/entity"
)

// InputSystem turns device input into player intents
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state.
// Directions are held keys; JumpPressed and AttackPressed are edges.
type InputState struct {
	Left          bool
	Right         bool
	Up            bool
	Down          bool
	JumpPressed   bool
	AttackPressed bool
	// Window lost focus this frame
	Unfocused bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD),
		Up:          ebiten.IsKeyPressed(ebiten.KeyW),
		Down:        ebiten.IsKeyPressed(ebiten.KeyS),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		AttackPressed: inpututil.IsKeyJustPressed(ebiten.KeyJ) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Unfocused: !ebiten.IsFocused(),
	}
}

// Apply writes the input into the player's intents
func (s *InputSystem) Apply(player *entity.Player, input InputState) {
	// Keys released while unfocused never report, so drop everything held
	if input.Unfocused {
		player.ResetDirBooleans()
		return
	}

	player.SetLeft(input.Left)
	player.SetRight(input.Right)
	player.SetUp(input.Up)
	player.SetDown(input.Down)

	// The player consumes the jump intent, so only raise it here
	if input.JumpPressed {
		player.SetJump(true)
	}
	if input.AttackPressed {
		player.SetAttacking(true)
	}
}
