package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *GameConfig {
	return &GameConfig{
		Physics: &PhysicsConfig{
			Display: DisplayConfig{TileSize: 32, TilesInWidth: 26, TilesInHeight: 14, Scale: 2, Framerate: 200},
		},
		Entities: &EntitiesConfig{
			Player: PlayerConfig{
				Sprite:    SpriteConfig{FrameWidth: 64, FrameHeight: 40, AnimationSpeed: 25},
				Hitbox:    Size{Width: 20, Height: 27},
				AttackBox: AttackBoxConfig{Width: 20, Height: 20},
				Stats:     PlayerStats{MaxHealth: 100},
			},
			Enemies: map[string]EnemyConfig{
				"crabby": {Hitbox: Rect{Width: 22, Height: 19}, Stats: EnemyStats{MaxHealth: 10}},
			},
		},
	}
}

func TestGameConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name    string
		mutate  func(c *GameConfig)
		wantErr string
	}{
		{"missing entities", func(c *GameConfig) { c.Entities = nil }, "required"},
		{"zero scale", func(c *GameConfig) { c.Physics.Display.Scale = 0 }, "display.scale"},
		{"negative tile size", func(c *GameConfig) { c.Physics.Display.TileSize = -1 }, "display.tileSize"},
		{"zero framerate", func(c *GameConfig) { c.Physics.Display.Framerate = 0 }, "display.framerate"},
		{"zero frame size", func(c *GameConfig) { c.Entities.Player.Sprite.FrameWidth = 0 }, "frame size"},
		{"zero animation speed", func(c *GameConfig) { c.Entities.Player.Sprite.AnimationSpeed = 0 }, "animationSpeed"},
		{"single frame attack", func(c *GameConfig) {
			c.Entities.Player.Sprite.Animations = map[string]AnimationConfig{"attack": {Row: 4, Frames: 1}}
		}, "animations.attack"},
		{"negative hitbox", func(c *GameConfig) { c.Entities.Player.Hitbox.Width = -5 }, "player.hitbox"},
		{"hitbox taller than a tile", func(c *GameConfig) { c.Entities.Player.Hitbox.Height = 32 }, "smaller than a tile"},
		{"empty attack box", func(c *GameConfig) { c.Entities.Player.AttackBox.Height = 0 }, "attackBox"},
		{"no health", func(c *GameConfig) { c.Entities.Player.Stats.MaxHealth = 0 }, "maxHealth"},
		{"bad enemy", func(c *GameConfig) {
			c.Entities.Enemies["crabby"] = EnemyConfig{Stats: EnemyStats{MaxHealth: 1}}
		}, `enemy "crabby"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
