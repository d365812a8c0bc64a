package config

import "fmt"

// Validate reports the first value that would make the simulation meaningless
func (c *GameConfig) Validate() error {
	if c.Physics == nil || c.Entities == nil {
		return fmt.Errorf("config: physics and entities are required")
	}

	d := c.Physics.Display
	if d.Scale <= 0 {
		return fmt.Errorf("config: display.scale must be positive, got %v", d.Scale)
	}
	if d.TileSize <= 0 || d.ScaledTileSize() <= 0 {
		return fmt.Errorf("config: display.tileSize must be positive, got %d", d.TileSize)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("config: display.framerate must be positive, got %d", d.Framerate)
	}

	p := c.Entities.Player
	if p.Sprite.FrameWidth <= 0 || p.Sprite.FrameHeight <= 0 {
		return fmt.Errorf("config: player.sprite frame size must be positive")
	}
	if p.Sprite.AnimationSpeed <= 0 {
		return fmt.Errorf("config: player.sprite.animationSpeed must be positive, got %d", p.Sprite.AnimationSpeed)
	}
	if attack, ok := p.Sprite.Animations["attack"]; ok && attack.Frames < 2 {
		return fmt.Errorf("config: player.sprite.animations.attack needs at least 2 frames to land a hit, got %d", attack.Frames)
	}
	if p.Hitbox.Width <= 0 || p.Hitbox.Height <= 0 {
		return fmt.Errorf("config: player.hitbox size must be positive")
	}
	if p.AttackBox.Width <= 0 || p.AttackBox.Height <= 0 {
		return fmt.Errorf("config: player.attackBox size must be positive")
	}
	if p.Stats.MaxHealth <= 0 {
		return fmt.Errorf("config: player.stats.maxHealth must be positive, got %d", p.Stats.MaxHealth)
	}
	if float64(p.Hitbox.Height) >= float64(d.TileSize) {
		return fmt.Errorf("config: player.hitbox height %d must be smaller than a tile", p.Hitbox.Height)
	}

	for name, e := range c.Entities.Enemies {
		if e.Hitbox.Width <= 0 || e.Hitbox.Height <= 0 {
			return fmt.Errorf("config: enemy %q hitbox size must be positive", name)
		}
		if e.Stats.MaxHealth <= 0 {
			return fmt.Errorf("config: enemy %q maxHealth must be positive", name)
		}
	}
	return nil
}
