package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display"`
	Physics  PhysicsSettings `json:"physics"`
	Movement MovementConfig  `json:"movement"`
	Jump     JumpConfig      `json:"jump"`
	Combat   CombatConfig    `json:"combat"`
	Logging  LoggingConfig   `json:"logging"`
}

// DisplayConfig describes the world scale and the visible window.
// Every length in the other configs is in unscaled units and gets
// multiplied by Scale when the game is built.
type DisplayConfig struct {
	TileSize      int     `json:"tileSize"`      // unscaled tile edge
	TilesInWidth  int     `json:"tilesInWidth"`  // visible tiles horizontally
	TilesInHeight int     `json:"tilesInHeight"` // visible tiles vertically
	Scale         float64 `json:"scale"`
	Framerate     int     `json:"framerate"` // update ticks per second
}

// ScaledTileSize returns the tile edge in world units
func (d DisplayConfig) ScaledTileSize() int {
	return int(float64(d.TileSize) * d.Scale)
}

// ScreenWidth returns the window width in world units
func (d DisplayConfig) ScreenWidth() int {
	return d.ScaledTileSize() * d.TilesInWidth
}

// ScreenHeight returns the window height in world units
func (d DisplayConfig) ScreenHeight() int {
	return d.ScaledTileSize() * d.TilesInHeight
}

type PhysicsSettings struct {
	Gravity float64 `json:"gravity"` // added to air speed every tick
}

type MovementConfig struct {
	Speed float64 `json:"speed"` // horizontal units per tick
}

type JumpConfig struct {
	Speed                   float64 `json:"speed"`                   // initial air speed, negative is up
	FallSpeedAfterCollision float64 `json:"fallSpeedAfterCollision"` // air speed after hitting a ceiling
}

type CombatConfig struct {
	SpikeCooldown int `json:"spikeCooldown"` // ticks between spike hits
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"` // "json" or "console"
}
