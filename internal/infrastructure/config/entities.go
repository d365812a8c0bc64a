package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player    PlayerConfig           `json:"player"`
	Enemies   map[string]EnemyConfig `json:"enemies"`
	StatusBar StatusBarConfig        `json:"statusBar"`
}

type PlayerConfig struct {
	ID        string          `json:"id"`
	Sprite    SpriteConfig    `json:"sprite"`
	Hitbox    Size            `json:"hitbox"`
	AttackBox AttackBoxConfig `json:"attackBox"`
	Stats     PlayerStats     `json:"stats"`
}

type SpriteConfig struct {
	Sheet          string                     `json:"sheet"`
	FrameWidth     int                        `json:"frameWidth"`
	FrameHeight    int                        `json:"frameHeight"`
	DrawOffsetX    int                        `json:"drawOffsetX"` // hitbox x minus sprite x
	DrawOffsetY    int                        `json:"drawOffsetY"`
	AnimationSpeed int                        `json:"animationSpeed"` // ticks per frame
	Animations     map[string]AnimationConfig `json:"animations"`
}

type AnimationConfig struct {
	Row    int `json:"row"`
	Frames int `json:"frames"`
}

// Size is a box placed by the game, e.g. the player hitbox at the spawn point
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect is a box offset from a spawn position
type Rect struct {
	OffsetX int `json:"offsetX"`
	OffsetY int `json:"offsetY"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

// AttackBoxConfig places the melee box beside the hitbox.
// OffsetX is the gap between hitbox and attack box.
type AttackBoxConfig struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	OffsetX int `json:"offsetX"`
	OffsetY int `json:"offsetY"`
}

type PlayerStats struct {
	MaxHealth    int `json:"maxHealth"`
	AttackDamage int `json:"attackDamage"`
}

type EnemyConfig struct {
	ID     string     `json:"id"`
	Hitbox Rect       `json:"hitbox"`
	Stats  EnemyStats `json:"stats"`
}

type EnemyStats struct {
	MaxHealth int `json:"maxHealth"`
}

// StatusBarConfig is the HUD layout in unscaled units.
// The health bar position is relative to the status bar.
type StatusBarConfig struct {
	Image        string `json:"image"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	HealthX      int    `json:"healthX"`
	HealthY      int    `json:"healthY"`
	HealthWidth  int    `json:"healthWidth"`
	HealthHeight int    `json:"healthHeight"`
}
