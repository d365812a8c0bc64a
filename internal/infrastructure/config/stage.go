package config

// StageConfig is the root config for stage files (YAML or JSON)
type StageConfig struct {
	ID          string                       `json:"id" yaml:"id"`
	Name        string                       `json:"name" yaml:"name"`
	PlayerSpawn PositionConfig               `json:"playerSpawn" yaml:"player_spawn"`
	Layers      LayersConfig                 `json:"layers" yaml:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping" yaml:"tile_mapping"`
	Enemies     []EnemySpawnConfig           `json:"enemies" yaml:"enemies"`
}

// PositionConfig is a point in unscaled units
type PositionConfig struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// LayersConfig holds one string per tile row, one character per tile
type LayersConfig struct {
	Collision []string `json:"collision" yaml:"collision"`
}

type TileMappingConfig struct {
	Type   string `json:"type" yaml:"type"`
	Solid  bool   `json:"solid" yaml:"solid"`
	Damage int    `json:"damage,omitempty" yaml:"damage,omitempty"`
}

type EnemySpawnConfig struct {
	Type string `json:"type" yaml:"type"`
	X    int    `json:"x" yaml:"x"`
	Y    int    `json:"y" yaml:"y"`
}
