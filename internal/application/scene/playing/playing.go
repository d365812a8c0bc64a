// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/redemption/internal/application/render"
	"github.com/younwookim/redemption/internal/application/scene"
	"github.com/younwookim/redemption/internal/application/state"
	"github.com/younwookim/redemption/internal/application/system"
	"github.com/younwookim/redemption/internal/domain/entity"
	"github.com/younwookim/redemption/internal/infrastructure/config"
)

// Playing is the main gameplay scene. It owns the level and acts as the
// player's level controller.
type Playing struct {
	config   *config.GameConfig
	stageCfg *config.StageConfig
	stage    *entity.Stage
	state    state.GameState
	player   *entity.Player
	logger   *zap.Logger

	playerSystem *system.PlayerSystem
	inputSystem  *system.InputSystem
	combatSystem *system.CombatSystem

	drawer  *render.Drawer
	camera  *render.Camera
	screenW int
	screenH int
	tick    int

	// Config hot reload
	watcher *config.Watcher
	loader  *config.Loader

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene for the stage
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, logger *zap.Logger) *Playing {
	display := cfg.Physics.Display
	stage := system.LoadStage(stageCfg, display.ScaledTileSize(), display.Scale)
	sprite, statusBar := render.LayoutFromConfig(cfg)

	p := &Playing{
		config:       cfg,
		stageCfg:     stageCfg,
		stage:        stage,
		state:        state.StatePlaying,
		player:       system.SpawnPlayer(cfg, stage),
		logger:       logger.With(zap.String("stage", stageCfg.Name)),
		playerSystem: system.NewPlayerSystem(system.TuningFromConfig(cfg)),
		inputSystem:  system.NewInputSystem(),
		combatSystem: system.NewCombatSystem(cfg),
		drawer:       render.NewDrawer(sprite, statusBar),
		screenW:      display.ScreenWidth(),
		screenH:      display.ScreenHeight(),
	}
	p.camera = render.NewCamera(p.screenW, int(stage.PixelWidth()))

	p.combatSystem.OnEnemyHit = func(enemy *entity.Enemy, killed bool) {
		p.logger.Debug("enemy hit",
			zap.Uint32("id", uint32(enemy.ID)),
			zap.Int("health", enemy.Health),
			zap.Bool("killed", killed))
	}
	p.combatSystem.OnSpikeHit = func(damage int) {
		p.logger.Debug("spike damage",
			zap.Int("damage", damage),
			zap.Int("health", p.player.Health.Current))
	}

	p.spawnEnemies()
	p.playerSystem.LoadLevel(p.player, p.stage)

	p.logger.Info("stage loaded",
		zap.Int("width", stage.Width),
		zap.Int("height", stage.Height),
		zap.Int("enemies", len(p.combatSystem.Enemies())))

	return p
}

func (p *Playing) spawnEnemies() {
	for i, spawn := range p.stageCfg.Enemies {
		if !p.combatSystem.SpawnEnemy(entity.EntityID(i+1), spawn.X, spawn.Y, spawn.Type) {
			p.logger.Warn("unknown enemy type", zap.String("type", spawn.Type))
		}
	}
}

// EnableRecording records every played frame and saves it to path
func (p *Playing) EnableRecording(path string) {
	p.recordFilename = path
	p.recorder = NewRecorder(p.stageCfg.ID)
	p.logger.Info("recording enabled", zap.String("file", path))
}

// WatchConfig reloads the player tuning whenever the watcher reports a change
func (p *Playing) WatchConfig(w *config.Watcher, loader *config.Loader) {
	p.watcher = w
	p.loader = loader
}

// Drawer exposes the renderer so sprite sheets can be attached
func (p *Playing) Drawer() *render.Drawer {
	return p.drawer
}

// CheckEnemyHit resolves the player's swing against the enemies (implements system.LevelController)
func (p *Playing) CheckEnemyHit(attackBox entity.Rect) {
	hits := p.combatSystem.HitEnemies(attackBox, p.config.Entities.Player.Stats.AttackDamage)
	if hits == 0 {
		p.logger.Debug("attack missed", zap.Int("tick", p.tick))
	}
}

// SetGameOver switches between playing and game over (implements system.LevelController)
func (p *Playing) SetGameOver(over bool) {
	if !over {
		p.state = state.StatePlaying
		return
	}
	if p.state == state.StateGameOver {
		return
	}

	p.state = state.StateGameOver
	p.logger.Info("game over", zap.Int("tick", p.tick))

	// Auto-save on game over; the run is complete, so nothing more is recorded
	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return nil, scene.ErrQuit
		}
	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
			p.Restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		p.drawer.Debug = !p.drawer.Debug
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.pollConfig()
	p.Step(p.inputSystem.GetInput())
}

// Step advances the simulation by one tick with the given input.
// It touches no device state, so replays drive it directly.
func (p *Playing) Step(input system.InputState) {
	if !p.state.Simulating() {
		return
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.inputSystem.Apply(p.player, input)
	p.combatSystem.Update()
	p.playerSystem.Update(p.player, p.stage, p)
	p.combatSystem.CheckSpikeDamage(p.player, p.stage)
	p.camera.Follow(p.player.Hitbox.X)
	p.tick++
}

// Restart respawns the player and the enemies
func (p *Playing) Restart() {
	p.playerSystem.ResetAll(p.player, p.stage)
	p.combatSystem.Reset()
	p.spawnEnemies()
	p.camera.Reset()
	p.tick = 0
	p.SetGameOver(false)

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.stageCfg.ID)
		p.logger.Info("recording restarted")
	}
}

func (p *Playing) pollConfig() {
	if p.watcher == nil {
		return
	}

	select {
	case err, ok := <-p.watcher.Errors:
		if ok {
			p.logger.Warn("config watcher error", zap.Error(err))
		}
	default:
	}

	changed := false
	for {
		name, ok := p.watcher.Poll()
		if !ok {
			break
		}
		p.logger.Debug("config changed", zap.String("file", name))
		changed = true
	}
	if !changed || p.loader == nil {
		return
	}

	cfg, err := p.loader.LoadAll()
	if err != nil {
		p.logger.Warn("config reload failed, keeping current tuning", zap.Error(err))
		return
	}
	p.ReloadConfig(cfg)
}

// ReloadConfig applies the tuning of a freshly loaded config.
// Sizes of already spawned entities are kept.
func (p *Playing) ReloadConfig(cfg *config.GameConfig) {
	cfg.Physics.Display.Scale = p.config.Physics.Display.Scale
	p.playerSystem.SetTuning(system.TuningFromConfig(cfg))
	p.logger.Info("player tuning reloaded",
		zap.Float64("speed", cfg.Physics.Movement.Speed),
		zap.Float64("gravity", cfg.Physics.Physics.Gravity),
		zap.Float64("jumpSpeed", cfg.Physics.Jump.Speed))
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Warn("failed to save recording", zap.Error(err))
	} else {
		p.logger.Info("recording saved", zap.String("file", filename), zap.Int("frames", p.recorder.FrameCount()))
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBG)

	offset := p.camera.Offset
	p.drawer.DrawStage(screen, p.stage, offset)
	p.drawer.DrawEnemies(screen, p.combatSystem.Enemies(), offset)
	p.drawer.DrawPlayer(screen, p.player, offset)
	p.drawer.DrawHUD(screen, p.player)

	ebitenutil.DebugPrintAt(screen, "A/D: Move | Space: Jump | J/LClick: Attack | Tab: Hitboxes | ESC: Pause", 10, p.screenH-20)
	if p.drawer.Debug {
		info := fmt.Sprintf("tick %d  %s  x=%.1f y=%.1f air=%.2f", p.tick, p.player.Action, p.player.Hitbox.X, p.player.Hitbox.Y, p.player.Motion.AirSpeed)
		ebitenutil.DebugPrintAt(screen, info, 10, p.screenH-36)
	}

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	render.DrawOverlay(screen, "PAUSED\n\nPress ESC to resume\nPress Q to quit", color.RGBA{0, 0, 0, 128})
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	msg := fmt.Sprintf("GAME OVER\n\nEnemies left: %d\n\nPress Z to restart", p.combatSystem.ActiveEnemies())
	render.DrawOverlay(screen, msg, color.RGBA{100, 0, 0, 180})
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Player returns the player
func (p *Playing) Player() *entity.Player {
	return p.player
}

// Stage returns the loaded stage
func (p *Playing) Stage() *entity.Stage {
	return p.stage
}

// Enemies returns the spawned enemies
func (p *Playing) Enemies() []*entity.Enemy {
	return p.combatSystem.Enemies()
}

// Tick returns the number of simulated ticks since the last (re)start
func (p *Playing) Tick() int {
	return p.tick
}
