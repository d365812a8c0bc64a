package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/redemption/internal/application/game"
	"github.com/younwookim/redemption/internal/application/scene/playing"
	"github.com/younwookim/redemption/internal/infrastructure/asset"
	"github.com/younwookim/redemption/internal/infrastructure/config"
	"github.com/younwookim/redemption/internal/infrastructure/logging"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and print the final state")
	watchFlag := flag.String("watch", "", "Load configs from this directory and reload tuning on change")
	stageFlag := flag.String("stage", "demo", "Stage to load")
	assetsFlag := flag.String("assets", "assets", "Directory holding the sprite sheets")
	flag.Parse()

	loader, err := newLoader(*watchFlag)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Physics.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if *replayFlag != "" {
		if err := runReplay(cfg, loader, *replayFlag, logger); err != nil {
			logger.Fatal("replay failed", zap.Error(err))
		}
		return
	}

	stageCfg, err := loader.LoadStage(*stageFlag)
	if err != nil {
		logger.Fatal("failed to load stage", zap.Error(err))
	}

	p := playing.New(cfg, stageCfg, logger)
	if *recordFlag != "" {
		p.EnableRecording(*recordFlag)
	}

	if *watchFlag != "" {
		w, err := config.NewWatcher(*watchFlag, filepath.Join(*watchFlag, "stages"))
		if err != nil {
			logger.Fatal("failed to watch configs", zap.Error(err))
		}
		defer w.Close()
		p.WatchConfig(w, loader)
		logger.Info("watching configs", zap.String("dir", *watchFlag))
	}

	loadSprites(p, cfg, os.DirFS(*assetsFlag), logger)

	display := cfg.Physics.Display
	g := game.New(p, display.ScreenWidth(), display.ScreenHeight(), display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth(), display.ScreenHeight())
	ebiten.SetWindowTitle("Tales of Redemption")
	ebiten.SetTPS(display.Framerate)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return
	}
	// Window closed or loop failed; the scene still gets to save its recording
	g.Close()
	if err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}

// newLoader reads the embedded configs unless a directory is watched
func newLoader(watchDir string) (*config.Loader, error) {
	if watchDir != "" {
		return config.NewLoader(watchDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadSprites attaches the sprite sheet and status bar if they exist.
// Without them the drawer falls back to plain rectangles.
func loadSprites(p *playing.Playing, cfg *config.GameConfig, assets fs.FS, logger *zap.Logger) {
	sprite := cfg.Entities.Player.Sprite
	if sheet, err := asset.LoadImage(assets, sprite.Sheet); err != nil {
		logger.Warn("player sprites unavailable", zap.String("sheet", sprite.Sheet), zap.Error(err))
	} else if atlas, err := asset.SliceAtlas(sheet, sprite.FrameWidth, sprite.FrameHeight); err != nil {
		logger.Warn("invalid player sprite sheet", zap.String("sheet", sprite.Sheet), zap.Error(err))
	} else {
		p.Drawer().SetAtlas(atlas)
	}

	bar := cfg.Entities.StatusBar.Image
	if bar == "" {
		return
	}
	img, err := asset.LoadImage(assets, bar)
	if err != nil {
		logger.Warn("status bar image unavailable", zap.String("image", bar), zap.Error(err))
		return
	}
	p.Drawer().SetStatusBarImage(img)
}
