package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/redemption/internal/application/replay"
	"github.com/younwookim/redemption/internal/application/scene/playing"
	"github.com/younwookim/redemption/internal/infrastructure/config"
)

// runReplay feeds a recording through a fresh scene without opening a window
func runReplay(cfg *config.GameConfig, loader *config.Loader, path string, logger *zap.Logger) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	p, err := replayScene(cfg, loader, data, logger)
	if err != nil {
		return err
	}

	pl := p.Player()
	logger.Info("replay finished",
		zap.String("file", path),
		zap.Int("ticks", p.Tick()),
		zap.String("state", p.State().String()),
		zap.String("action", pl.Action.String()),
		zap.Float64("x", pl.Hitbox.X),
		zap.Float64("y", pl.Hitbox.Y),
		zap.Int("health", pl.Health.Current))
	return nil
}

// replayScene rebuilds the recorded stage and steps it through every frame
func replayScene(cfg *config.GameConfig, loader *config.Loader, data *replay.ReplayData, logger *zap.Logger) (*playing.Playing, error) {
	if data.Stage == "" {
		return nil, fmt.Errorf("replay has no stage")
	}
	stageCfg, err := loader.LoadStage(data.Stage)
	if err != nil {
		return nil, err
	}

	p := playing.New(cfg, stageCfg, logger)
	r := replay.NewReplayer(*data)
	for {
		input, ok := r.GetInput()
		if !ok {
			break
		}
		p.Step(input)
	}
	return p, nil
}
