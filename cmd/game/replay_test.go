package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/redemption/internal/application/replay"
	"github.com/younwookim/redemption/internal/application/system"
	"github.com/younwookim/redemption/internal/infrastructure/config"
)

func loadTestConfig(t *testing.T) (*config.GameConfig, *config.Loader) {
	t.Helper()
	loader := config.NewLoader("configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	return cfg, loader
}

// createRunReplay walks right, jumps now and then and swings at the end
func createRunReplay(frames int) *replay.ReplayData {
	data := replay.CreateTestReplayData(0, "demo")
	for i := 0; i < frames; i++ {
		in := system.InputState{Right: true}
		if i%120 == 60 {
			in.JumpPressed = true
		}
		if i == frames-1 {
			in.AttackPressed = true
		}
		data.Frames = append(data.Frames, replay.FromInput(i, in))
	}
	return &data
}

func TestNewLoader(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		loader, err := newLoader("")
		require.NoError(t, err)

		cfg, err := loader.LoadAll()
		require.NoError(t, err)
		assert.Positive(t, cfg.Physics.Display.Framerate)

		_, err = loader.LoadStage("demo")
		assert.NoError(t, err)
	})

	t.Run("directory", func(t *testing.T) {
		loader, err := newLoader("configs")
		require.NoError(t, err)
		assert.Equal(t, "configs", loader.BasePath())

		_, err = loader.LoadAll()
		assert.NoError(t, err)
	})
}

func TestReplayScene_Deterministic(t *testing.T) {
	cfg, loader := loadTestConfig(t)
	data := createRunReplay(600)

	first, err := replayScene(cfg, loader, data, zaptest.NewLogger(t))
	require.NoError(t, err)
	second, err := replayScene(cfg, loader, data, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 600, first.Tick())
	assert.Equal(t, first.Player().Hitbox, second.Player().Hitbox)
	assert.Equal(t, first.Player().Motion, second.Player().Motion)
	assert.Equal(t, first.Player().Action, second.Player().Action)
	assert.Equal(t, first.Player().Health, second.Player().Health)
	assert.Greater(t, first.Player().Hitbox.X, first.Stage().SpawnX, "walked right")
}

func TestReplayScene_EmptyReplay(t *testing.T) {
	cfg, loader := loadTestConfig(t)
	data := replay.CreateTestReplayData(0, "demo")

	p, err := replayScene(cfg, loader, &data, zaptest.NewLogger(t))

	require.NoError(t, err)
	assert.Zero(t, p.Tick())
	assert.Equal(t, p.Stage().SpawnX, p.Player().Hitbox.X)
}

func TestReplayScene_Errors(t *testing.T) {
	cfg, loader := loadTestConfig(t)

	t.Run("no stage", func(t *testing.T) {
		data := replay.CreateTestReplayData(10, "")
		_, err := replayScene(cfg, loader, &data, zaptest.NewLogger(t))
		assert.Error(t, err)
	})

	t.Run("unknown stage", func(t *testing.T) {
		data := replay.CreateTestReplayData(10, "nowhere")
		_, err := replayScene(cfg, loader, &data, zaptest.NewLogger(t))
		assert.Error(t, err)
	})
}

func TestRunReplay(t *testing.T) {
	cfg, loader := loadTestConfig(t)
	path := filepath.Join(t.TempDir(), "run.json")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, replay.Encode(f, *createRunReplay(300)))
	require.NoError(t, f.Close())

	core, logs := observer.New(zap.InfoLevel)
	require.NoError(t, runReplay(cfg, loader, path, zap.New(core)))

	finished := logs.FilterMessage("replay finished").All()
	require.Len(t, finished, 1)
	assert.EqualValues(t, 300, finished[0].ContextMap()["ticks"])

	t.Run("missing file", func(t *testing.T) {
		err := runReplay(cfg, loader, filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
		assert.Error(t, err)
	})
}
