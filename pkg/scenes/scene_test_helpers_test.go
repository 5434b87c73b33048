package scenes

import (
	"testing"

	"github.com/decker502/washedaway/internal/audio"
	"github.com/decker502/washedaway/pkg/config"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/utils"
)

const frame = 1.0 / 60

// recordingLoader 记录被请求加载的场景，fail 非空时返回该错误
type recordingLoader struct {
	loaded []string
	fail   error
}

func (l *recordingLoader) Load(name string) error {
	l.loaded = append(l.loaded, name)
	return l.fail
}

// recordingSounds 记录播放过的音效
type recordingSounds struct {
	played []audio.SoundID
}

func (r *recordingSounds) PlaySound(id audio.SoundID) bool {
	r.played = append(r.played, id)
	return true
}

func (r *recordingSounds) count(id audio.SoundID) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

type testEnv struct {
	deps   *Deps
	input  *utils.FakeKeyInput
	loader *recordingLoader
	sounds *recordingSounds
}

// newTestEnv 创建使用真实纹理与字体、内存存储的场景依赖
func newTestEnv(t *testing.T, mutate func(cfg *config.GameConfig)) *testEnv {
	t.Helper()

	cfg := config.DefaultGameConfig()
	if mutate != nil {
		mutate(cfg)
	}

	rng := utils.NewRand(12345)
	rm := game.NewResourceManager(rng)
	if err := rm.LoadFonts(); err != nil {
		t.Fatalf("LoadFonts failed: %v", err)
	}
	rm.LoadTextures()

	env := &testEnv{
		input:  utils.NewFakeKeyInput(),
		loader: &recordingLoader{},
		sounds: &recordingSounds{},
	}
	env.deps = &Deps{
		Config:    cfg,
		Resources: rm,
		Scenes:    env.loader,
		Input:     env.input,
		Sounds:    env.sounds,
		Settings:  game.NewSettingsManager(nil),
		Stats:     game.NewStatsManager(nil),
		RNG:       rng,
	}
	return env
}

// newTestMainScene 创建关卡，失败时终止测试
func newTestMainScene(t *testing.T, env *testEnv) *MainScene {
	t.Helper()
	scene, err := NewMainScene(env.deps)
	if err != nil {
		t.Fatalf("NewMainScene failed: %v", err)
	}
	return scene
}

// runFrames 连续推进 n 帧
func runFrames(scene Scene, input *utils.FakeKeyInput, n int) {
	for i := 0; i < n; i++ {
		scene.Update(frame)
		input.EndFrame()
	}
}
