// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/washedaway/pkg/config"
	"github.com/decker502/washedaway/pkg/embedded"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/scenes"
	"github.com/decker502/washedaway/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 从磁盘读取关卡参数，为空时使用嵌入的 data/game.yaml
	ConfigPath string
	// Seed 固定随机种子，0 表示使用配置文件或随机种子
	Seed uint64
	// Fullscreen 以全屏启动（同时写入设置）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig               *config.GameConfig
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadGameConfig 按优先级加载关卡参数：
// 磁盘文件（configPath）> 嵌入的 data/game.yaml > 内置默认值，最后应用环境变量覆盖
//
// environ 为 nil 时读取进程环境变量。
func LoadGameConfig(configPath string, environ map[string]string) (*config.GameConfig, error) {
	var (
		cfg *config.GameConfig
		err error
	)

	switch {
	case configPath != "":
		cfg, err = config.LoadGameConfig(configPath)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] 加载关卡参数: %s", configPath)
	case embedded.Exists(config.GameConfigPath):
		data, readErr := embedded.ReadFile(config.GameConfigPath)
		if readErr != nil {
			return nil, readErr
		}
		cfg, err = config.ParseGameConfig(data)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] 加载嵌入的关卡参数: %s", config.GameConfigPath)
	default:
		cfg = config.DefaultGameConfig()
		if !embedded.IsInitialized() {
			log.Printf("[Config] embedded 未初始化，使用内置默认值")
		} else {
			log.Printf("[Config] 未找到关卡参数文件，使用内置默认值")
		}
	}

	if err := config.ApplyEnv(cfg, environ); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前应先调用 embedded.Init()；未初始化时使用内置默认参数。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath, nil)
	if err != nil {
		return nil, fmt.Errorf("关卡参数加载失败: %w", err)
	}
	if cfg.Seed != 0 {
		gameConfig.Seed = cfg.Seed
	}

	// 存档目录打不开时降级为内存存储
	gdataManager, err := game.OpenStorage(game.AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings and stats will not persist)", err)
		gdataManager = nil
	}

	settingsManager := game.NewSettingsManager(gdataManager)
	if err := settingsManager.Load(); err != nil {
		log.Printf("[App] Warning: Failed to load settings: %v", err)
	}
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}
	statsManager := game.NewStatsManager(gdataManager)

	// 初始化音频上下文并合成音效
	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	rng := utils.NewRand(gameConfig.Seed)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(rng)
	if err := resourceManager.LoadFonts(); err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}
	resourceManager.LoadTextures()

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	deps := &scenes.Deps{
		Config:    gameConfig,
		Resources: resourceManager,
		Scenes:    sceneManager,
		Input:     utils.KeyboardInput{},
		Sounds:    audioManager,
		Settings:  settingsManager,
		Stats:     statsManager,
		RNG:       rng,
	}
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(deps))
	if err := sceneManager.Load(game.SceneInstructions); err != nil {
		return nil, fmt.Errorf("failed to load first scene: %w", err)
	}

	log.Printf("[App] Started (seed=%d, screen=%dx%d)", gameConfig.Seed, gameConfig.Window.Width, gameConfig.Window.Height)

	return &App{
		gameConfig:      gameConfig,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// ApplyWindowSettings 设置窗口标题、尺寸和全屏状态，在 RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	ebiten.SetWindowTitle(a.gameConfig.Window.Title)
	ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(a.settingsManager.GetSettings().Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, exiting")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}
