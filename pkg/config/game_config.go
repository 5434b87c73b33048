package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfigPath 是嵌入资源中关卡参数文件的路径
const GameConfigPath = "data/game.yaml"

// GameConfig 关卡参数配置
//
// 配置文件位置: data/game.yaml
// 每个字段都可以通过 WASHEDAWAY_ 前缀的环境变量覆盖（见 ApplyEnv）。
type GameConfig struct {
	Window     WindowConfig     `yaml:"window" envPrefix:"WINDOW_"`
	Round      RoundConfig      `yaml:"round"`
	Player     PlayerConfig     `yaml:"player" envPrefix:"PLAYER_"`
	Target     TargetConfig     `yaml:"target" envPrefix:"TARGET_"`
	Bubbles    BubbleConfig     `yaml:"bubbles" envPrefix:"BUBBLE_"`
	Background BackgroundConfig `yaml:"background" envPrefix:"BACKGROUND_"`
	TimerBar   TimerBarConfig   `yaml:"timerBar" envPrefix:"TIMER_BAR_"`
	Flash      FlashConfig      `yaml:"flash" envPrefix:"FLASH_"`

	// Seed 随机种子，0 表示每局使用随机种子
	Seed uint64 `yaml:"seed" env:"SEED"`
}

// WindowConfig 逻辑屏幕尺寸（Layout 返回值）
type WindowConfig struct {
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	Title  string `yaml:"title" env:"TITLE"`
}

// RoundConfig 倒计时与惩罚参数
type RoundConfig struct {
	TotalTime      float64 `yaml:"totalTime" env:"TOTAL_TIME"`
	InitialPenalty float64 `yaml:"initialPenalty" env:"INITIAL_PENALTY"`
	PenaltyStep    float64 `yaml:"penaltyStep" env:"PENALTY_STEP"`
	MaxPenalty     float64 `yaml:"maxPenalty" env:"MAX_PENALTY"`
	// FlipInterval 滚筒方向切换间隔（秒）
	FlipInterval float64 `yaml:"flipInterval" env:"FLIP_INTERVAL"`
}

// PlayerConfig 玩家袜子参数
type PlayerConfig struct {
	Speed             float64 `yaml:"speed" env:"SPEED"`
	Scale             float64 `yaml:"scale" env:"SCALE"`
	PushImpulse       float64 `yaml:"pushImpulse" env:"PUSH_IMPULSE"`
	KnockbackDuration float64 `yaml:"knockbackDuration" env:"KNOCKBACK_DURATION"`
}

// TargetConfig 目标袜子的摆放与判定参数
type TargetConfig struct {
	Margin                float64 `yaml:"margin" env:"MARGIN"`
	MinStartDistanceRatio float64 `yaml:"minStartDistanceRatio" env:"MIN_START_DISTANCE_RATIO"`
	WinDistanceFactor     float64 `yaml:"winDistanceFactor" env:"WIN_DISTANCE_FACTOR"`
}

// BubbleConfig 泡泡生成与漂移参数
type BubbleConfig struct {
	Count        int     `yaml:"count" env:"COUNT"`
	SpawnMargin  float64 `yaml:"spawnMargin" env:"SPAWN_MARGIN"`
	MinRadius    int     `yaml:"minRadius" env:"MIN_RADIUS"`
	MaxRadius    int     `yaml:"maxRadius" env:"MAX_RADIUS"`
	MaxDrift     float64 `yaml:"maxDrift" env:"MAX_DRIFT"`
	BounceMargin float64 `yaml:"bounceMargin" env:"BOUNCE_MARGIN"`
}

// BackgroundConfig 水面背景滚动参数（像素/帧）
type BackgroundConfig struct {
	ScrollX float64 `yaml:"scrollX" env:"SCROLL_X"`
	ScrollY float64 `yaml:"scrollY" env:"SCROLL_Y"`
	Alpha   float64 `yaml:"alpha" env:"ALPHA"`
}

// TimerBarConfig 倒计时条参数
type TimerBarConfig struct {
	WidthRatio float64 `yaml:"widthRatio" env:"WIDTH_RATIO"`
	Height     float64 `yaml:"height" env:"HEIGHT"`
	Y          float64 `yaml:"y" env:"Y"`
	// HighRatio 以上为青色，LowRatio 以上为黄色，其余为红色
	HighRatio float64 `yaml:"highRatio" env:"HIGH_RATIO"`
	LowRatio  float64 `yaml:"lowRatio" env:"LOW_RATIO"`
}

// FlashConfig 方向切换提示的渐隐动画参数
type FlashConfig struct {
	Duration float64 `yaml:"duration" env:"DURATION"`
	EndScale float64 `yaml:"endScale" env:"END_SCALE"`
}

// DefaultGameConfig 返回内置默认配置
// 与 data/game.yaml 保持一致，在没有配置文件可读时使用（如移动端）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Washed Away!"},
		Round: RoundConfig{
			TotalTime:      30,
			InitialPenalty: 2,
			PenaltyStep:    0.5,
			MaxPenalty:     6,
			FlipInterval:   5,
		},
		Player: PlayerConfig{
			Speed:             250,
			Scale:             0.35,
			PushImpulse:       180,
			KnockbackDuration: 0.1,
		},
		Target: TargetConfig{
			Margin:                100,
			MinStartDistanceRatio: 0.4,
			WinDistanceFactor:     0.15,
		},
		Bubbles: BubbleConfig{
			Count:        50,
			SpawnMargin:  40,
			MinRadius:    8,
			MaxRadius:    16,
			MaxDrift:     50,
			BounceMargin: 10,
		},
		Background: BackgroundConfig{ScrollX: 0.2, ScrollY: 0.15, Alpha: 0.8},
		TimerBar: TimerBarConfig{
			WidthRatio: 0.5,
			Height:     18,
			Y:          70,
			HighRatio:  0.6,
			LowRatio:   0.3,
		},
		Flash: FlashConfig{Duration: 3, EndScale: 1.06},
	}
}

// ParseGameConfig 解析 YAML 数据并验证
//
// 未出现在 YAML 中的字段保留默认值。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从磁盘路径加载配置（--config 参数）
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Round.TotalTime <= 0 {
		return fmt.Errorf("round totalTime must be positive, got %.2f", c.Round.TotalTime)
	}
	if c.Round.InitialPenalty < 0 || c.Round.PenaltyStep < 0 {
		return fmt.Errorf("round penalties must not be negative (initial=%.2f, step=%.2f)",
			c.Round.InitialPenalty, c.Round.PenaltyStep)
	}
	if c.Round.MaxPenalty < c.Round.InitialPenalty {
		return fmt.Errorf("round maxPenalty(%.2f) < initialPenalty(%.2f)",
			c.Round.MaxPenalty, c.Round.InitialPenalty)
	}
	if c.Round.FlipInterval <= 0 {
		return fmt.Errorf("round flipInterval must be positive, got %.2f", c.Round.FlipInterval)
	}

	if c.Player.Speed <= 0 || c.Player.Scale <= 0 {
		return fmt.Errorf("player speed and scale must be positive (speed=%.2f, scale=%.2f)",
			c.Player.Speed, c.Player.Scale)
	}

	// 目标放置区域必须存在，且最小距离必须能在区域内满足，否则拒绝采样不会结束
	w, h := float64(c.Window.Width), float64(c.Window.Height)
	if 2*c.Target.Margin >= w || 2*c.Target.Margin >= h {
		return fmt.Errorf("target margin %.1f leaves no room in %dx%d", c.Target.Margin, c.Window.Width, c.Window.Height)
	}
	if c.MinStartDistance() > c.MaxTargetDistance() {
		return fmt.Errorf("target minStartDistanceRatio %.2f is unreachable (min=%.1f, max=%.1f)",
			c.Target.MinStartDistanceRatio, c.MinStartDistance(), c.MaxTargetDistance())
	}

	if c.Bubbles.Count < 0 {
		return fmt.Errorf("bubble count must not be negative, got %d", c.Bubbles.Count)
	}
	if c.Bubbles.MinRadius <= 0 || c.Bubbles.MinRadius > c.Bubbles.MaxRadius {
		return fmt.Errorf("bubble radius range invalid: min(%d) max(%d)", c.Bubbles.MinRadius, c.Bubbles.MaxRadius)
	}
	if 2*c.Bubbles.SpawnMargin >= w || 2*c.Bubbles.SpawnMargin >= h {
		return fmt.Errorf("bubble spawnMargin %.1f leaves no room", c.Bubbles.SpawnMargin)
	}

	if c.TimerBar.LowRatio > c.TimerBar.HighRatio {
		return fmt.Errorf("timerBar lowRatio(%.2f) > highRatio(%.2f)", c.TimerBar.LowRatio, c.TimerBar.HighRatio)
	}
	if c.Flash.Duration <= 0 {
		return fmt.Errorf("flash duration must be positive, got %.2f", c.Flash.Duration)
	}

	return nil
}

// MinStartDistance 目标与屏幕中心的最小距离（像素）
func (c *GameConfig) MinStartDistance() float64 {
	return float64(c.Window.Width) * c.Target.MinStartDistanceRatio
}

// MaxTargetDistance 目标放置区域角点到屏幕中心的距离，即可达到的最大距离
func (c *GameConfig) MaxTargetDistance() float64 {
	dx := float64(c.Window.Width)/2 - c.Target.Margin
	dy := float64(c.Window.Height)/2 - c.Target.Margin
	return math.Hypot(dx, dy)
}
