package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/decker502/washedaway/pkg/entities"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// InstructionLines 说明页正文
var InstructionLines = []string{
	"You are a lost sock in the washing machine!",
	"Find your matching pair before time runs out.",
	"You can move only when the spin direction is CLOCKWISE.",
	"Avoid bubbles. Each hit costs time, and the penalty grows every time.",
	"Use arrow keys to move when allowed.",
	"",
	"Press SPACE to Start",
}

var (
	panelColor       = utils.HexColor(0x59d6ff)
	titleColor       = utils.HexColor(0xffffff)
	titleStrokeColor = utils.HexColor(0x003366)
	bodyTextColor    = utils.HexColor(0x003049)
	softShadowColor  = color.RGBA{A: 0x80}
)

// InstructionScene 开始前的说明页
//
// SPACE 开始游戏（只响应第一次），M 切换音效开关，-/= 调整音量，设置改动立即保存。
type InstructionScene struct {
	deps    *Deps
	started bool
}

// NewInstructionScene 创建说明页
func NewInstructionScene(deps *Deps) *InstructionScene {
	return &InstructionScene{deps: deps}
}

// Update 处理按键
func (s *InstructionScene) Update(deltaTime float64) {
	if s.started {
		return
	}

	if s.deps.Settings != nil {
		changed := false
		if s.deps.Input.IsJustPressed(ebiten.KeyM) {
			enabled := s.deps.Settings.ToggleSound()
			log.Printf("[InstructionScene] Sound enabled: %v", enabled)
			changed = true
		}
		if step := s.volumeStep(); step != 0 {
			s.deps.Settings.SetSoundVolume(s.deps.Settings.GetSettings().SoundVolume + step)
			log.Printf("[InstructionScene] Sound volume: %.1f", s.deps.Settings.GetSettings().SoundVolume)
			changed = true
		}
		if changed {
			if err := s.deps.Settings.Save(); err != nil {
				log.Printf("[InstructionScene] Warning: Failed to save settings: %v", err)
			}
		}
	}

	if s.deps.Input.IsJustPressed(ebiten.KeySpace) {
		if err := s.deps.Scenes.Load(game.SceneMain); err != nil {
			log.Printf("[InstructionScene] Warning: Failed to start: %v", err)
		} else {
			s.started = true
		}
	}
}

// VolumeStep 每次按键的音量变化
const VolumeStep = 0.1

func (s *InstructionScene) volumeStep() float64 {
	switch {
	case s.deps.Input.IsJustPressed(ebiten.KeyMinus):
		return -VolumeStep
	case s.deps.Input.IsJustPressed(ebiten.KeyEqual):
		return VolumeStep
	}
	return 0
}

// Started 是否已经请求开始游戏
func (s *InstructionScene) Started() bool {
	return s.started
}

// StatsLine 统计信息行
func StatsLine(stats game.PlayerStats) string {
	if stats.RoundsPlayed == 0 {
		return "No rounds played yet"
	}
	line := fmt.Sprintf("Rounds: %d   Wins: %d", stats.RoundsPlayed, stats.Wins)
	if stats.Wins > 0 {
		line += fmt.Sprintf("   Best: %.1fs left", stats.BestTimeLeft)
	}
	return line
}

// SoundLine 音效开关和音量提示
func SoundLine(enabled bool, volume float64) string {
	state := "OFF"
	if enabled {
		state = "ON"
	}
	return fmt.Sprintf("M: Sound %s   -/=: Volume %d%%", state, int(math.Round(volume*100)))
}

// Draw 绘制面板、标题、说明和统计
func (s *InstructionScene) Draw(screen *ebiten.Image) {
	cfg := s.deps.Config
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)

	screen.Fill(ClearColor)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), utils.WithAlpha(panelColor, 0.85), false)

	fonts := s.deps.Resources

	title := fonts.Font(entities.FontSize(cfg.Window.Height, 0.11), true)
	utils.DrawStyledText(screen, "WASHED AWAY!", title, w/2, h*0.18, utils.TextDrawStyle{
		Color:       titleColor,
		Stroke:      titleStrokeColor,
		StrokeWidth: 7,
		ShadowX:     2,
		ShadowY:     2,
		ShadowColor: softShadowColor,
		Centered:    true,
		Alpha:       1,
	})

	body := fonts.Font(entities.FontSize(cfg.Window.Height, 0.035), false)
	lines := utils.WrapText(strings.Join(InstructionLines, "\n"), body, w*0.8)
	utils.DrawStyledText(screen, strings.Join(lines, "\n"), body, w/2, h*0.46, utils.TextDrawStyle{
		Color:    bodyTextColor,
		Centered: true,
		Alpha:    1,
	})

	footer := fonts.Font(entities.FontSize(cfg.Window.Height, 0.028), false)
	footerLines := []string{}
	if s.deps.Stats != nil {
		footerLines = append(footerLines, StatsLine(s.deps.Stats.Stats()))
	}
	if s.deps.Settings != nil {
		settings := s.deps.Settings.GetSettings()
		footerLines = append(footerLines, SoundLine(settings.SoundEnabled, settings.SoundVolume))
	}
	utils.DrawStyledText(screen, strings.Join(footerLines, "\n"), footer, w/2, h*0.84, utils.TextDrawStyle{
		Color:    bodyTextColor,
		Centered: true,
		Alpha:    0.8,
	})
}
