package entities

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/config"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/utils"
)

// HUD 颜色
var (
	DirectionTextColor   = utils.HexColor(0xf9f630)
	DirectionStrokeColor = utils.HexColor(0x0f035f)
	TimerTextColor       = utils.HexColor(0xbff574)
	TimerBarStartColor   = utils.HexColor(0x00ff99)
	TimerGlowTint        = utils.HexColor(0x00fff2)
	black                = color.RGBA{A: 0xff}
)

// FontSize 按屏幕高度比例计算字号（取整）
func FontSize(height int, ratio float64) float64 {
	return math.Round(float64(height) * ratio)
}

// DirectionLabel HUD 方向文本
func DirectionLabel(d game.Direction) string {
	return "Direction: " + d.String()
}

// TimerLabel HUD 倒计时文本
func TimerLabel(seconds int) string {
	return fmt.Sprintf("Time: %d", seconds)
}

func newHUDText(em *ecs.EntityManager, kind components.HUDTextKind, x, y float64, label string, style components.TextStyle) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.TextComponent{Text: label, Style: style, Alpha: 1})
	ecs.AddComponent(em, id, &components.HUDTextComponent{Kind: kind})
	ecs.AddComponent(em, id, &components.DepthComponent{Depth: DepthHUD})
	return id
}

// NewDirectionText 左上角的方向提示
func NewDirectionText(em *ecs.EntityManager, cfg *config.GameConfig, d game.Direction) ecs.EntityID {
	style := components.TextStyle{
		Size:        FontSize(cfg.Window.Height, 0.038),
		Bold:        true,
		Color:       DirectionTextColor,
		Stroke:      DirectionStrokeColor,
		StrokeWidth: 4,
		ShadowX:     2,
		ShadowY:     2,
		ShadowColor: DirectionStrokeColor,
	}
	return newHUDText(em, components.HUDDirection, 22, 18, DirectionLabel(d), style)
}

// NewTimerText 右上角的剩余秒数
func NewTimerText(em *ecs.EntityManager, cfg *config.GameConfig, seconds int) ecs.EntityID {
	style := components.TextStyle{
		Size:        FontSize(cfg.Window.Height, 0.038),
		Bold:        true,
		Color:       TimerTextColor,
		Stroke:      black,
		StrokeWidth: 4,
		ShadowX:     2,
		ShadowY:     2,
		ShadowColor: black,
	}
	return newHUDText(em, components.HUDTimer, float64(cfg.Window.Width)-220, 20, TimerLabel(seconds), style)
}

// NewTimerBar 创建倒计时条及其背后的光晕，返回计时条实体
func NewTimerBar(em *ecs.EntityManager, images ImageSource, cfg *config.GameConfig) (ecs.EntityID, error) {
	tc := cfg.TimerBar
	w := float64(cfg.Window.Width)
	barWidth := w * tc.WidthRatio

	glowImg := images.GetImage(game.TextureBar)
	if glowImg == nil {
		return 0, fmt.Errorf("texture %q not loaded", game.TextureBar)
	}

	glow := em.CreateEntity()
	ecs.AddComponent(em, glow, &components.PositionComponent{X: w / 2, Y: tc.Y})
	ecs.AddComponent(em, glow, &components.SpriteComponent{
		Image:    glowImg,
		Alpha:    0.18,
		DisplayW: barWidth + 40,
		DisplayH: tc.Height * 4,
		Tinted:   true,
		Tint:     TimerGlowTint,
	})
	ecs.AddComponent(em, glow, &components.DepthComponent{Depth: DepthTimerGlow})

	// 左端锚定，Y 为竖直中心
	bar := em.CreateEntity()
	ecs.AddComponent(em, bar, &components.PositionComponent{X: (w - barWidth) / 2, Y: tc.Y})
	ecs.AddComponent(em, bar, &components.TimerBarComponent{
		FullWidth: barWidth,
		Width:     barWidth,
		Height:    tc.Height,
		Color:     TimerBarStartColor,
	})
	ecs.AddComponent(em, bar, &components.DepthComponent{Depth: DepthHUD})
	return bar, nil
}

// NewBackground 平铺滚动的水面背景
func NewBackground(em *ecs.EntityManager, images ImageSource, cfg *config.GameConfig) (ecs.EntityID, error) {
	img := images.GetImage(game.TextureWater)
	if img == nil {
		return 0, fmt.Errorf("texture %q not loaded", game.TextureWater)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TileSpriteComponent{
		Image:   img,
		Width:   float64(cfg.Window.Width),
		Height:  float64(cfg.Window.Height),
		ScrollX: cfg.Background.ScrollX,
		ScrollY: cfg.Background.ScrollY,
		Alpha:   cfg.Background.Alpha,
	})
	ecs.AddComponent(em, id, &components.DepthComponent{Depth: DepthBackground})
	return id, nil
}
