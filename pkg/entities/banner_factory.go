package entities

import (
	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/config"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/utils"
)

// 横幅文本
const (
	FlashClockwiseText     = "► CLOCKWISE ►\nLet's roll!"
	FlashAnticlockwiseText = "◄ ANTICLOCKWISE ◄\nFreeze it!"
	WinText                = "YOU FOUND YOUR PAIR!"
	TimeUpText             = "TIME'S UP!"
	RestartText            = "PRESS SPACE TO RESTART"
)

// 横幅颜色
var (
	FlashClockwiseColor     = utils.HexColor(0x0dedb9)
	FlashAnticlockwiseColor = utils.HexColor(0xffd166)
	WinColor                = utils.HexColor(0x7300ff)
	WinStrokeColor          = utils.HexColor(0xd4ff00)
	TimeUpColor             = utils.HexColor(0xff3333)
	TimeUpStrokeColor       = utils.HexColor(0x8c0000)
	RestartColor            = utils.HexColor(0xffffff)
	RestartStrokeColor      = utils.HexColor(0x3a8fd8)
)

// FlashContent 返回方向对应的横幅文本与颜色
func FlashContent(d game.Direction) (string, components.TextStyle) {
	style := components.TextStyle{Bold: true, Align: components.AlignCenter}
	if d == game.Clockwise {
		style.Color = FlashClockwiseColor
		return FlashClockwiseText, style
	}
	style.Color = FlashAnticlockwiseColor
	return FlashAnticlockwiseText, style
}

// NewDirectionFlash 屏幕中央的方向切换横幅
// 透明度 1→0、缩放 1→EndScale，三次缓出，结束后自动销毁
func NewDirectionFlash(em *ecs.EntityManager, cfg *config.GameConfig, d game.Direction) ecs.EntityID {
	label, style := FlashContent(d)
	style.Size = FontSize(cfg.Window.Height, 0.075)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: float64(cfg.Window.Width) / 2,
		Y: float64(cfg.Window.Height) / 2,
	})
	ecs.AddComponent(em, id, &components.TextComponent{Text: label, Style: style, Alpha: 1})
	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	ecs.AddComponent(em, id, &components.TweenComponent{
		Duration:          cfg.Flash.Duration,
		FromAlpha:         1,
		ToAlpha:           0,
		FromScale:         1,
		ToScale:           cfg.Flash.EndScale,
		Ease:              utils.EaseOutCubic,
		DestroyOnComplete: true,
	})
	ecs.AddComponent(em, id, &components.DepthComponent{Depth: DepthFlash})
	return id
}

func newCenteredText(em *ecs.EntityManager, x, y float64, label string, style components.TextStyle) ecs.EntityID {
	style.Align = components.AlignCenter
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.TextComponent{Text: label, Style: style, Alpha: 1})
	ecs.AddComponent(em, id, &components.DepthComponent{Depth: DepthEndText})
	return id
}

// NewEndBanners 结束时的结果横幅和重新开始提示
func NewEndBanners(em *ecs.EntityManager, cfg *config.GameConfig, win bool) []ecs.EntityID {
	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)

	label, fill, stroke := TimeUpText, TimeUpColor, TimeUpStrokeColor
	if win {
		label, fill, stroke = WinText, WinColor, WinStrokeColor
	}

	main := newCenteredText(em, w/2, h/2-40, label, components.TextStyle{
		Size:        FontSize(cfg.Window.Height, 0.12),
		Bold:        true,
		Color:       fill,
		Stroke:      stroke,
		StrokeWidth: 16,
		ShadowX:     6,
		ShadowY:     6,
		ShadowColor: black,
	})

	restart := newCenteredText(em, w/2, h/2+60, RestartText, components.TextStyle{
		Size:        FontSize(cfg.Window.Height, 0.05),
		Bold:        true,
		Color:       RestartColor,
		Stroke:      RestartStrokeColor,
		StrokeWidth: 8,
		ShadowX:     4,
		ShadowY:     4,
		ShadowColor: black,
	})

	return []ecs.EntityID{main, restart}
}
