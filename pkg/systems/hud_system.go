package systems

import (
	"image/color"

	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/config"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/entities"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/utils"
)

// 倒计时条颜色
var (
	TimerBarHighColor = utils.HexColor(0x00ffd0)
	TimerBarMidColor  = utils.HexColor(0xffd166)
	TimerBarLowColor  = utils.HexColor(0xff6b6b)
)

// TimerBarColor 按剩余时间比例选择颜色
func TimerBarColor(ratio float64, cfg config.TimerBarConfig) color.RGBA {
	switch {
	case ratio > cfg.HighRatio:
		return TimerBarHighColor
	case ratio > cfg.LowRatio:
		return TimerBarMidColor
	default:
		return TimerBarLowColor
	}
}

// HUDSystem 把 Round 的状态同步到 HUD 文本和倒计时条
type HUDSystem struct {
	entityManager *ecs.EntityManager
	round         *game.Round
	config        config.TimerBarConfig
}

// NewHUDSystem 创建 HUD 系统
func NewHUDSystem(em *ecs.EntityManager, round *game.Round, cfg config.TimerBarConfig) *HUDSystem {
	return &HUDSystem{
		entityManager: em,
		round:         round,
		config:        cfg,
	}
}

// Update 刷新文本、计时条宽度和颜色
func (s *HUDSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.HUDTextComponent, *components.TextComponent](s.entityManager) {
		hud, _ := ecs.GetComponent[*components.HUDTextComponent](s.entityManager, id)
		txt, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, id)

		switch hud.Kind {
		case components.HUDDirection:
			txt.Text = entities.DirectionLabel(s.round.Direction)
		case components.HUDTimer:
			txt.Text = entities.TimerLabel(s.round.DisplaySeconds())
		}
	}

	ratio := s.round.Ratio()
	for _, id := range ecs.GetEntitiesWith1[*components.TimerBarComponent](s.entityManager) {
		bar, _ := ecs.GetComponent[*components.TimerBarComponent](s.entityManager, id)
		bar.Width = bar.FullWidth * ratio
		bar.Color = TimerBarColor(ratio, s.config)
	}
}
