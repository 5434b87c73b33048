package components

import "image/color"

// TimerBarComponent 倒计时条
// 左侧锚定，宽度随剩余时间比例缩短
type TimerBarComponent struct {
	FullWidth float64
	Width     float64
	Height    float64
	Color     color.RGBA
}

// HUDTextKind 区分需要每帧刷新的 HUD 文本
type HUDTextKind int

const (
	// HUDDirection "Direction: CLOCKWISE"
	HUDDirection HUDTextKind = iota
	// HUDTimer "Time: N"
	HUDTimer
)

// HUDTextComponent 标记 HUD 文本实体
type HUDTextComponent struct {
	Kind HUDTextKind
}
