package components

import "image/color"

// TextAlign 文本锚点
type TextAlign int

const (
	// AlignTopLeft 位置为文本左上角
	AlignTopLeft TextAlign = iota
	// AlignCenter 位置为文本中心（setOrigin(0.5)）
	AlignCenter
)

// TextStyle 文本样式，描边和阴影都是可选的
type TextStyle struct {
	Size        float64
	Bold        bool
	Color       color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	// ShadowX/ShadowY 为 0 时不绘制阴影
	ShadowX     float64
	ShadowY     float64
	ShadowColor color.RGBA
	Align       TextAlign
	LineSpacing float64 // 行高倍数，0 表示 1.2
}

// TextComponent 屏幕文本
type TextComponent struct {
	Text  string
	Style TextStyle
	Alpha float64
}
