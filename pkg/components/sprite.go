package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 实体的图像
// 以图像中心为锚点；DisplayW/DisplayH 非 0 时按该尺寸拉伸（忽略 ScaleComponent）
type SpriteComponent struct {
	Image    *ebiten.Image
	FlipX    bool
	Alpha    float64
	DisplayW float64
	DisplayH float64
	Tinted   bool
	Tint     color.RGBA
}

// ShapeComponent 纯色矢量图形（泡泡、计时条）
type ShapeComponent struct {
	Color color.RGBA
	Alpha float64
}

// TileSpriteComponent 平铺背景，偏移量每帧滚动
type TileSpriteComponent struct {
	Image            *ebiten.Image
	Width, Height    float64
	OffsetX, OffsetY float64
	ScrollX, ScrollY float64 // 每帧滚动像素
	Alpha            float64
}
