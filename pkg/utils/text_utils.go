package utils

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// strokeSamples 描边采样方向数
const strokeSamples = 16

// WrapText 将文本按指定宽度自动换行
//
// 显式换行符会被保留；每个段落按空格断词，单词本身超宽时独占一行。
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if font == nil || maxWidth <= 0 {
		return strings.Split(textStr, "\n")
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if MeasureTextWidth(candidate, font) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}

	return lines
}

// MeasureTextWidth 测量单行文本宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// TextDrawStyle 描边/阴影文本的绘制参数
type TextDrawStyle struct {
	Color       color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	ShadowX     float64
	ShadowY     float64
	ShadowColor color.RGBA
	Centered    bool
	// LineSpacing 行距（像素），0 表示字号的 1.2 倍
	LineSpacing float64
	Alpha       float64
	Scale       float64
}

// DrawStyledText 绘制带描边和阴影的文本
//
// Ebitengine 的 text/v2 不支持描边，这里把描边色文本沿一圈偏移重复绘制来模拟。
// 绘制顺序：阴影 -> 描边 -> 填充。
func DrawStyledText(dst *ebiten.Image, str string, face *text.GoTextFace, x, y float64, style TextDrawStyle) {
	if face == nil || str == "" || style.Alpha <= 0 {
		return
	}

	scale := style.Scale
	if scale == 0 {
		scale = 1
	}
	lineSpacing := style.LineSpacing
	if lineSpacing == 0 {
		lineSpacing = face.Size * 1.2
	}

	draw := func(dx, dy float64, clr color.RGBA) {
		op := &text.DrawOptions{}
		op.LineSpacing = lineSpacing
		if style.Centered {
			op.PrimaryAlign = text.AlignCenter
			op.SecondaryAlign = text.AlignCenter
		}
		op.GeoM.Translate(dx, dy)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(float32(style.Alpha))
		text.Draw(dst, str, face, op)
	}

	if style.ShadowX != 0 || style.ShadowY != 0 {
		if style.StrokeWidth > 0 {
			drawRing(style.StrokeWidth/2, func(dx, dy float64) {
				draw(style.ShadowX+dx, style.ShadowY+dy, style.ShadowColor)
			})
		}
		draw(style.ShadowX, style.ShadowY, style.ShadowColor)
	}

	if style.StrokeWidth > 0 {
		drawRing(style.StrokeWidth/2, func(dx, dy float64) {
			draw(dx, dy, style.Stroke)
		})
	}

	draw(0, 0, style.Color)
}

// drawRing 在半径 r 的圆周上均匀采样，粗描边额外补一圈内环避免空洞
func drawRing(r float64, fn func(dx, dy float64)) {
	radii := []float64{r}
	if r > 3 {
		radii = append(radii, r/2)
	}
	for _, radius := range radii {
		for i := 0; i < strokeSamples; i++ {
			angle := 2 * math.Pi * float64(i) / strokeSamples
			fn(radius*math.Cos(angle), radius*math.Sin(angle))
		}
	}
}

// HexColor 将 0xRRGGBB 转换为不透明颜色
func HexColor(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// WithAlpha 按透明度缩放颜色（预乘 alpha），供 vector 绘制使用
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
