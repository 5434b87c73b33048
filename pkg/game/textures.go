package game

import (
	"image/color"
	"math/rand/v2"

	"github.com/decker502/washedaway/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 纹理尺寸
const (
	WaterTextureSize = 256
	BarTextureWidth  = 260
	BarTextureHeight = 40
	SockTextureW     = 160
	SockTextureH     = 200
)

// GenerateWaterTexture 生成可平铺的水面纹理
// 深蓝底色，上面叠加 12 条半透明竖向波纹和 6 条更宽更淡的涟漪
func GenerateWaterTexture(rng *rand.Rand) *ebiten.Image {
	img := ebiten.NewImage(WaterTextureSize, WaterTextureSize)
	img.Fill(utils.HexColor(0x4da3e6))

	const size = float32(WaterTextureSize)
	wave := utils.WithAlpha(utils.HexColor(0x76bef2), 0.22)
	for i := 0; i < 12; i++ {
		x := float32(rng.Float64() * WaterTextureSize)
		w := float32(utils.IntBetween(rng, 10, 28))
		vector.DrawFilledRect(img, x, 0, w, size, wave, false)
	}

	ripple := utils.WithAlpha(utils.HexColor(0x5ab0ec), 0.12)
	for i := 0; i < 6; i++ {
		x := float32(rng.Float64() * WaterTextureSize)
		w := float32(utils.IntBetween(rng, 40, 80))
		vector.DrawFilledRect(img, x, 0, w, size, ripple, false)
	}

	return img
}

// GenerateBarTexture 生成计时条底板：白色边框，蓝色内芯
func GenerateBarTexture() *ebiten.Image {
	img := ebiten.NewImage(BarTextureWidth, BarTextureHeight)
	img.Fill(color.White)
	vector.DrawFilledRect(img, 4, 4, BarTextureWidth-8, BarTextureHeight-8, utils.HexColor(0x4fa0d8), false)
	return img
}

// GenerateSockTexture 绘制一只袜子（脚尖朝右）
func GenerateSockTexture() *ebiten.Image {
	img := ebiten.NewImage(SockTextureW, SockTextureH)

	body := utils.HexColor(0xfafafa)
	stripe := utils.HexColor(0xe63946)
	outline := utils.HexColor(0x1d3557)

	// 轮廓：先画放大一圈的深色形状
	drawSockShape(img, outline, 5)
	drawSockShape(img, body, 0)

	// 袜口条纹
	vector.DrawFilledRect(img, 40, 18, 60, 12, stripe, true)
	vector.DrawFilledRect(img, 40, 42, 60, 12, stripe, true)
	// 脚跟和脚尖补丁
	vector.DrawFilledCircle(img, 62, 150, 16, stripe, true)
	vector.DrawFilledCircle(img, 127, 150, 14, stripe, true)

	return img
}

func drawSockShape(img *ebiten.Image, clr color.RGBA, grow float32) {
	// 袜筒
	vector.DrawFilledRect(img, 40-grow, 10-grow, 60+2*grow, 130+2*grow, clr, true)
	// 脚掌
	vector.DrawFilledRect(img, 40-grow, 120-grow, 90+2*grow, 54+2*grow, clr, true)
	// 脚跟
	vector.DrawFilledCircle(img, 67, 147, 27+grow, clr, true)
	// 脚尖
	vector.DrawFilledCircle(img, 127, 147, 27+grow, clr, true)
}
