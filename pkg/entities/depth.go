// Package entities 提供关卡中各类实体的工厂函数
package entities

import "github.com/hajimehoshi/ebiten/v2"

// 绘制层级
// 同一层级内按创建顺序绘制。泡泡在袜子和 HUD 之上，结束文字和换向提示在最上层。
const (
	DepthBackground = 0
	DepthTimerGlow  = 1
	DepthHUD        = 1
	DepthPlayer     = 2
	DepthTarget     = 3
	DepthBubble     = 4
	DepthEndText    = 10
	DepthFlash      = 20
)

// ImageSource 提供已加载的纹理，通常是 game.ResourceManager
type ImageSource interface {
	GetImage(name string) *ebiten.Image
}
