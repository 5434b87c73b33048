package systems

import (
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FontProvider 按字号提供字体，通常是 game.ResourceManager
type FontProvider interface {
	Font(size float64, bold bool) *text.GoTextFace
}

// RenderSystem 按 DepthComponent 从低到高绘制所有可见实体
//
// 支持的可渲染组件：
//   - TileSpriteComponent: 平铺滚动背景
//   - SpriteComponent: 以中心为锚点的图像
//   - CircleComponent + ShapeComponent: 泡泡
//   - TimerBarComponent: 左端锚定的倒计时条
//   - TextComponent: 带描边和阴影的文本
//
// 深度相同的实体按创建顺序绘制。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         FontProvider
	warned        map[ecs.EntityID]bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, fonts FontProvider) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		fonts:         fonts,
		warned:        make(map[ecs.EntityID]bool),
	}
}

// DrawOrder 返回排序后的绘制顺序
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	entities := ecs.GetEntitiesWith1[*components.DepthComponent](s.entityManager)

	// GetEntitiesWith 已按 ID 排序，稳定排序保持同层的创建顺序
	slices.SortStableFunc(entities, func(a, b ecs.EntityID) int {
		da, _ := ecs.GetComponent[*components.DepthComponent](s.entityManager, a)
		db, _ := ecs.GetComponent[*components.DepthComponent](s.entityManager, b)
		return da.Depth - db.Depth
	})
	return entities
}

// Draw 绘制所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.DrawOrder() {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		s.drawEntity(screen, id)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	if tile, ok := ecs.GetComponent[*components.TileSpriteComponent](s.entityManager, id); ok {
		drawTileSprite(screen, tile)
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		s.warn(id)
		return
	}

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		s.drawSprite(screen, id, pos, sprite)
		return
	}
	if circle, ok := ecs.GetComponent[*components.CircleComponent](s.entityManager, id); ok {
		shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)
		drawCircle(screen, pos, circle, shape)
		return
	}
	if bar, ok := ecs.GetComponent[*components.TimerBarComponent](s.entityManager, id); ok {
		drawTimerBar(screen, pos, bar)
		return
	}
	if txt, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
		s.drawText(screen, id, pos, txt)
		return
	}

	s.warn(id)
}

// warn 每个实体只警告一次
func (s *RenderSystem) warn(id ecs.EntityID) {
	if s.warned[id] {
		return
	}
	s.warned[id] = true
	log.Printf("[RenderSystem] 警告: 实体 %d 没有可渲染组件", id)
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, id ecs.EntityID, pos *components.PositionComponent, sprite *components.SpriteComponent) {
	if sprite.Image == nil || sprite.Alpha <= 0 {
		return
	}

	bounds := sprite.Image.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	sx, sy := 1.0, 1.0
	if sprite.DisplayW > 0 && sprite.DisplayH > 0 {
		sx, sy = sprite.DisplayW/w, sprite.DisplayH/h
	} else if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		sx, sy = scale.ScaleX, scale.ScaleY
	}
	if sprite.FlipX {
		sx = -sx
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(pos.X, pos.Y)
	if sprite.Tinted {
		op.ColorScale.ScaleWithColor(sprite.Tint)
	}
	op.ColorScale.ScaleAlpha(float32(sprite.Alpha))
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(sprite.Image, op)
}

// drawTileSprite 用纹理平铺整个区域，偏移量取模后从负方向开始铺
func drawTileSprite(screen *ebiten.Image, tile *components.TileSpriteComponent) {
	if tile.Image == nil || tile.Alpha <= 0 {
		return
	}

	bounds := tile.Image.Bounds()
	tw, th := float64(bounds.Dx()), float64(bounds.Dy())
	startX := -math.Mod(tile.OffsetX, tw)
	startY := -math.Mod(tile.OffsetY, th)
	if startX > 0 {
		startX -= tw
	}
	if startY > 0 {
		startY -= th
	}

	for y := startY; y < tile.Height; y += th {
		for x := startX; x < tile.Width; x += tw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			op.ColorScale.ScaleAlpha(float32(tile.Alpha))
			screen.DrawImage(tile.Image, op)
		}
	}
}

func drawCircle(screen *ebiten.Image, pos *components.PositionComponent, circle *components.CircleComponent, shape *components.ShapeComponent) {
	clr := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	alpha := 1.0
	if shape != nil {
		clr, alpha = shape.Color, shape.Alpha
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(circle.Radius), utils.WithAlpha(clr, alpha), true)
}

// drawTimerBar 位置为左端、竖直中心
func drawTimerBar(screen *ebiten.Image, pos *components.PositionComponent, bar *components.TimerBarComponent) {
	if bar.Width <= 0 {
		return
	}
	vector.DrawFilledRect(screen,
		float32(pos.X), float32(pos.Y-bar.Height/2),
		float32(bar.Width), float32(bar.Height),
		bar.Color, false)
}

func (s *RenderSystem) drawText(screen *ebiten.Image, id ecs.EntityID, pos *components.PositionComponent, txt *components.TextComponent) {
	if s.fonts == nil {
		return
	}
	face := s.fonts.Font(txt.Style.Size, txt.Style.Bold)
	if face == nil {
		return
	}

	scale := 1.0
	if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		scale = sc.ScaleX
	}

	utils.DrawStyledText(screen, txt.Text, face, pos.X, pos.Y, TextDrawStyle(txt.Style, txt.Alpha, scale))
}

// TextDrawStyle 把组件样式转换为绘制参数
func TextDrawStyle(style components.TextStyle, alpha, scale float64) utils.TextDrawStyle {
	lineSpacing := 0.0
	if style.LineSpacing > 0 {
		lineSpacing = style.Size * style.LineSpacing
	}
	return utils.TextDrawStyle{
		Color:       style.Color,
		Stroke:      style.Stroke,
		StrokeWidth: style.StrokeWidth,
		ShadowX:     style.ShadowX,
		ShadowY:     style.ShadowY,
		ShadowColor: style.ShadowColor,
		Centered:    style.Align == components.AlignCenter,
		LineSpacing: lineSpacing,
		Alpha:       alpha,
		Scale:       scale,
	}
}
