package entities

import (
	"math/rand/v2"

	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/config"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/utils"
)

// BubbleColor 泡泡颜色 #99ddff
var BubbleColor = utils.HexColor(0x99ddff)

// NewBubble 创建一个漂浮泡泡
func NewBubble(em *ecs.EntityManager, x, y, radius, driftX, driftY float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: driftX, VY: driftY})
	ecs.AddComponent(em, id, &components.CircleComponent{Radius: radius})
	ecs.AddComponent(em, id, &components.ShapeComponent{Color: BubbleColor, Alpha: 0.95})
	ecs.AddComponent(em, id, &components.BubbleComponent{DriftX: driftX, DriftY: driftY})
	ecs.AddComponent(em, id, &components.BodyComponent{Enabled: true})
	ecs.AddComponent(em, id, &components.DepthComponent{Depth: DepthBubble})
	return id
}

// SpawnBubbles 按配置随机生成全部泡泡
func SpawnBubbles(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand) []ecs.EntityID {
	bc := cfg.Bubbles
	margin := int(bc.SpawnMargin)

	ids := make([]ecs.EntityID, 0, bc.Count)
	for i := 0; i < bc.Count; i++ {
		x := float64(utils.IntBetween(rng, margin, cfg.Window.Width-margin))
		y := float64(utils.IntBetween(rng, margin, cfg.Window.Height-margin))
		r := float64(utils.IntBetween(rng, bc.MinRadius, bc.MaxRadius))
		vx := utils.FloatBetween(rng, -bc.MaxDrift, bc.MaxDrift)
		vy := utils.FloatBetween(rng, -bc.MaxDrift, bc.MaxDrift)
		ids = append(ids, NewBubble(em, x, y, r, vx, vy))
	}
	return ids
}
