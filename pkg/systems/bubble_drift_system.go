package systems

import (
	"math"

	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/ecs"
)

// BubbleDriftSystem 驱动泡泡漂移并在屏幕边缘反弹
type BubbleDriftSystem struct {
	entityManager *ecs.EntityManager
	width, height float64
	margin        float64
}

// NewBubbleDriftSystem 创建泡泡漂移系统
// margin 为距离屏幕边缘多近时反弹
func NewBubbleDriftSystem(em *ecs.EntityManager, width, height, margin float64) *BubbleDriftSystem {
	return &BubbleDriftSystem{
		entityManager: em,
		width:         width,
		height:        height,
		margin:        margin,
	}
}

// Update 把漂移速度写入速度组件，越界的轴反向
// 反向后的速度在下一帧生效
func (s *BubbleDriftSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.BubbleComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range entities {
		bubble, _ := ecs.GetComponent[*components.BubbleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		vel.VX = bubble.DriftX
		vel.VY = bubble.DriftY

		// 直接指向屏幕内侧，避免在边缘来回抖动
		if pos.X < s.margin {
			bubble.DriftX = math.Abs(bubble.DriftX)
		} else if pos.X > s.width-s.margin {
			bubble.DriftX = -math.Abs(bubble.DriftX)
		}
		if pos.Y < s.margin {
			bubble.DriftY = math.Abs(bubble.DriftY)
		} else if pos.Y > s.height-s.margin {
			bubble.DriftY = -math.Abs(bubble.DriftY)
		}
	}
}
