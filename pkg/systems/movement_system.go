package systems

import (
	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/utils"
)

// MovementSystem 按速度积分位置
//
// 击退速度叠加在普通速度上，持续时间结束后移除。
// 开启 CollideWorldBounds 的实体会被限制在屏幕内（按碰撞盒）。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	width, height float64
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, width, height float64) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		width:         width,
		height:        height,
	}
}

// Update 积分所有可移动实体
func (s *MovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.entityManager)

	for _, id := range entities {
		body, hasBody := ecs.GetComponent[*components.BodyComponent](s.entityManager, id)
		if hasBody && (!body.Enabled || body.Immovable) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		vx, vy := vel.VX, vel.VY
		if kb, ok := ecs.GetComponent[*components.KnockbackComponent](s.entityManager, id); ok {
			vx += kb.VX
			vy += kb.VY
			kb.Remaining -= deltaTime
			if kb.Remaining <= 0 {
				ecs.RemoveComponent[*components.KnockbackComponent](s.entityManager, id)
			}
		}

		pos.X += vx * deltaTime
		pos.Y += vy * deltaTime

		if hasBody && body.CollideWorldBounds {
			s.clampToWorld(id, pos)
		}
	}
}

func (s *MovementSystem) clampToWorld(id ecs.EntityID, pos *components.PositionComponent) {
	var halfW, halfH float64
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		halfW, halfH = col.Width/2, col.Height/2
	}

	pos.X = utils.Clamp(pos.X, halfW, s.width-halfW)
	pos.Y = utils.Clamp(pos.Y, halfH, s.height-halfH)
}
