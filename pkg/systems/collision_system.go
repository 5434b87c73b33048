package systems

import (
	"math"

	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/utils"
)

// CollisionConfig 碰撞响应参数
type CollisionConfig struct {
	// PushImpulse 撞到泡泡时每个轴的击退速度（像素/秒）
	PushImpulse float64
	// KnockbackDuration 击退持续时间（秒）
	KnockbackDuration float64
	// WinDistanceFactor 中心距离小于 (玩家宽 + 目标宽) * factor 时判定找到
	WinDistanceFactor float64
}

// CollisionSystem 检测玩家与泡泡、目标袜子的碰撞
//
// 先检测目标：接近目标时回调 OnTargetReached。
// 再检测泡泡：击退玩家、扣除时间、销毁泡泡，然后回调 OnBubbleHit。
// 同一帧既找到目标又撞到泡泡时按胜利处理，不再扣时间。
// 本局结束后（或玩家刚体被禁用）不再检测。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	round         *game.Round
	config        CollisionConfig

	// OnBubbleHit 在扣除时间后调用，expired 表示时间已耗尽
	OnBubbleHit func(bubble ecs.EntityID, expired bool)
	// OnTargetReached 找到另一只袜子
	OnTargetReached func()
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, round *game.Round, config CollisionConfig) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		round:         round,
		config:        config,
	}
}

// Update 检测本帧碰撞
func (s *CollisionSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.entityManager)

	for _, player := range players {
		if s.round.Ended() || !bodyEnabled(s.entityManager, player) {
			return
		}
		s.checkTarget(player)
		if s.round.Ended() {
			return
		}
		s.checkBubbles(player)
	}
}

func (s *CollisionSystem) checkBubbles(player ecs.EntityID) {
	ppos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, player)
	pcol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, player)

	bubbles := ecs.GetEntitiesWith3[
		*components.BubbleComponent,
		*components.PositionComponent,
		*components.CircleComponent,
	](s.entityManager)

	for _, bubble := range bubbles {
		if s.entityManager.IsMarkedForDestroy(bubble) || !bodyEnabled(s.entityManager, bubble) {
			continue
		}

		bpos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bubble)
		circle, _ := ecs.GetComponent[*components.CircleComponent](s.entityManager, bubble)
		if !CircleIntersectsRect(bpos.X, bpos.Y, circle.Radius, ppos.X, ppos.Y, pcol.Width, pcol.Height) {
			continue
		}

		s.push(player, ppos.X-bpos.X, ppos.Y-bpos.Y)
		expired := s.round.ApplyHit()
		s.entityManager.DestroyEntity(bubble)

		if s.OnBubbleHit != nil {
			s.OnBubbleHit(bubble, expired)
		}
		if s.round.Ended() {
			return
		}
	}
}

// push 叠加击退速度，方向为泡泡指向玩家
func (s *CollisionSystem) push(player ecs.EntityID, dx, dy float64) {
	kb, ok := ecs.GetComponent[*components.KnockbackComponent](s.entityManager, player)
	if !ok {
		kb = &components.KnockbackComponent{}
		ecs.AddComponent(s.entityManager, player, kb)
	}
	kb.VX += utils.Sign(dx) * s.config.PushImpulse
	kb.VY += utils.Sign(dy) * s.config.PushImpulse
	kb.Remaining = s.config.KnockbackDuration
}

func (s *CollisionSystem) checkTarget(player ecs.EntityID) {
	ppos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, player)
	pcol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, player)

	targets := ecs.GetEntitiesWith3[
		*components.TargetComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.entityManager)

	for _, target := range targets {
		if !bodyEnabled(s.entityManager, target) {
			continue
		}
		tpos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, target)
		tcol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, target)

		if !RectsOverlap(ppos.X, ppos.Y, pcol.Width, pcol.Height, tpos.X, tpos.Y, tcol.Width, tcol.Height) {
			continue
		}

		minDistance := (pcol.Width + tcol.Width) * s.config.WinDistanceFactor
		if math.Hypot(ppos.X-tpos.X, ppos.Y-tpos.Y) < minDistance {
			if s.OnTargetReached != nil {
				s.OnTargetReached()
			}
			return
		}
	}
}

// bodyEnabled 没有刚体组件的实体视为启用
func bodyEnabled(em *ecs.EntityManager, id ecs.EntityID) bool {
	body, ok := ecs.GetComponent[*components.BodyComponent](em, id)
	return !ok || body.Enabled
}

// CircleIntersectsRect 圆与中心锚定的矩形是否相交
func CircleIntersectsRect(cx, cy, r, rx, ry, rw, rh float64) bool {
	nearestX := utils.Clamp(cx, rx-rw/2, rx+rw/2)
	nearestY := utils.Clamp(cy, ry-rh/2, ry+rh/2)
	dx, dy := cx-nearestX, cy-nearestY
	return dx*dx+dy*dy < r*r
}

// RectsOverlap 两个中心锚定的矩形是否重叠
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return math.Abs(ax-bx) < (aw+bw)/2 && math.Abs(ay-by) < (ah+bh)/2
}
