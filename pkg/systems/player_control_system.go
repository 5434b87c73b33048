package systems

import (
	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerControlSystem 把方向键映射为玩家速度
// 只有滚筒顺时针旋转时才允许移动
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	input         utils.KeyInput
	round         *game.Round
	speed         float64
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(em *ecs.EntityManager, input utils.KeyInput, round *game.Round, speed float64) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager: em,
		input:         input,
		round:         round,
		speed:         speed,
	}
}

// Update 每帧先清零速度，再按 左、右、上、下 的顺序检查按键
// 同一轴上后检查的按键覆盖先检查的
func (s *PlayerControlSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.VelocityComponent](s.entityManager)

	for _, id := range entities {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		vel.VX, vel.VY = 0, 0

		if !s.round.CanMove() {
			continue
		}

		if s.input.IsPressed(ebiten.KeyArrowLeft) {
			vel.VX = -s.speed
		}
		if s.input.IsPressed(ebiten.KeyArrowRight) {
			vel.VX = s.speed
		}
		if s.input.IsPressed(ebiten.KeyArrowUp) {
			vel.VY = -s.speed
		}
		if s.input.IsPressed(ebiten.KeyArrowDown) {
			vel.VY = s.speed
		}
	}
}
