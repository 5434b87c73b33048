package systems

import (
	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/ecs"
)

// BackgroundScrollSystem 平铺背景每帧滚动固定像素
type BackgroundScrollSystem struct {
	entityManager *ecs.EntityManager
}

// NewBackgroundScrollSystem 创建背景滚动系统
func NewBackgroundScrollSystem(em *ecs.EntityManager) *BackgroundScrollSystem {
	return &BackgroundScrollSystem{entityManager: em}
}

// Update 滚动速度按帧计，不乘 deltaTime
func (s *BackgroundScrollSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TileSpriteComponent](s.entityManager) {
		tile, _ := ecs.GetComponent[*components.TileSpriteComponent](s.entityManager, id)
		tile.OffsetX += tile.ScrollX
		tile.OffsetY += tile.ScrollY
	}
}
