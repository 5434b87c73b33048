package systems

import (
	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/utils"
)

// TweenSystem 推进透明度与缩放补间
// 本局结束后仍然运行，让方向提示可以淡出
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update 推进所有补间，完成且设置了 DestroyOnComplete 的实体被标记删除
func (s *TweenSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.TweenComponent](s.entityManager)

	for _, id := range entities {
		tween, _ := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
		tween.Elapsed += deltaTime

		p := tween.Progress()
		eased := p
		if tween.Ease != nil {
			eased = tween.Ease(p)
		}

		alpha := utils.Lerp(tween.FromAlpha, tween.ToAlpha, eased)
		if txt, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
			txt.Alpha = alpha
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.Alpha = alpha
		}

		if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			v := utils.Lerp(tween.FromScale, tween.ToScale, eased)
			scale.ScaleX, scale.ScaleY = v, v
		}

		if p >= 1 && tween.DestroyOnComplete {
			s.entityManager.DestroyEntity(id)
		}
	}
}
