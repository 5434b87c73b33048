package entities

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/config"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/utils"
)

// maxTargetAttempts 拒绝采样的上限，配置已保证可达，这里只防止死循环
const maxTargetAttempts = 10000

func newSock(em *ecs.EntityManager, images ImageSource, x, y, scale float64, flip bool) (ecs.EntityID, error) {
	img := images.GetImage(game.TextureSock)
	if img == nil {
		return 0, fmt.Errorf("texture %q not loaded", game.TextureSock)
	}

	w := float64(img.Bounds().Dx()) * scale
	h := float64(img.Bounds().Dy()) * scale

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: img, FlipX: flip, Alpha: 1})
	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: scale, ScaleY: scale})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: w, Height: h})
	return id, nil
}

// NewPlayer 在屏幕中心创建玩家袜子，限制在屏幕内移动
func NewPlayer(em *ecs.EntityManager, images ImageSource, cfg *config.GameConfig) (ecs.EntityID, error) {
	x := float64(cfg.Window.Width) / 2
	y := float64(cfg.Window.Height) / 2

	id, err := newSock(em, images, x, y, cfg.Player.Scale, false)
	if err != nil {
		return 0, fmt.Errorf("failed to create player: %w", err)
	}
	ecs.AddComponent(em, id, &components.BodyComponent{Enabled: true, CollideWorldBounds: true})
	ecs.AddComponent(em, id, &components.PlayerComponent{})
	ecs.AddComponent(em, id, &components.DepthComponent{Depth: DepthPlayer})
	return id, nil
}

// PlaceTarget 随机选择目标位置，保证与屏幕中心的距离不小于 MinStartDistance
func PlaceTarget(rng *rand.Rand, cfg *config.GameConfig) (x, y float64) {
	w, h := cfg.Window.Width, cfg.Window.Height
	margin := int(cfg.Target.Margin)
	cx, cy := float64(w)/2, float64(h)/2
	minDistance := cfg.MinStartDistance()

	for i := 0; i < maxTargetAttempts; i++ {
		x = float64(utils.IntBetween(rng, margin, w-margin))
		y = float64(utils.IntBetween(rng, margin, h-margin))
		if math.Hypot(x-cx, y-cy) >= minDistance {
			return x, y
		}
	}

	// 退化情况：取离中心最远的角
	return float64(margin), float64(margin)
}

// NewTarget 创建镜像的目标袜子，不可移动
func NewTarget(em *ecs.EntityManager, images ImageSource, cfg *config.GameConfig, rng *rand.Rand) (ecs.EntityID, error) {
	x, y := PlaceTarget(rng, cfg)

	id, err := newSock(em, images, x, y, cfg.Player.Scale, true)
	if err != nil {
		return 0, fmt.Errorf("failed to create target: %w", err)
	}
	ecs.AddComponent(em, id, &components.BodyComponent{Enabled: true, Immovable: true})
	ecs.AddComponent(em, id, &components.TargetComponent{})
	ecs.AddComponent(em, id, &components.DepthComponent{Depth: DepthTarget})
	return id, nil
}
