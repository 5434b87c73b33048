package entities

import (
	"math"
	"testing"

	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/config"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockImageSource 模拟纹理来源
type mockImageSource map[string]*ebiten.Image

func (m mockImageSource) GetImage(name string) *ebiten.Image {
	return m[name]
}

// createMockImageSource 按生成纹理的尺寸创建空图像
func createMockImageSource() mockImageSource {
	return mockImageSource{
		game.TextureSock:  ebiten.NewImage(160, 200),
		game.TextureWater: ebiten.NewImage(256, 256),
		game.TextureBar:   ebiten.NewImage(260, 40),
	}
}

func TestNewPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewPlayer(em, createMockImageSource(), cfg)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("Player should have PositionComponent")
	}
	if pos.X != 640 || pos.Y != 360 {
		t.Errorf("Player should start at screen center, got (%.1f, %.1f)", pos.X, pos.Y)
	}

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if math.Abs(col.Width-56) > 1e-9 || math.Abs(col.Height-70) > 1e-9 {
		t.Errorf("Expected collision 56x70, got %.2fx%.2f", col.Width, col.Height)
	}

	body, _ := ecs.GetComponent[*components.BodyComponent](em, id)
	if !body.Enabled || !body.CollideWorldBounds || body.Immovable {
		t.Errorf("Unexpected player body: %+v", *body)
	}

	if !ecs.HasComponent[*components.PlayerComponent](em, id) {
		t.Error("Player should be tagged with PlayerComponent")
	}
}

func TestNewPlayerMissingTexture(t *testing.T) {
	em := ecs.NewEntityManager()

	if _, err := NewPlayer(em, mockImageSource{}, config.DefaultGameConfig()); err == nil {
		t.Error("Expected error when sock texture is missing")
	}
	if em.EntityCount() != 0 {
		t.Errorf("No entity should be created on failure, got %d", em.EntityCount())
	}
}

func TestPlaceTargetKeepsDistance(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := utils.NewRand(42)
	cx, cy := float64(cfg.Window.Width)/2, float64(cfg.Window.Height)/2

	for i := 0; i < 500; i++ {
		x, y := PlaceTarget(rng, cfg)

		if x < cfg.Target.Margin || x > float64(cfg.Window.Width)-cfg.Target.Margin {
			t.Fatalf("Target x %.1f out of range", x)
		}
		if y < cfg.Target.Margin || y > float64(cfg.Window.Height)-cfg.Target.Margin {
			t.Fatalf("Target y %.1f out of range", y)
		}
		if d := math.Hypot(x-cx, y-cy); d < cfg.MinStartDistance() {
			t.Fatalf("Target too close to center: %.1f < %.1f", d, cfg.MinStartDistance())
		}
	}
}

func TestPlaceTargetDeterministic(t *testing.T) {
	cfg := config.DefaultGameConfig()

	x1, y1 := PlaceTarget(utils.NewRand(7), cfg)
	x2, y2 := PlaceTarget(utils.NewRand(7), cfg)
	if x1 != x2 || y1 != y2 {
		t.Errorf("Same seed should place target at same spot: (%.0f,%.0f) vs (%.0f,%.0f)", x1, y1, x2, y2)
	}
}

func TestNewTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewTarget(em, createMockImageSource(), cfg, utils.NewRand(1))
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !sprite.FlipX {
		t.Error("Target sock should be mirrored")
	}

	body, _ := ecs.GetComponent[*components.BodyComponent](em, id)
	if !body.Immovable {
		t.Error("Target should be immovable")
	}

	depth, _ := ecs.GetComponent[*components.DepthComponent](em, id)
	if depth.Depth != DepthTarget {
		t.Errorf("Expected depth %d, got %d", DepthTarget, depth.Depth)
	}
}
