package systems

import (
	"testing"

	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/ecs"
)

func newTestBubble(em *ecs.EntityManager, x, y, driftX, driftY float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CircleComponent{Radius: 10})
	ecs.AddComponent(em, id, &components.BubbleComponent{DriftX: driftX, DriftY: driftY})
	ecs.AddComponent(em, id, &components.BodyComponent{Enabled: true})
	return id
}

func TestBubbleDriftAppliesVelocity(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewBubbleDriftSystem(em, 1280, 720, 10)

	id := newTestBubble(em, 500, 300, 20, -30)
	system.Update(1.0 / 60)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.VX != 20 || vel.VY != -30 {
		t.Errorf("Expected velocity (20, -30), got (%.1f, %.1f)", vel.VX, vel.VY)
	}
}

func TestBubbleDriftReflectsAtEdges(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		driftX       float64
		driftY       float64
		wantX, wantY float64
	}{
		{"left edge", 5, 300, -20, 10, 20, 10},
		{"right edge", 1275, 300, 20, 10, -20, 10},
		{"top edge", 500, 2, 10, -15, 10, 15},
		{"bottom edge", 500, 715, 10, 15, 10, -15},
		{"already heading inward", 5, 300, 20, 10, 20, 10},
		{"inside", 500, 300, -20, 10, -20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewBubbleDriftSystem(em, 1280, 720, 10)

			id := newTestBubble(em, tt.x, tt.y, tt.driftX, tt.driftY)
			system.Update(1.0 / 60)

			bubble, _ := ecs.GetComponent[*components.BubbleComponent](em, id)
			if bubble.DriftX != tt.wantX || bubble.DriftY != tt.wantY {
				t.Errorf("Expected drift (%.0f, %.0f), got (%.0f, %.0f)", tt.wantX, tt.wantY, bubble.DriftX, bubble.DriftY)
			}

			// 反向在下一帧才生效
			vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
			if vel.VX != tt.driftX || vel.VY != tt.driftY {
				t.Errorf("Velocity should use pre-reflection drift, got (%.0f, %.0f)", vel.VX, vel.VY)
			}
		})
	}
}
