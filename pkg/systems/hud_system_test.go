package systems

import (
	"testing"

	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/config"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/entities"
	"github.com/decker502/washedaway/pkg/game"
)

func TestTimerBarColor(t *testing.T) {
	cfg := config.DefaultGameConfig().TimerBar

	tests := []struct {
		ratio float64
		want  any
	}{
		{1, TimerBarHighColor},
		{0.61, TimerBarHighColor},
		{0.6, TimerBarMidColor},
		{0.31, TimerBarMidColor},
		{0.3, TimerBarLowColor},
		{0, TimerBarLowColor},
	}

	for _, tt := range tests {
		if got := TimerBarColor(tt.ratio, cfg); got != tt.want {
			t.Errorf("TimerBarColor(%.2f) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestHUDSystemSyncsRound(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	round := game.NewRound(cfg.Round)
	system := NewHUDSystem(em, round, cfg.TimerBar)

	dir := entities.NewDirectionText(em, cfg, round.Direction)
	timer := entities.NewTimerText(em, cfg, round.DisplaySeconds())

	bar := em.CreateEntity()
	ecs.AddComponent(em, bar, &components.TimerBarComponent{FullWidth: 640, Width: 640, Height: 18})

	round.Tick(12.2)
	round.Flip()
	system.Update(1.0 / 60)

	txt, _ := ecs.GetComponent[*components.TextComponent](em, dir)
	if txt.Text != "Direction: ANTICLOCKWISE" {
		t.Errorf("Unexpected direction text %q", txt.Text)
	}
	txt, _ = ecs.GetComponent[*components.TextComponent](em, timer)
	if txt.Text != "Time: 18" {
		t.Errorf("Unexpected timer text %q", txt.Text)
	}

	tb, _ := ecs.GetComponent[*components.TimerBarComponent](em, bar)
	want := 640 * (17.8 / 30)
	if diff := tb.Width - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected bar width %.3f, got %.3f", want, tb.Width)
	}
	if tb.Color != TimerBarMidColor {
		t.Errorf("Expected mid color at ratio %.2f, got %v", round.Ratio(), tb.Color)
	}
}
