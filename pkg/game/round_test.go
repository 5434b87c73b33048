package game

import (
	"testing"

	"github.com/decker502/washedaway/pkg/config"
)

func newTestRound() *Round {
	return NewRound(config.DefaultGameConfig().Round)
}

func TestRoundReset(t *testing.T) {
	r := newTestRound()

	if r.Direction != Clockwise {
		t.Errorf("Expected CLOCKWISE at start, got %s", r.Direction)
	}
	if r.TimeLeft != 30 || r.TotalTime != 30 {
		t.Errorf("Expected 30s on the clock, got %.2f/%.2f", r.TimeLeft, r.TotalTime)
	}
	if r.Penalty != 2 {
		t.Errorf("Expected initial penalty 2, got %.2f", r.Penalty)
	}
	if r.Ended() {
		t.Error("Fresh round should not be ended")
	}

	r.ApplyHit()
	r.Flip()
	r.End(true)
	r.Reset()

	if r.Ended() || r.Penalty != 2 || r.TimeLeft != 30 || r.Direction != Clockwise || r.Hits != 0 {
		t.Errorf("Reset did not restore start state: %+v", r)
	}
}

func TestRoundTickClampsAtZero(t *testing.T) {
	r := newTestRound()

	if r.Tick(29.5) {
		t.Fatal("Should not expire with time left")
	}
	if r.DisplaySeconds() != 1 {
		t.Errorf("Expected ceil(0.5) = 1, got %d", r.DisplaySeconds())
	}

	if !r.Tick(1) {
		t.Fatal("Should report expiry")
	}
	if r.TimeLeft != 0 {
		t.Errorf("TimeLeft should clamp at 0, got %.2f", r.TimeLeft)
	}
	if r.Ratio() != 0 {
		t.Errorf("Ratio should be 0, got %.2f", r.Ratio())
	}
}

func TestRoundPenaltyEscalation(t *testing.T) {
	r := newTestRound()

	// 惩罚序列: 2, 2.5, 3, ... 上限 6
	want := []float64{2, 2.5, 3, 3.5, 4, 4.5, 5, 5.5, 6, 6, 6}
	for i, p := range want {
		if r.Penalty != p {
			t.Fatalf("Hit %d: expected penalty %.1f, got %.1f", i, p, r.Penalty)
		}
		r.TimeLeft = 100 // 避免提前结束
		r.ApplyHit()
	}
}

func TestRoundHitDeductsBeforeEscalating(t *testing.T) {
	r := newTestRound()

	r.ApplyHit()
	if r.TimeLeft != 28 {
		t.Errorf("First hit should cost 2s, got %.2f left", r.TimeLeft)
	}
	r.ApplyHit()
	if r.TimeLeft != 25.5 {
		t.Errorf("Second hit should cost 2.5s, got %.2f left", r.TimeLeft)
	}
}

func TestRoundHitExpires(t *testing.T) {
	r := newTestRound()
	r.TimeLeft = 1.5

	if !r.ApplyHit() {
		t.Fatal("Hit larger than time left should expire the round")
	}
	if r.TimeLeft != 0 {
		t.Errorf("TimeLeft should clamp at 0, got %.2f", r.TimeLeft)
	}
}

func TestRoundFlipSchedule(t *testing.T) {
	r := newTestRound()

	r.Tick(5)
	if r.ShouldFlip() {
		t.Error("Flip requires strictly more than the interval")
	}

	r.Tick(0.016)
	if !r.ShouldFlip() {
		t.Fatal("Should flip after the interval")
	}
	if got := r.Flip(); got != Anticlockwise {
		t.Errorf("Expected ANTICLOCKWISE after flip, got %s", got)
	}
	if r.CanMove() {
		t.Error("Player must be frozen while ANTICLOCKWISE")
	}
	if r.ShouldFlip() {
		t.Error("Flip clock should reset")
	}

	r.Tick(5.1)
	r.Flip()
	if !r.CanMove() {
		t.Error("Player should be able to move again after flipping back")
	}
}

func TestRoundEndIsFinal(t *testing.T) {
	r := newTestRound()

	if !r.End(true) {
		t.Fatal("First End should take effect")
	}
	if r.End(false) {
		t.Error("Second End must be ignored")
	}
	if r.Outcome != OutcomeWin {
		t.Errorf("Expected win outcome, got %s", r.Outcome)
	}

	// 结束后所有推进都是空操作
	left := r.TimeLeft
	if r.Tick(10) || r.ApplyHit() {
		t.Error("Ended round must not report expiry")
	}
	if r.TimeLeft != left {
		t.Errorf("TimeLeft changed after end: %.2f -> %.2f", left, r.TimeLeft)
	}
	dir := r.Direction
	r.SinceFlip = 100
	if r.ShouldFlip() || r.Flip() != dir {
		t.Error("Direction must not flip after end")
	}
	if r.CanMove() {
		t.Error("Player must not move after end")
	}
}

func TestDirection(t *testing.T) {
	if Clockwise.String() != "CLOCKWISE" || Anticlockwise.String() != "ANTICLOCKWISE" {
		t.Error("Unexpected direction names")
	}
	if Clockwise.Toggle() != Anticlockwise || Anticlockwise.Toggle() != Clockwise {
		t.Error("Toggle should alternate")
	}
}
