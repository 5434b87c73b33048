package game

import (
	"log"
	"math"

	"github.com/decker502/washedaway/pkg/config"
)

// Outcome 一局的结果
type Outcome int

const (
	// OutcomePending 尚未结束
	OutcomePending Outcome = iota
	// OutcomeWin 找到了另一只袜子
	OutcomeWin
	// OutcomeTimeUp 时间耗尽
	OutcomeTimeUp
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeTimeUp:
		return "time_up"
	default:
		return "pending"
	}
}

// Round 一局游戏的规则状态
//
// 只包含几个标量：剩余时间、当前惩罚、滚筒方向和结束标记。
// 结束后所有推进操作都是空操作。
type Round struct {
	cfg config.RoundConfig

	TimeLeft  float64
	TotalTime float64
	Penalty   float64
	Direction Direction
	// SinceFlip 距离上次方向切换经过的时间（秒）
	SinceFlip float64
	Elapsed   float64
	Hits      int
	Outcome   Outcome
}

// NewRound 创建并重置一局
func NewRound(cfg config.RoundConfig) *Round {
	r := &Round{cfg: cfg}
	r.Reset()
	return r
}

// Reset 恢复到开局状态
func (r *Round) Reset() {
	r.Direction = Clockwise
	r.SinceFlip = 0
	r.Elapsed = 0
	r.TotalTime = r.cfg.TotalTime
	r.TimeLeft = r.TotalTime
	r.Penalty = r.cfg.InitialPenalty
	r.Hits = 0
	r.Outcome = OutcomePending
}

// Ended 是否已经结束
func (r *Round) Ended() bool {
	return r.Outcome != OutcomePending
}

// Tick 推进倒计时和翻转计时
// 返回 true 表示本帧时间耗尽（调用方负责 End）
func (r *Round) Tick(dt float64) bool {
	if r.Ended() {
		return false
	}

	r.Elapsed += dt
	r.SinceFlip += dt
	r.TimeLeft = math.Max(0, r.TimeLeft-dt)

	return r.TimeLeft <= 0
}

// ShouldFlip 是否到了切换方向的时间
func (r *Round) ShouldFlip() bool {
	return !r.Ended() && r.SinceFlip > r.cfg.FlipInterval
}

// Flip 切换方向并重置翻转计时
func (r *Round) Flip() Direction {
	if r.Ended() {
		return r.Direction
	}
	r.SinceFlip = 0
	r.Direction = r.Direction.Toggle()
	log.Printf("[Round] Direction flipped to %s at %.2fs", r.Direction, r.Elapsed)
	return r.Direction
}

// CanMove 当前阶段是否允许玩家移动
func (r *Round) CanMove() bool {
	return !r.Ended() && r.Direction == Clockwise
}

// ApplyHit 处理一次泡泡碰撞：先扣除当前惩罚，再提高惩罚
// 返回 true 表示时间被扣光
func (r *Round) ApplyHit() bool {
	if r.Ended() {
		return false
	}

	r.Hits++
	r.TimeLeft = math.Max(0, r.TimeLeft-r.Penalty)
	log.Printf("[Round] Bubble hit #%d: -%.1fs, %.2fs left", r.Hits, r.Penalty, r.TimeLeft)
	r.Penalty = math.Min(r.Penalty+r.cfg.PenaltyStep, r.cfg.MaxPenalty)

	return r.TimeLeft <= 0
}

// End 结束本局，只有第一次调用生效
func (r *Round) End(win bool) bool {
	if r.Ended() {
		return false
	}
	if win {
		r.Outcome = OutcomeWin
	} else {
		r.Outcome = OutcomeTimeUp
	}
	log.Printf("[Round] Ended: %s (%.2fs left, %d hits)", r.Outcome, r.TimeLeft, r.Hits)
	return true
}

// Ratio 剩余时间比例 [0, 1]
func (r *Round) Ratio() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return r.TimeLeft / r.TotalTime
}

// DisplaySeconds HUD 上显示的整秒数（向上取整）
func (r *Round) DisplaySeconds() int {
	return int(math.Ceil(r.TimeLeft))
}
