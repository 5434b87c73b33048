package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// PlayerStats 跨局统计
type PlayerStats struct {
	RoundsPlayed int `yaml:"roundsPlayed"`
	Wins         int `yaml:"wins"`
	Losses       int `yaml:"losses"`
	// BestTimeLeft 获胜时剩余时间的最大值（秒），0 表示还没有赢过
	BestTimeLeft float64 `yaml:"bestTimeLeft"`
}

// StatsManager 记录每局结果
type StatsManager struct {
	store yamlObject
	stats PlayerStats
}

// NewStatsManager 创建统计管理器并加载已有记录，gdataManager 可为 nil
func NewStatsManager(gdataManager *gdata.Manager) *StatsManager {
	m := &StatsManager{
		store: yamlObject{manager: gdataManager, object: "stats", property: "player"},
	}

	if _, err := m.store.load(&m.stats); err != nil {
		log.Printf("[StatsManager] Warning: %v (starting fresh)", err)
		m.stats = PlayerStats{}
	}
	return m
}

// Stats 返回当前统计的副本
func (m *StatsManager) Stats() PlayerStats {
	return m.stats
}

// RecordRound 记录一局的结果并保存
// 返回 true 表示刷新了最佳剩余时间
func (m *StatsManager) RecordRound(outcome Outcome, timeLeft float64) (newBest bool, err error) {
	switch outcome {
	case OutcomeWin:
		m.stats.Wins++
		if timeLeft > m.stats.BestTimeLeft {
			m.stats.BestTimeLeft = timeLeft
			newBest = true
		}
	case OutcomeTimeUp:
		m.stats.Losses++
	default:
		return false, nil
	}
	m.stats.RoundsPlayed++

	log.Printf("[StatsManager] Recorded %s: %+v", outcome, m.stats)
	return newBest, m.store.save(&m.stats)
}
