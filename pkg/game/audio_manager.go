package game

import (
	"log"

	"github.com/decker502/washedaway/internal/audio"
	"github.com/gopxl/beep"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率，audio.Context 与合成器共用
const SampleRate = 48000

// AudioManager 音频管理器
// 职责：
//   - 在启动时合成全部音效并缓存为播放器
//   - 播放时读取 SettingsManager 中的开关和音量
type AudioManager struct {
	audioContext    *ebitenaudio.Context // 可为 nil（测试或无音频设备）
	settingsManager *SettingsManager     // 可为 nil
	soundPlayers    map[audio.SoundID]*ebitenaudio.Player
}

// NewAudioManager 创建音频管理器并预先合成所有音效
//
// audioContext 为 nil 时所有播放都是空操作。
// 单个音效合成失败只记录日志，不影响其他音效。
func NewAudioManager(audioContext *ebitenaudio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		audioContext:    audioContext,
		settingsManager: sm,
		soundPlayers:    make(map[audio.SoundID]*ebitenaudio.Player),
	}

	if audioContext == nil {
		log.Printf("[AudioManager] No audio context, sound disabled")
		return am
	}

	for _, id := range audio.AllSounds {
		pcm, err := audio.RenderSound(id, beep.SampleRate(SampleRate))
		if err != nil {
			log.Printf("[AudioManager] Warning: %v", err)
			continue
		}
		am.soundPlayers[id] = audioContext.NewPlayerFromBytes(pcm)
	}
	log.Printf("[AudioManager] Synthesized %d sounds", len(am.soundPlayers))

	return am
}

// PlaySound 播放音效，返回是否真正播放
func (am *AudioManager) PlaySound(id audio.SoundID) bool {
	if am == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.soundPlayers[id]
	if player == nil {
		return false
	}

	player.SetVolume(am.soundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	return true
}

// HasSound 音效是否已合成
func (am *AudioManager) HasSound(id audio.SoundID) bool {
	return am != nil && am.soundPlayers[id] != nil
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}
