package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SoundID 音效标识
type SoundID string

const (
	// SoundPop 撞到泡泡
	SoundPop SoundID = "pop"
	// SoundFlip 滚筒换向
	SoundFlip SoundID = "flip"
	// SoundWin 找到另一只袜子
	SoundWin SoundID = "win"
	// SoundLose 时间耗尽
	SoundLose SoundID = "lose"
	// SoundStart 开始一局
	SoundStart SoundID = "start"
)

// AllSounds 所有可合成的音效
var AllSounds = []SoundID{SoundPop, SoundFlip, SoundWin, SoundLose, SoundStart}

// newVolume 按线性增益 vol 缩放，vol <= 0 时静音（Log2(0) 为 -Inf）
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// NewSound 创建指定音效的 streamer，未知 ID 返回 nil
func NewSound(id SoundID, rate beep.SampleRate) beep.Streamer {
	switch id {
	case SoundPop:
		d := 90 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(900, 300, d, WaveSine, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate), 0.8)

	case SoundFlip:
		d := 350 * time.Millisecond
		noise := NewEnvelope(NewTone(1, d, WaveNoise, rate), d, 150*time.Millisecond, 200*time.Millisecond, rate)
		swoosh := NewEnvelope(NewSweep(200, 600, d, WaveTriangle, rate), d, 100*time.Millisecond, 200*time.Millisecond, rate)
		return beep.Mix(newVolume(noise, 0.3), newVolume(swoosh, 0.5))

	case SoundWin:
		// C5 E5 G5 C6 上行琶音
		n := 110 * time.Millisecond
		return newVolume(beep.Seq(
			note(523.25, n, WaveTriangle, rate),
			note(659.25, n, WaveTriangle, rate),
			note(783.99, n, WaveTriangle, rate),
			note(1046.50, 3*n, WaveTriangle, rate),
		), 0.8)

	case SoundLose:
		n := 180 * time.Millisecond
		return newVolume(beep.Seq(
			note(392.00, n, WaveSquare, rate),
			note(349.23, n, WaveSquare, rate),
			note(311.13, n, WaveSquare, rate),
			NewEnvelope(NewSweep(293.66, 220, 3*n, WaveSquare, rate), 3*n, 5*time.Millisecond, 2*n, rate),
		), 0.4)

	case SoundStart:
		d := 150 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(440, 880, d, WaveSine, rate), d, 5*time.Millisecond, 80*time.Millisecond, rate), 0.6)
	}
	return nil
}
