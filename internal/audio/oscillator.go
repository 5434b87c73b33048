// Package audio 合成游戏音效
//
// 音效全部由振荡器和包络实时生成，不需要音频文件。
// 生成的 beep.Streamer 通过 RenderPCM 转换为 16 位小端立体声 PCM，
// 交给 Ebitengine 的 audio.Player 播放。
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// sweep 频率线性滑动的振荡器，StartFreq == EndFreq 时即普通振荡器
type sweep struct {
	startFreq float64
	endFreq   float64
	wave      WaveType
	rate      beep.SampleRate
	total     int
	position  int
	phase     float64
	rng       *rand.Rand
}

// NewTone 创建固定频率的振荡器
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep 创建从 startFreq 滑到 endFreq 的振荡器
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		startFreq: startFreq,
		endFreq:   endFreq,
		wave:      wave,
		rate:      rate,
		total:     rate.N(duration),
		rng:       rand.New(rand.NewPCG(uint64(startFreq), uint64(endFreq))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(s.phase-0.5) - 1
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.total)
		freq := s.startFreq + (s.endFreq-s.startFreq)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope 起音/释音包络
type envelope struct {
	streamer beep.Streamer
	attack   int
	release  int
	total    int
	position int
}

// NewEnvelope 为 streamer 加上线性起音和释音，总长度为 duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
