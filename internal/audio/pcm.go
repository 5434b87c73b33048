package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopxl/beep"
)

// maxRenderSamples 单个音效最多渲染的采样数（防止无限流）
const maxRenderSamples = 1 << 20

// RenderPCM 将有限长度的 streamer 渲染为 16 位小端立体声 PCM
// 这是 Ebitengine audio.Context 接受的格式
func RenderPCM(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4096)
	total := 0

	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(sample[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(sample[1])))
		}
		total += n

		if !ok {
			break
		}
		if total > maxRenderSamples {
			return nil, fmt.Errorf("streamer exceeded %d samples", maxRenderSamples)
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("streamer failed: %w", err)
	}
	return out, nil
}

// RenderSound 合成并渲染指定音效
func RenderSound(id SoundID, rate beep.SampleRate) ([]byte, error) {
	s := NewSound(id, rate)
	if s == nil {
		return nil, fmt.Errorf("unknown sound %q", id)
	}
	pcm, err := RenderPCM(s)
	if err != nil {
		return nil, fmt.Errorf("render sound %q: %w", id, err)
	}
	return pcm, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
