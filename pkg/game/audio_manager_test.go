package game

import (
	"sync"
	"testing"

	"github.com/decker502/washedaway/internal/audio"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// 一个进程只能创建一个 audio.Context，测试共享同一个
var (
	testAudioContext     *ebitenaudio.Context
	testAudioContextOnce sync.Once
)

func getTestAudioContext() *ebitenaudio.Context {
	testAudioContextOnce.Do(func() {
		testAudioContext = ebitenaudio.NewContext(SampleRate)
	})
	return testAudioContext
}

func TestAudioManagerSynthesizesAllSounds(t *testing.T) {
	am := NewAudioManager(getTestAudioContext(), NewSettingsManager(nil))

	for _, id := range audio.AllSounds {
		if !am.HasSound(id) {
			t.Errorf("Sound %s was not synthesized", id)
		}
	}
}

func TestAudioManagerRespectsSoundToggle(t *testing.T) {
	sm := NewSettingsManager(nil)
	am := NewAudioManager(getTestAudioContext(), sm)

	sm.SetSoundEnabled(false)
	if am.PlaySound(audio.SoundPop) {
		t.Error("PlaySound should be a no-op while sound is disabled")
	}

	sm.SetSoundEnabled(true)
	if !am.PlaySound(audio.SoundPop) {
		t.Error("PlaySound should play when enabled")
	}
}

func TestAudioManagerWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, nil)
	if am.PlaySound(audio.SoundWin) {
		t.Error("PlaySound without context should report false")
	}

	var nilManager *AudioManager
	if nilManager.PlaySound(audio.SoundWin) {
		t.Error("Nil manager should be safe to call")
	}
}
