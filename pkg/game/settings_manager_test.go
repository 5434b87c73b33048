package game

import "testing"

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetSoundVolume(0.5)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if sm.GetSettings().SoundVolume != 0.5 {
		t.Errorf("In-memory settings should still change, got %v", sm.GetSettings().SoundVolume)
	}
}

// TestSettingsManagerVolumeClamp 测试音量限制
func TestSettingsManagerVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetSoundVolume(1.5)
	if got := sm.GetSettings().SoundVolume; got != 1.0 {
		t.Errorf("Volume 1.5 should clamp to 1.0, got %v", got)
	}
	sm.SetSoundVolume(-0.5)
	if got := sm.GetSettings().SoundVolume; got != 0.0 {
		t.Errorf("Volume -0.5 should clamp to 0.0, got %v", got)
	}
}

func TestSettingsManagerToggleSound(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.ToggleSound() {
		t.Error("First toggle should disable sound")
	}
	if !sm.ToggleSound() {
		t.Error("Second toggle should enable sound")
	}
}

// TestSettingsManagerPersistence 测试设置的保存与重新加载
func TestSettingsManagerPersistence(t *testing.T) {
	manager := newTestStorage(t)

	sm := NewSettingsManager(manager)
	sm.SetSoundVolume(0.3)
	sm.SetSoundEnabled(false)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(manager)
	got := reloaded.GetSettings()
	if got.SoundVolume != 0.3 || got.SoundEnabled || !got.Fullscreen {
		t.Errorf("Reloaded settings mismatch: %+v", got)
	}
}
