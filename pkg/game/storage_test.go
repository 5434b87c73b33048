package game

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// newTestStorage 在临时 HOME 下创建 gdata Manager
// 受限环境下无法创建时跳过测试
func newTestStorage(t *testing.T) *gdata.Manager {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("washedaway_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

func TestYAMLObjectRoundTripThroughGdata(t *testing.T) {
	manager := newTestStorage(t)
	obj := yamlObject{manager: manager, object: "test", property: "value"}

	var missing PlayerStats
	found, err := obj.load(&missing)
	if err != nil || found {
		t.Fatalf("Expected not found without error, got found=%v err=%v", found, err)
	}

	if err := obj.save(&PlayerStats{Wins: 3, BestTimeLeft: 12.5}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var loaded PlayerStats
	found, err = obj.load(&loaded)
	if err != nil || !found {
		t.Fatalf("Expected found without error, got found=%v err=%v", found, err)
	}
	if loaded.Wins != 3 || loaded.BestTimeLeft != 12.5 {
		t.Errorf("Unexpected loaded value: %+v", loaded)
	}
}

func TestYAMLObjectCorruptData(t *testing.T) {
	manager := newTestStorage(t)
	if err := manager.SaveObjectProp("test", "broken", []byte("wins: [")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	var v PlayerStats
	found, err := yamlObject{manager: manager, object: "test", property: "broken"}.load(&v)
	if !found || err == nil {
		t.Errorf("Expected unmarshal error for corrupt data, got found=%v err=%v", found, err)
	}
}

func TestYAMLObjectNilManager(t *testing.T) {
	obj := yamlObject{object: "x", property: "y"}

	if err := obj.save(&PlayerStats{}); err != nil {
		t.Errorf("save with nil manager should be a no-op, got %v", err)
	}
	found, err := obj.load(&PlayerStats{})
	if found || err != nil {
		t.Errorf("load with nil manager should report not found, got found=%v err=%v", found, err)
	}
}
