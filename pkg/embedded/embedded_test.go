package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func withTestFS(t *testing.T) {
	t.Helper()
	Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("round:\n  totalTime: 30\n")},
	})
	t.Cleanup(Reset)
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	withTestFS(t)
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Reset()

	_, err := ReadFile("data/game.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if Exists("data/game.yaml") {
		t.Error("Exists should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	withTestFS(t)

	for _, path := range []string{"data/game.yaml", "./data/game.yaml"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%q) failed: %v", path, err)
		}
		if len(data) == 0 {
			t.Errorf("ReadFile(%q) returned empty data", path)
		}
	}
}

func TestReadFileBadPrefix(t *testing.T) {
	withTestFS(t)

	if _, err := ReadFile("assets/sock.png"); err == nil {
		t.Error("Expected prefix error")
	}
}

func TestExists(t *testing.T) {
	withTestFS(t)

	if !Exists("data/game.yaml") {
		t.Error("data/game.yaml should exist")
	}
	if Exists("data/missing.yaml") {
		t.Error("data/missing.yaml should not exist")
	}
}
