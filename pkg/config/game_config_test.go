package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}
}

// TestEmbeddedYAMLMatchesDefaults 确保 data/game.yaml 与内置默认值一致
func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", GameConfigPath))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", GameConfigPath, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		t.Fatalf("ParseGameConfig failed: %v", err)
	}

	if *cfg != *DefaultGameConfig() {
		t.Errorf("data/game.yaml drifted from DefaultGameConfig:\n yaml=%+v\n default=%+v", *cfg, *DefaultGameConfig())
	}
}

func TestParseGameConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseGameConfig([]byte("round:\n  totalTime: 45\n"))
	if err != nil {
		t.Fatalf("ParseGameConfig failed: %v", err)
	}

	if cfg.Round.TotalTime != 45 {
		t.Errorf("Expected totalTime 45, got %.1f", cfg.Round.TotalTime)
	}
	if cfg.Round.MaxPenalty != 6 {
		t.Errorf("Expected default maxPenalty 6, got %.1f", cfg.Round.MaxPenalty)
	}
	if cfg.Bubbles.Count != 50 {
		t.Errorf("Expected default bubble count 50, got %d", cfg.Bubbles.Count)
	}
}

func TestParseGameConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "round: [", "failed to parse"},
		{"zero time", "round:\n  totalTime: 0\n", "totalTime"},
		{"max below initial", "round:\n  initialPenalty: 3\n  maxPenalty: 2\n", "maxPenalty"},
		{"radius range", "bubbles:\n  minRadius: 20\n  maxRadius: 10\n", "radius"},
		{"unreachable target", "target:\n  minStartDistanceRatio: 0.9\n", "unreachable"},
		{"tiny window", "window:\n  width: 150\n  height: 150\n", "margin"},
		{"timer ratios", "timerBar:\n  lowRatio: 0.8\n", "lowRatio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLoadGameConfigFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("bubbles:\n  count: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Bubbles.Count != 10 {
		t.Errorf("Expected 10 bubbles, got %d", cfg.Bubbles.Count)
	}
}

func TestMinStartDistance(t *testing.T) {
	cfg := DefaultGameConfig()
	if got := cfg.MinStartDistance(); got != 512 {
		t.Errorf("Expected 0.4*1280 = 512, got %.1f", got)
	}
	if cfg.MaxTargetDistance() <= cfg.MinStartDistance() {
		t.Error("Default target area must be able to satisfy the minimum distance")
	}
}
