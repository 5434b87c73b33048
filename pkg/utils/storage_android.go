//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建 /data/data/{package}/saves
// gdata 在 Android 上使用应用私有目录，但不会创建子目录
func EnsureStorageDir() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to read package name: %w", err)
	}

	pkg := string(bytes.Trim(bytes.TrimRight(cmdline, "\x00\n"), "\x00"))
	if pkg == "" {
		return fmt.Errorf("empty package name in /proc/self/cmdline")
	}

	savesDir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(savesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}
	return nil
}
