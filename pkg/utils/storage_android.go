//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建 /data/data/{package}/settings
// gdata 在 Android 上不会预先创建子目录
func EnsureStorageDir() error {
	dir := GetStoragePath()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	settingsDir := filepath.Join(dir, "settings")
	if err := os.MkdirAll(settingsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", settingsDir, err)
	}
	return nil
}

// GetStoragePath 返回应用私有目录，包名从 /proc/self/cmdline 读取
func GetStoragePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}

	// cmdline 以 NUL 分隔参数，第一个参数即包名
	name := string(bytes.TrimSpace(bytes.SplitN(data, []byte{0}, 2)[0]))
	if name == "" {
		return ""
	}
	return filepath.Join("/data/data", name)
}
