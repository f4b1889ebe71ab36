package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	socketName       = "splitd.sock"
	hiddenSocketName = ".splitd.sock"
)

// SocketPath returns the control socket path. Priority:
// 1) <user cache dir>/splitd.sock
// 2) <home dir>/.splitd.sock
func SocketPath() (string, error) {
	if cacheDir, err := os.UserCacheDir(); err == nil && cacheDir != "" {
		return filepath.Join(cacheDir, socketName), nil
	}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		return filepath.Join(homeDir, hiddenSocketName), nil
	}
	return "", fmt.Errorf("failed to locate cache or home directory")
}

// Resolve returns override when set, otherwise SocketPath.
func Resolve(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return SocketPath()
}
