// Package utils provides common utility functions for qmenu.
// It includes helpers for command lookup, detached process start,
// path expansion, XDG directories and terminal detection.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
)

// ============================================================================
// Command Utilities
// ============================================================================

// CommandExists checks if a command exists in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// StartDetachedProcess starts a process in its own process group and
// returns without waiting for it.
func StartDetachedProcess(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    0,
	}
	return cmd.Start()
}

// ============================================================================
// File System Utilities
// ============================================================================

// ExpandHomeDir expands ~ in paths
func ExpandHomeDir(path string) string {
	if len(path) > 0 && path[0] == '~' {
		return filepath.Join(GetHomeDir(), path[1:])
	}
	return path
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	return os.ExpandEnv(ExpandHomeDir(path))
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(path string) error {
	path = ExpandHomeDir(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	return nil
}

// ============================================================================
// Environment Utilities
// ============================================================================

// GetEnvOrDefault returns environment variable or default value
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetHomeDir returns home directory
func GetHomeDir() string {
	return os.Getenv("HOME")
}

// GetDataDir returns XDG data directory
func GetDataDir() string {
	return GetEnvOrDefault("XDG_DATA_HOME", filepath.Join(GetHomeDir(), ".local", "share"))
}

// ============================================================================
// Terminal Detection
// ============================================================================

// IsTerminal checks if both stdin and stdout are attached to a terminal
func IsTerminal() bool {
	return isTTY(os.Stdin.Fd()) && isTTY(os.Stdout.Fd())
}

func isTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
