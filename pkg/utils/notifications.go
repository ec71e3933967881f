// Package utils provides notification utilities for qmenu.
// Supports configurable notification behavior via NotificationConfig.
package utils

import (
	"os"
	"os/exec"
	"strconv"

	"github.com/lvim-tech/qmenu/pkg/config"
)

// ShowErrorNotificationWithConfig sends an error notification using the provided config
func ShowErrorNotificationWithConfig(cfg *config.NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	tool := cfg.Tool
	if tool == "" || tool == "auto" {
		tool = detectNotificationTool()
	}

	sendNotification(tool, title, message, cfg.Timeout, cfg.Urgency, "critical")
}

// ============================================================================
// Internal Helper Functions
// ============================================================================

// detectNotificationTool detects which notification tool is available
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}

// notificationArgs builds the argument list shared by dunstify and notify-send
func notificationArgs(title, message string, timeout int, urgency, fallbackUrgency string) []string {
	if urgency == "" {
		urgency = fallbackUrgency
	}
	if timeout <= 0 {
		timeout = 5000
	}
	return []string{"-u", urgency, "-t", strconv.Itoa(timeout), title, message}
}

// sendNotification sends a notification using the specified tool and reaps
// it in the background. Notifications are best effort.
func sendNotification(tool, title, message string, timeout int, urgency, fallbackUrgency string) *exec.Cmd {
	switch tool {
	case "dunstify", "notify-send":
	default:
		return nil
	}

	cmd := exec.Command(tool, notificationArgs(title, message, timeout, urgency, fallbackUrgency)...)
	cmd.Env = os.Environ()
	if err := cmd.Start(); err != nil {
		return nil
	}
	go func() { _ = cmd.Wait() }()
	return cmd
}
