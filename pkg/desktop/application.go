// Package desktop discovers launchable applications from freedesktop
// desktop entry files and filters them by display name.
package desktop

import (
	"path/filepath"
	"strings"
)

// Application is one discoverable program.
type Application struct {
	SourcePath string // empty when the entry file is unknown
	Name       string
	Exec       string // TryExec, or Exec when TryExec is absent
	Icon       string
}

// ID returns the desktop file id: the file name of SourcePath without its
// directory and final extension.
func (a Application) ID() string {
	if a.SourcePath == "" {
		return ""
	}
	base := filepath.Base(a.SourcePath)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		return stem
	}
	return base
}

// Filter returns the applications whose name contains query, ignoring case.
// Relative order is preserved.
func Filter(apps []Application, query string) []Application {
	query = strings.ToLower(query)
	result := make([]Application, 0, len(apps))
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.Name), query) {
			result = append(result, app)
		}
	}
	return result
}
