// Package menu provides an abstraction layer for external menu programs.
// It supports rofi, dmenu, fzf, bemenu and fuzzel with a unified interface,
// as an alternative to the built-in terminal UI.
package menu

import (
	"fmt"
	"slices"

	"github.com/lvim-tech/qmenu/pkg/config"
	"github.com/lvim-tech/qmenu/pkg/desktop"
	"github.com/lvim-tech/qmenu/pkg/utils"
)

// Menu interface за различни menu системи
type Menu interface {
	Show(options []string, prompt string) (string, error)
	Name() string
}

// promptFlags describes how each program takes its prompt
var promptFlags = map[string]func(prompt string) []string{
	"rofi":   func(p string) []string { return []string{"-dmenu", "-p", p} },
	"dmenu":  func(p string) []string { return []string{"-p", p} },
	"bemenu": func(p string) []string { return []string{"-p", p} },
	"fzf":    func(p string) []string { return []string{"--prompt", p + "> "} },
	"fuzzel": func(p string) []string { return []string{"--dmenu", "--prompt", p + " "} },
}

// Names returns the supported frontend names in priority order
func Names() []string {
	return []string{"rofi", "dmenu", "fzf", "bemenu", "fuzzel"}
}

// FrontendLookup returns the configured command and args for a frontend.
type FrontendLookup func(name string) (config.FrontendConfig, bool)

// New създава menu по име с настройките от config
func New(name string, fe config.FrontendConfig) (Menu, error) {
	prompt, ok := promptFlags[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFrontend, name)
	}

	command := fe.Command
	if command == "" {
		command = name
	}

	return &External{
		name:    name,
		command: command,
		args:    slices.Clone(fe.Args),
		prompt:  prompt,
	}, nil
}

// DetectAvailable намира първия инсталиран menu
func DetectAvailable(lookup FrontendLookup) (Menu, error) {
	for _, name := range Names() {
		fe, _ := lookup(name)
		m, err := New(name, fe)
		if err != nil {
			continue
		}
		if utils.CommandExists(m.(*External).command) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("no menu program available - please install rofi, dmenu, fzf, bemenu, or fuzzel")
}

// Pick shows the application names and returns the first application whose
// name matches the choice.
func Pick(m Menu, apps []desktop.Application, prompt string) (desktop.Application, error) {
	options := make([]string, 0, len(apps))
	seen := make(map[string]bool, len(apps))
	for _, app := range apps {
		if seen[app.Name] {
			continue
		}
		seen[app.Name] = true
		options = append(options, app.Name)
	}

	choice, err := m.Show(options, prompt)
	if err != nil {
		return desktop.Application{}, err
	}

	for _, app := range apps {
		if app.Name == choice {
			return app, nil
		}
	}
	return desktop.Application{}, fmt.Errorf("unknown application: %s", choice)
}
