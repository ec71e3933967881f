// Package terminal resolves the preferred terminal emulator and the way it
// expects to be handed a command line.
package terminal

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultEnv is the environment variable consulted before the static list.
const DefaultEnv = "TERMINAL"

// DefaultCandidates is the static priority list tried after the environment.
var DefaultCandidates = []string{
	"x-terminal-emulator",
	"mate-terminal",
	"gnome-terminal",
	"terminator",
	"xfce4-terminal",
	"urxvt",
	"rxvt",
	"termit",
	"Eterm",
	"aterm",
	"uxterm",
	"xterm",
	"roxterm",
	"termite",
	"lxterminal",
	"terminology",
	"st",
	"qterminal",
	"lilyterm",
	"tilix",
	"terminix",
	"konsole",
	"kitty",
	"guake",
	"tilda",
	"alacritty",
	"hyper",
}

// Terminals that take the command after a "--" separator.
var dashDash = map[string]bool{
	"mate-terminal":  true,
	"gnome-terminal": true,
	"terminator":     true,
	"xfce4-terminal": true,
	"lxterminal":     true,
	"terminology":    true,
	"st":             true,
	"qterminal":      true,
	"konsole":        true,
	"kitty":          true,
	"guake":          true,
	"tilda":          true,
	"alacritty":      true,
	"hyper":          true,
}

// Terminals that take the command as trailing arguments.
var bare = map[string]bool{
	"tilix":    true,
	"terminix": true,
}

// Command is a terminal program plus the flags that precede the command it runs.
type Command struct {
	Program string
	Args    []string
}

// String returns the command line, e.g. "kitty --".
func (c Command) String() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// Invocation returns the invocation convention for a terminal program.
// Lookup uses the base name so absolute paths are bucketed too.
func Invocation(program string) Command {
	name := filepath.Base(program)
	switch {
	case dashDash[name]:
		return Command{Program: program, Args: []string{"--"}}
	case bare[name]:
		return Command{Program: program}
	default:
		return Command{Program: program, Args: []string{"-e"}}
	}
}

// Resolver picks the terminal emulator.
type Resolver struct {
	Env              string
	Candidates       []string
	RequireInstalled bool

	lookupEnv func(string) (string, bool)
	lookPath  func(string) (string, error)
}

// NewResolver creates a resolver from configuration.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{
		Env:              cfg.Env,
		Candidates:       cfg.Candidates,
		RequireInstalled: cfg.RequireInstalled,
		lookupEnv:        os.LookupEnv,
		lookPath:         exec.LookPath,
	}
}

// Resolve returns the first candidate, the environment variable first.
// Unless RequireInstalled is set the binary is not checked, so with a
// non-empty candidate list resolution always succeeds.
func (r *Resolver) Resolve() (Command, bool) {
	for _, name := range r.candidates() {
		if r.RequireInstalled && !r.installed(name) {
			continue
		}
		return Invocation(name), true
	}
	return Command{}, false
}

func (r *Resolver) candidates() []string {
	names := make([]string, 0, len(r.Candidates)+1)
	if r.Env != "" {
		lookup := r.lookupEnv
		if lookup == nil {
			lookup = os.LookupEnv
		}
		if value, ok := lookup(r.Env); ok && strings.TrimSpace(value) != "" {
			names = append(names, strings.TrimSpace(value))
		}
	}
	for _, name := range r.Candidates {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (r *Resolver) installed(name string) bool {
	lookPath := r.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	_, err := lookPath(name)
	return err == nil
}
