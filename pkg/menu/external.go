package menu

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// External runs a dmenu-style program: options on stdin, choice on stdout.
type External struct {
	name    string
	command string
	args    []string
	prompt  func(string) []string
}

// Show показва menu с опции
func (e *External) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, e.args...)
	args = append(args, e.prompt(prompt)...)

	cmd := exec.Command(e.command, args...)
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n"))
	if e.name == "fzf" {
		cmd.Stderr = os.Stderr
	}

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && (exitErr.ExitCode() == 1 || exitErr.ExitCode() == 130) {
			return "", ErrCancelled
		}
		return "", err
	}

	result := strings.TrimSpace(string(output))
	if result == "" {
		return "", ErrCancelled
	}

	// Някои програми връщат повече от един ред
	if i := strings.IndexByte(result, '\n'); i >= 0 {
		result = strings.TrimSpace(result[:i])
	}

	return result, nil
}

// Name връща името на menu програмата
func (e *External) Name() string {
	return e.name
}
