package launch

import "errors"

var (
	// ErrNoTerminal се връща когато нито един terminal не е намерен
	ErrNoTerminal = errors.New("no terminal command found")

	// ErrNoSourcePath се връща когато application няма desktop файл
	ErrNoSourcePath = errors.New("application has no desktop entry path")
)
