package menu

import "errors"

var (
	// ErrCancelled се връща когато потребителят натисне ESC/Cancel
	ErrCancelled = errors.New("cancelled by user")

	// ErrUnknownFrontend се връща за непознато име на menu
	ErrUnknownFrontend = errors.New("unknown frontend")
)

// IsCancelled проверява дали грешката е от отказ
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
