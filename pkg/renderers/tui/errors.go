package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNotMounted is returned when a session runs without a mounted page.
	ErrNotMounted = errors.New("tui: page is not mounted")
	// ErrUnsupportedWidget is returned when the autocomplete capability cannot
	// be driven programmatically.
	ErrUnsupportedWidget = errors.New("tui: autocomplete widget cannot be driven from the terminal")
)
