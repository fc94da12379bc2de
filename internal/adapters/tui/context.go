package tui

import "context"

// contextBackground is the context for session calls made from commands.
// Quitting the program is the only cancellation the TUI has.
func contextBackground() context.Context {
	return context.Background()
}
