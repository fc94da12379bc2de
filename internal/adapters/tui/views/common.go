package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type (
	SwitchToBrowserMsg struct{}
	SwitchToEditorMsg  struct{}
	SwitchToCreateMsg  struct{}
	SwitchToSearchMsg  struct{}
	SwitchToHelpMsg    struct{}
	SwitchToDiffMsg    struct{}
	SwitchToRawMsg     struct{}
	SwitchToMetaMsg    struct{}
)

// EditPlaylistMsg opens the playlist form for the playlist at Index
type EditPlaylistMsg struct {
	Index int
}

// OpenFileMsg asks the app to open Filename in the session
type OpenFileMsg struct {
	Filename string
}

// FileOpenedMsg reports the outcome of a session load
type FileOpenedMsg struct {
	Filename string
	Err      error
}

// SavedMsg reports the outcome of a session save
type SavedMsg struct {
	Err error
}

// OpenEditorMsg requests opening a category file in the external editor
type OpenEditorMsg struct {
	Filename string
}

// NotifyMsg is emitted after a view pushed a notification to the session
type NotifyMsg struct{}

// send wraps a message in a command
func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// background is the context used for session calls issued from commands.
// The program owns cancellation by quitting.
func background() context.Context {
	return context.Background()
}
