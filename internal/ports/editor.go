package ports

import "os/exec"

// EditorOpener opens content files in the user's external editor
type EditorOpener interface {
	// OpenFile opens the file and waits for the editor to exit
	OpenFile(path string) error

	// Command returns an exec.Cmd for the editor, for use with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
