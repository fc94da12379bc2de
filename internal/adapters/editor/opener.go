package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fallbackEditors are tried in order when neither the configured editor
// nor $EDITOR/$VISUAL is set
var fallbackEditors = []string{"nvim", "vim", "vi", "nano", "code"}

// Opener implements ports.EditorOpener
type Opener struct {
	preferred string
	lookPath  func(string) (string, error)
}

// NewOpener creates an opener. preferred may be empty, or a command line
// such as "code --wait" that takes precedence over the environment.
func NewOpener(preferred string) *Opener {
	return &Opener{
		preferred: preferred,
		lookPath:  exec.LookPath,
	}
}

// OpenFile opens a file in the user's preferred editor and waits for it
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor.
// Editor settings may carry arguments, which are kept before the path.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	args := strings.Fields(o.findEditor())
	if len(args) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func (o *Opener) findEditor() string {
	for _, candidate := range []string{o.preferred, os.Getenv("EDITOR"), os.Getenv("VISUAL")} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}

	for _, editor := range fallbackEditors {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
