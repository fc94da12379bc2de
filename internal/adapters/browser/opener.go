package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener implements ports.URLOpener using the platform's default handler
type Opener struct {
	goos string
	run  func(*exec.Cmd) error
}

// NewOpener creates an opener for the running operating system
func NewOpener() *Opener {
	return &Opener{
		goos: runtime.GOOS,
		run:  (*exec.Cmd).Start,
	}
}

// OpenURL opens an absolute http(s) URL in the default browser
func (o *Opener) OpenURL(rawURL string) error {
	cmd, err := o.Command(rawURL)
	if err != nil {
		return err
	}
	return o.run(cmd)
}

// Command returns the exec.Cmd that hands the URL to the desktop
func (o *Opener) Command(rawURL string) (*exec.Cmd, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("not an http(s) URL: %q", rawURL)
	}
	target := u.String()

	switch o.goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
