package ports

// URLOpener opens playlist links outside the terminal
type URLOpener interface {
	// OpenURL hands an absolute http(s) URL to the default browser
	OpenURL(rawURL string) error
}
