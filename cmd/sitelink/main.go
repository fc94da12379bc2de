// Command sitelink is the terminal editor for the learning resource directory.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tanay2920003/sitelink/internal/adapters/browser"
	"github.com/Tanay2920003/sitelink/internal/adapters/editor"
	"github.com/Tanay2920003/sitelink/internal/adapters/filesystem"
	"github.com/Tanay2920003/sitelink/internal/adapters/tui"
	"github.com/Tanay2920003/sitelink/internal/config"
	"github.com/Tanay2920003/sitelink/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := logger.OpenFile(cfg.LogFilePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	log, err := logger.Setup(logFile, logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log = log.With(slog.String("app", "sitelink"))
	log.Info("starting editor", slog.String("data_dir", cfg.DataDir))

	repo := filesystem.NewRepository(cfg.DataDir, log)
	app := tui.NewAppWithBrowser(repo, editor.NewOpener(""), browser.NewOpener(), log)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("tui exited", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
