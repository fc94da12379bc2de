package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tanay2920003/sitelink/internal/adapters/filesystem"
	"github.com/Tanay2920003/sitelink/internal/config"
	"github.com/Tanay2920003/sitelink/internal/logger"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

var (
	dataDir  string
	logLevel string
	repo     ports.CategoryRepository
	log      *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sitelink-cli",
	Short: "CLI for managing the learning resource directory",
	Long: `sitelink-cli is a command-line interface for the category files
behind the sitelink learning resource directory.

It provides commands to list, show, create, write, validate and search
categories and their playlists.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		l, err := logger.New(os.Stderr, logger.Options{Level: logLevel})
		if err != nil {
			return err
		}
		log = l
		repo = filesystem.NewRepository(dataDir, log)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", config.DataDir(), "path to the category directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

// GetRepo returns the initialized repository
func GetRepo() ports.CategoryRepository {
	return repo
}

// GetLogger returns the logger shared by the subcommands
func GetLogger() *slog.Logger {
	return log
}
