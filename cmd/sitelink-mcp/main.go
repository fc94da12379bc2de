package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Tanay2920003/sitelink/internal/adapters/filesystem"
	mcpadapter "github.com/Tanay2920003/sitelink/internal/adapters/mcp"
	"github.com/Tanay2920003/sitelink/internal/config"
	"github.com/Tanay2920003/sitelink/internal/logger"
)

func main() {
	dataFlag := flag.String("data", config.DataDir(), "path to the category directory")
	levelFlag := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	// stdout carries the protocol, so logs go to stderr
	logs, err := logger.New(os.Stderr, logger.Options{Level: *levelFlag})
	if err != nil {
		log.Fatalf("sitelink-mcp: %v", err)
	}

	repo := filesystem.NewRepository(*dataFlag, logs)

	mcpServer := server.NewMCPServer(
		"sitelink-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, logs)
	mcpadapter.RegisterWriteTools(mcpServer, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("sitelink-mcp: %v", err)
	}
}
