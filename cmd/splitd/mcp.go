package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/splitd/internal/ipc"
	"github.com/1broseidon/splitd/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol front end",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio transport)",
	Long: "Start the MCP server on stdio. Designed to be invoked by MCP clients; each\n" +
		"tool call is forwarded to the running daemon's control socket.",
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path, err := resolveSocket(cfg)
	if err != nil {
		return err
	}

	// stdout carries the protocol; logs go to stderr.
	logger := cfg.NewLogger(os.Stderr)
	server := mcp.NewServer(ipc.NewClient(path), logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx)
}
