package main

import (
	"fmt"

	"github.com/1broseidon/splitd/internal/config"
	"github.com/1broseidon/splitd/internal/runtimepath"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "splitd",
	Short: "Stateful split-screen window layouts for X11",
	Long: "splitd remembers how a window looked before it was pinned to half the screen,\n" +
		"so a later restore returns it exactly there. Run 'splitd daemon' once per X session\n" +
		"and bind the command verbs (splitleft, splitright, restore, ...) to keys.",
	SilenceUsage: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (optional)")
	rootCmd.PersistentFlags().String("socket", "", "Control socket path (overrides socket_path)")
}

// loadConfig reads --config when given and applies --socket on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if socket, _ := cmd.Flags().GetString("socket"); socket != "" {
		cfg.SocketPath = socket
	}
	return cfg, nil
}

func resolveSocket(cfg *config.Config) (string, error) {
	path, err := runtimepath.Resolve(cfg.SocketPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve control socket path: %w", err)
	}
	return path, nil
}
