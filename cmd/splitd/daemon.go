package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/splitd/internal/config"
	"github.com/1broseidon/splitd/internal/daemon"
	"github.com/1broseidon/splitd/internal/hotkeys"
	"github.com/1broseidon/splitd/internal/ipc"
	"github.com/1broseidon/splitd/internal/platform"
	"github.com/1broseidon/splitd/internal/x11"
	"github.com/spf13/cobra"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the splitd daemon in the foreground",
	Long: "Bind the control socket, connect to the X server and process commands until\n" +
		"'splitd quit', SIGINT or SIGTERM. The socket file is removed on exit.",
	Args: cobra.NoArgs,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := cfg.NewLogger(os.Stderr)

	path, err := resolveSocket(cfg)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return err
	}

	listener, err := ipc.Listen(path)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return err
	}
	// Closing is idempotent; Quit and signals close it first.
	defer listener.Close()

	connect := func() (platform.Backend, error) {
		return platform.NewLinuxBackendFromDisplay(cfg.Display)
	}
	backend, err := connect()
	if err != nil {
		logger.Error("failed to connect to display", "display", cfg.Display, "error", err)
		return fmt.Errorf("failed to connect to display: %w", err)
	}

	if bindings := cfg.HotkeyBindings(); len(bindings) > 0 {
		handler, err := startHotkeys(cfg, path, logger)
		if err != nil {
			backend.Disconnect()
			logger.Error("startup failed", "error", err)
			return err
		}
		defer handler.Stop()
	}

	d, err := daemon.New(daemon.Config{
		Listener: listener,
		Connect:  connect,
		Backend:  backend,
		Logger:   logger,
	})
	if err != nil {
		backend.Disconnect()
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("splitd daemon started", "socket", path, "display", cfg.Display, "version", version)
	runErr := d.Run(ctx)
	d.Backend().Disconnect()
	logger.Info("splitd daemon stopped", "tracked_windows", d.Store().Len())
	return runErr
}

func startHotkeys(cfg *config.Config, socketPath string, logger *slog.Logger) (*hotkeys.Handler, error) {
	conn, err := x11.NewConnection(cfg.Display)
	if err != nil {
		return nil, fmt.Errorf("failed to open hotkey connection: %w", err)
	}
	handler := hotkeys.NewHandler(conn, ipc.NewClient(socketPath), logger)
	if err := handler.Register(cfg.HotkeyBindings()); err != nil {
		conn.Close()
		return nil, err
	}
	handler.Start()
	return handler, nil
}
