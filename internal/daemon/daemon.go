// Package daemon runs the control-channel event loop: it receives command
// datagrams, dispatches them against the active window and handles the
// loop-level Restart and Quit commands itself.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/1broseidon/splitd/internal/ipc"
	"github.com/1broseidon/splitd/internal/platform"
	"github.com/1broseidon/splitd/internal/split"
)

// Receiver is the inbound side of the control channel. *ipc.Listener
// satisfies it.
type Receiver interface {
	Receive() ([]byte, error)
	Close() error
}

// Connector opens a fresh connection to the display server.
type Connector func() (platform.Backend, error)

// Config holds the collaborators of a Daemon.
type Config struct {
	Listener Receiver
	Connect  Connector
	Backend  platform.Backend
	Store    *split.Store
	Logger   *slog.Logger
}

// Daemon owns the window state store and the current display connection.
// Only the goroutine running Run touches either.
type Daemon struct {
	listener   Receiver
	connect    Connector
	geom       platform.Backend
	store      *split.Store
	dispatcher *split.Dispatcher
	logger     *slog.Logger
}

// New creates a daemon. A nil store starts empty.
func New(cfg Config) (*Daemon, error) {
	if cfg.Listener == nil {
		return nil, fmt.Errorf("daemon: listener is required")
	}
	if cfg.Backend == nil {
		return nil, fmt.Errorf("daemon: backend is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	store := cfg.Store
	if store == nil {
		store = split.NewStore()
	}
	return &Daemon{
		listener:   cfg.Listener,
		connect:    cfg.Connect,
		geom:       cfg.Backend,
		store:      store,
		dispatcher: split.NewDispatcher(logger),
		logger:     logger,
	}, nil
}

// Store returns the window state store. It must not be read while Run is
// executing.
func (d *Daemon) Store() *split.Store {
	return d.store
}

// Backend returns the display connection currently in use.
func (d *Daemon) Backend() platform.Backend {
	return d.geom
}

// Run processes datagrams until a Quit command arrives or ctx is cancelled.
// Both paths close the listener, which removes the socket file. Per-command
// failures are logged and never end the loop.
func (d *Daemon) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		d.logger.Info("shutdown requested, closing control socket")
		d.listener.Close()
	})
	defer stop()

	d.logger.Info("event loop started")
	for {
		data, err := d.listener.Receive()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				// Waits for a close started elsewhere to finish removing the file.
				closeErr := d.listener.Close()
				d.logger.Info("event loop stopped")
				if closeErr != nil {
					return fmt.Errorf("close control socket: %w", closeErr)
				}
				return nil
			}
			d.logger.Error("failed to receive datagram", "error", err)
			continue
		}

		cmd, err := ipc.Decode(data)
		if err != nil {
			d.logger.Warn("dropping malformed datagram", "bytes", len(data), "error", err)
			continue
		}

		switch cmd {
		case split.CommandQuit:
			d.logger.Info("quit requested", "command", cmd.String())
			if err := d.listener.Close(); err != nil {
				return fmt.Errorf("close control socket: %w", err)
			}
			return nil
		case split.CommandRestart:
			d.restart()
		default:
			d.dispatch(cmd)
		}
	}
}

// restart replaces the display connection. The store is kept; window handles
// stay valid across connections to the same server.
func (d *Daemon) restart() {
	if d.connect == nil {
		d.logger.Error("restart failed", "command", split.CommandRestart.String(),
			"error", "no connector configured")
		return
	}
	next, err := d.connect()
	if err != nil {
		d.logger.Error("restart failed, keeping current connection",
			"command", split.CommandRestart.String(), "error", err)
		return
	}
	d.geom.Disconnect()
	d.geom = next
	d.logger.Info("display connection restarted",
		"command", split.CommandRestart.String(), "tracked_windows", d.store.Len())
}

func (d *Daemon) dispatch(cmd split.Command) {
	out, err := d.dispatcher.Process(d.geom, d.store, cmd)
	if err != nil {
		d.logger.Error("command failed", "command", cmd.String(), "error", err)
		return
	}
	d.logger.Info("command applied",
		"command", cmd.String(),
		"window_id", uint32(out.Window),
		"state", out.Next.State.String(),
		"restore_to", out.Next.Dimensions.String())
}
