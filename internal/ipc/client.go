package ipc

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"syscall"

	"github.com/1broseidon/splitd/internal/split"
)

// ErrEndpointNotFound is returned when no daemon socket exists at the path.
var ErrEndpointNotFound = errors.New("endpoint not found")

// Client sends fire-and-forget commands to the daemon.
type Client struct {
	socketPath string
}

// NewClient creates a client for the socket at socketPath.
func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

// SocketPath returns the path the client sends to.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// Send encodes cmd and writes it as a single datagram. A nil error means the
// datagram was delivered to the socket, not that the command succeeded.
func (c *Client) Send(cmd split.Command) error {
	if c.socketPath == "" {
		return fmt.Errorf("%w: no socket path", ErrEndpointNotFound)
	}
	if _, err := os.Stat(c.socketPath); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s (is the daemon running?)", ErrEndpointNotFound, c.socketPath)
	}

	data, err := Encode(cmd)
	if err != nil {
		return err
	}

	conn, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: c.socketPath, Net: "unixgram"})
	if err != nil {
		if errors.Is(err, syscall.ENOENT) || errors.Is(err, syscall.ECONNREFUSED) {
			return fmt.Errorf("%w: %s (is the daemon running?)", ErrEndpointNotFound, c.socketPath)
		}
		return fmt.Errorf("failed to connect to daemon: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("failed to send message to socket: %w", err)
	}
	return nil
}
